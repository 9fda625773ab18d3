package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"nestquest/internal/domain"
	"nestquest/internal/ports"
)

var (
	_ ports.OfferRepository        = (*DB)(nil)
	_ ports.SelectionRepository    = (*DB)(nil)
	_ ports.NarrativeJobRepository = (*DB)(nil)
)

// equityDoc is the jsonb shape of offers.equity.
type equityDoc struct {
	Type               string  `json:"type"`
	Amount             float64 `json:"amount"`
	VestingPeriodYears float64 `json:"vestingPeriodYears"`
	VestingSchedule    string  `json:"vestingSchedule,omitempty"`
	MarketRatePerUnit  float64 `json:"marketRatePerUnit"`
}

func encodeEquity(e *domain.Equity) ([]byte, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(equityDoc{
		Type:               string(e.Type),
		Amount:             e.Amount,
		VestingPeriodYears: e.VestingPeriodYears,
		VestingSchedule:    e.VestingSchedule,
		MarketRatePerUnit:  e.MarketRatePerUnit,
	})
}

func decodeEquity(b []byte) (*domain.Equity, error) {
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	var d equityDoc
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode equity: %w", err)
	}
	return &domain.Equity{
		Type:               domain.EquityType(d.Type),
		Amount:             d.Amount,
		VestingPeriodYears: d.VestingPeriodYears,
		VestingSchedule:    d.VestingSchedule,
		MarketRatePerUnit:  d.MarketRatePerUnit,
	}, nil
}

const offerColumns = `id::text, company, location, base, bonus, sign_on, relocation, other_expenses, equity, created_at, updated_at`

func scanOffer(row pgx.Row) (domain.Offer, error) {
	var o domain.Offer
	var equity []byte
	err := row.Scan(&o.ID, &o.Company, &o.Location, &o.Base, &o.Bonus, &o.SignOn, &o.Relocation,
		&o.OtherExpenses, &equity, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return o, domain.ErrNotFound
	}
	if err != nil {
		return o, err
	}
	o.Equity, err = decodeEquity(equity)
	return o, err
}

// validID keeps malformed ids from reaching a uuid cast in SQL.
func validID(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

// OfferRepository

func (db *DB) CreateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	equity, err := encodeEquity(o.Equity)
	if err != nil {
		return domain.Offer{}, err
	}
	return scanOffer(db.Pool.QueryRow(ctx, `
        INSERT INTO offers (company, location, base, bonus, sign_on, relocation, other_expenses, equity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+offerColumns,
		strings.TrimSpace(o.Company), strings.TrimSpace(o.Location), o.Base, o.Bonus, o.SignOn, o.Relocation, o.OtherExpenses, equity))
}

func (db *DB) GetOffer(ctx context.Context, id string) (domain.Offer, error) {
	if !validID(id) {
		return domain.Offer{}, domain.ErrNotFound
	}
	return scanOffer(db.Pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
}

func (db *DB) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listOffers query: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("listOffers scan: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (db *DB) UpdateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	if !validID(o.ID) {
		return domain.Offer{}, domain.ErrNotFound
	}
	equity, err := encodeEquity(o.Equity)
	if err != nil {
		return domain.Offer{}, err
	}
	return scanOffer(db.Pool.QueryRow(ctx, `
        UPDATE offers
        SET company = $2, location = $3, base = $4, bonus = $5, sign_on = $6,
            relocation = $7, other_expenses = $8, equity = $9, updated_at = now()
        WHERE id = $1
        RETURNING `+offerColumns,
		o.ID, strings.TrimSpace(o.Company), strings.TrimSpace(o.Location), o.Base, o.Bonus, o.SignOn, o.Relocation, o.OtherExpenses, equity))
}

// DeleteOffer removes the offer; comparisons referencing it cascade away.
func (db *DB) DeleteOffer(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SelectionRepository

const selectionColumns = `id::text, first_offer_id::text, second_offer_id::text, revision,
        narrative_status, narrative, narrative_error, created_at, updated_at`

func scanSelection(row pgx.Row) (domain.Selection, error) {
	var s domain.Selection
	var status string
	err := row.Scan(&s.ID, &s.FirstOfferID, &s.SecondOfferID, &s.Revision,
		&status, &s.Narrative, &s.NarrativeError, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, domain.ErrNotFound
	}
	s.NarrativeStatus = domain.NarrativeStatus(status)
	return s, err
}

// isForeignKeyViolation reports a reference to a missing offer.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func (db *DB) CreateSelection(ctx context.Context, firstOfferID, secondOfferID string) (sel domain.Selection, err error) {
	if !validID(firstOfferID, secondOfferID) {
		return sel, domain.ErrNotFound
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return sel, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	sel, err = scanSelection(tx.QueryRow(ctx, `
        INSERT INTO comparisons (first_offer_id, second_offer_id)
        VALUES ($1, $2)
        RETURNING `+selectionColumns, firstOfferID, secondOfferID))
	if isForeignKeyViolation(err) {
		return sel, domain.ErrNotFound
	}
	if err != nil {
		return sel, err
	}
	// create job row
	_, err = tx.Exec(ctx, `INSERT INTO narrative_jobs (comparison_id, revision) VALUES ($1, $2)`, sel.ID, sel.Revision)
	return sel, err
}

func (db *DB) GetSelection(ctx context.Context, id string) (domain.Selection, error) {
	if !validID(id) {
		return domain.Selection{}, domain.ErrNotFound
	}
	return scanSelection(db.Pool.QueryRow(ctx, `SELECT `+selectionColumns+` FROM comparisons WHERE id = $1`, id))
}

// ReplaceSelection swaps the pair, bumps the revision and requeues the
// narrative; queued jobs for the old pair are dropped.
func (db *DB) ReplaceSelection(ctx context.Context, id, firstOfferID, secondOfferID string) (sel domain.Selection, err error) {
	if !validID(id) || !validID(firstOfferID, secondOfferID) {
		return sel, domain.ErrNotFound
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return sel, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	sel, err = scanSelection(tx.QueryRow(ctx, `
        UPDATE comparisons
        SET first_offer_id = $2, second_offer_id = $3, revision = revision + 1,
            narrative_status = 'pending', narrative = '', narrative_error = '', updated_at = now()
        WHERE id = $1
        RETURNING `+selectionColumns, id, firstOfferID, secondOfferID))
	if isForeignKeyViolation(err) {
		return sel, domain.ErrNotFound
	}
	if err != nil {
		return sel, err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM narrative_jobs WHERE comparison_id = $1 AND status = 'queued'`, id); err != nil {
		return sel, err
	}
	_, err = tx.Exec(ctx, `INSERT INTO narrative_jobs (comparison_id, revision) VALUES ($1, $2)`, id, sel.Revision)
	return sel, err
}

func (db *DB) ClearSelection(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM comparisons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) SaveNarrative(ctx context.Context, id string, revision int, text string) error {
	_, err := db.Pool.Exec(ctx, `
        UPDATE comparisons
        SET narrative_status = 'ready', narrative = $3, narrative_error = '', updated_at = now()
        WHERE id = $1 AND revision = $2
    `, id, revision, text)
	return err
}
