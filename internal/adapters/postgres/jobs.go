package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"nestquest/internal/domain"
	"nestquest/internal/ports"
)

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.NarrativeJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id::text, comparison_id::text, revision FROM narrative_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.SelectionID, &job.Revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE narrative_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `UPDATE narrative_jobs SET status='completed', finished_at=now() WHERE id=$1`, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFailed fails the job and the comparison's narrative atomically, unless
// the comparison has since been replaced.
func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return failJob(ctx, tx, jobID, reason)
}

func failJob(ctx context.Context, tx pgx.Tx, jobID, reason string) error {
	var compID string
	var revision int
	err := tx.QueryRow(ctx, `
        UPDATE narrative_jobs SET status='failed', finished_at=now(), last_error=$2 WHERE id=$1
        RETURNING comparison_id::text, revision
    `, jobID, reason).Scan(&compID, &revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE comparisons SET narrative_status='failed', narrative_error=$3, updated_at=now()
        WHERE id=$1 AND revision=$2
    `, compID, revision, reason)
	return err
}

// StartJobForSelection marks the queued job for a comparison as running.
func (db *DB) StartJobForSelection(ctx context.Context, selectionID string) (job ports.NarrativeJob, err error) {
	if !validID(selectionID) {
		return job, domain.ErrNotFound
	}
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock specific job row if queued
	err = tx.QueryRow(ctx, `
        SELECT id::text, comparison_id::text, revision FROM narrative_jobs
        WHERE comparison_id = $1 AND status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, selectionID).Scan(&job.ID, &job.SelectionID, &job.Revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, domain.ErrNotFound
	}
	if err != nil {
		return job, err
	}
	_, err = tx.Exec(ctx, `UPDATE narrative_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1`, job.ID)
	return job, err
}

// RequeueStale recovers jobs abandoned by a crashed or stuck worker.
func (db *DB) RequeueStale(ctx context.Context, olderThan time.Duration, maxAttempts int) (requeued int, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	cutoff := time.Now().Add(-olderThan)
	rows, err := tx.Query(ctx, `
        SELECT id::text FROM narrative_jobs
        WHERE status = 'running' AND started_at < $1 AND attempts >= $2
        FOR UPDATE SKIP LOCKED
    `, cutoff, maxAttempts)
	if err != nil {
		return 0, fmt.Errorf("requeueStale query: %w", err)
	}
	exhausted, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, fmt.Errorf("requeueStale scan: %w", err)
	}
	for _, id := range exhausted {
		if err = failJob(ctx, tx, id, "gave up after repeated timeouts"); err != nil {
			return 0, err
		}
	}

	tag, err := tx.Exec(ctx, `
        UPDATE narrative_jobs SET status='queued', started_at=NULL
        WHERE status = 'running' AND started_at < $1 AND attempts < $2
    `, cutoff, maxAttempts)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
