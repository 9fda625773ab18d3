// Package memory implements the repository ports in process memory. It backs
// the server when no DATABASE_URL is configured and serves as the test double
// for services and handlers.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nestquest/internal/domain"
	"nestquest/internal/ports"
)

type jobStatus string

const (
	jobQueued    jobStatus = "queued"
	jobRunning   jobStatus = "running"
	jobCompleted jobStatus = "completed"
	jobFailed    jobStatus = "failed"
)

type job struct {
	ports.NarrativeJob
	status    jobStatus
	attempts  int
	queuedAt  time.Time
	startedAt time.Time
	lastError string
}

// Store is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	now        func() time.Time
	offers     map[string]domain.Offer
	selections map[string]domain.Selection
	jobs       map[string]*job
	queue      []string // queued and running job ids in enqueue order
}

func New() *Store {
	return &Store{
		now:        time.Now,
		offers:     make(map[string]domain.Offer),
		selections: make(map[string]domain.Selection),
		jobs:       make(map[string]*job),
	}
}

// SetClock overrides the time source; tests use it to age running jobs.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

var (
	_ ports.OfferRepository        = (*Store)(nil)
	_ ports.SelectionRepository    = (*Store)(nil)
	_ ports.NarrativeJobRepository = (*Store)(nil)
)

// OfferRepository

func (s *Store) CreateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	o.ID = uuid.NewString()
	o.CreatedAt, o.UpdatedAt = now, now
	o.Equity = cloneEquity(o.Equity)
	s.offers[o.ID] = o
	return copyOffer(o), nil
}

func (s *Store) GetOffer(ctx context.Context, id string) (domain.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.offers[id]
	if !ok {
		return domain.Offer{}, domain.ErrNotFound
	}
	return copyOffer(o), nil
}

func (s *Store) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		out = append(out, copyOffer(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.offers[o.ID]
	if !ok {
		return domain.Offer{}, domain.ErrNotFound
	}
	o.CreatedAt = cur.CreatedAt
	o.UpdatedAt = s.now().UTC()
	o.Equity = cloneEquity(o.Equity)
	s.offers[o.ID] = o
	return copyOffer(o), nil
}

func (s *Store) DeleteOffer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.offers, id)
	for selID, sel := range s.selections {
		if sel.FirstOfferID == id || sel.SecondOfferID == id {
			s.dropSelectionLocked(selID)
		}
	}
	return nil
}

// SelectionRepository

func (s *Store) CreateSelection(ctx context.Context, firstOfferID, secondOfferID string) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOffersLocked(firstOfferID, secondOfferID); err != nil {
		return domain.Selection{}, err
	}
	now := s.now().UTC()
	sel := domain.Selection{
		ID:              uuid.NewString(),
		FirstOfferID:    firstOfferID,
		SecondOfferID:   secondOfferID,
		Revision:        1,
		NarrativeStatus: domain.NarrativePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.selections[sel.ID] = sel
	s.enqueueLocked(sel)
	return sel, nil
}

func (s *Store) GetSelection(ctx context.Context, id string) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[id]
	if !ok {
		return domain.Selection{}, domain.ErrNotFound
	}
	return sel, nil
}

func (s *Store) ReplaceSelection(ctx context.Context, id, firstOfferID, secondOfferID string) (domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[id]
	if !ok {
		return domain.Selection{}, domain.ErrNotFound
	}
	if err := s.checkOffersLocked(firstOfferID, secondOfferID); err != nil {
		return domain.Selection{}, err
	}
	// a running job for the old revision stays until its worker reports back
	for _, j := range s.jobs {
		if j.SelectionID == id && j.status != jobRunning {
			s.removeJobLocked(j.ID)
		}
	}
	sel.FirstOfferID, sel.SecondOfferID = firstOfferID, secondOfferID
	sel.Revision++
	sel.NarrativeStatus = domain.NarrativePending
	sel.Narrative, sel.NarrativeError = "", ""
	sel.UpdatedAt = s.now().UTC()
	s.selections[id] = sel
	s.enqueueLocked(sel)
	return sel, nil
}

func (s *Store) ClearSelection(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selections[id]; !ok {
		return domain.ErrNotFound
	}
	s.dropSelectionLocked(id)
	return nil
}

func (s *Store) SaveNarrative(ctx context.Context, id string, revision int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[id]
	if !ok {
		return domain.ErrNotFound
	}
	if sel.Revision != revision {
		return nil
	}
	sel.NarrativeStatus = domain.NarrativeReady
	sel.Narrative, sel.NarrativeError = text, ""
	sel.UpdatedAt = s.now().UTC()
	s.selections[id] = sel
	return nil
}

// NarrativeJobRepository

func (s *Store) ClaimNext(ctx context.Context) (ports.NarrativeJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.queue {
		j := s.jobs[id]
		if j.status != jobQueued {
			continue
		}
		s.startLocked(j)
		return j.NarrativeJob, true, nil
	}
	return ports.NarrativeJob{}, false, nil
}

func (s *Store) MarkCompleted(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	j.status = jobCompleted
	s.dequeueLocked(jobID)
	return nil
}

func (s *Store) MarkFailed(ctx context.Context, jobID string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	s.failLocked(j, reason)
	return nil
}

func (s *Store) StartJobForSelection(ctx context.Context, selectionID string) (ports.NarrativeJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.queue {
		j := s.jobs[id]
		if j.SelectionID == selectionID && j.status == jobQueued {
			s.startLocked(j)
			return j.NarrativeJob, nil
		}
	}
	return ports.NarrativeJob{}, domain.ErrNotFound
}

func (s *Store) RequeueStale(ctx context.Context, olderThan time.Duration, maxAttempts int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-olderThan)
	n := 0
	for _, id := range slices.Clone(s.queue) {
		j := s.jobs[id]
		if j.status != jobRunning || j.startedAt.After(cutoff) {
			continue
		}
		if j.attempts >= maxAttempts {
			s.failLocked(j, "gave up after repeated timeouts")
			continue
		}
		j.status = jobQueued
		n++
	}
	return n, nil
}

// ActiveJobs counts queued and running jobs.
func (s *Store) ActiveJobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// JobStatus reports a job's state for tests.
func (s *Store) JobStatus(jobID string) (status string, attempts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[jobID]; ok {
		return string(j.status), j.attempts
	}
	return "", 0
}

func (s *Store) checkOffersLocked(ids ...string) error {
	for _, id := range ids {
		if _, ok := s.offers[id]; !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (s *Store) enqueueLocked(sel domain.Selection) {
	j := &job{
		NarrativeJob: ports.NarrativeJob{ID: uuid.NewString(), SelectionID: sel.ID, Revision: sel.Revision},
		status:       jobQueued,
		queuedAt:     s.now(),
	}
	s.jobs[j.ID] = j
	s.queue = append(s.queue, j.ID)
}

func (s *Store) startLocked(j *job) {
	j.status = jobRunning
	j.attempts++
	j.startedAt = s.now()
}

func (s *Store) failLocked(j *job, reason string) {
	j.status = jobFailed
	j.lastError = reason
	s.dequeueLocked(j.ID)
	sel, ok := s.selections[j.SelectionID]
	if !ok || sel.Revision != j.Revision {
		return
	}
	sel.NarrativeStatus = domain.NarrativeFailed
	sel.NarrativeError = reason
	sel.UpdatedAt = s.now().UTC()
	s.selections[sel.ID] = sel
}

func (s *Store) dropSelectionLocked(id string) {
	delete(s.selections, id)
	for jid, j := range s.jobs {
		if j.SelectionID == id {
			s.removeJobLocked(jid)
		}
	}
}

func (s *Store) removeJobLocked(jobID string) {
	delete(s.jobs, jobID)
	s.dequeueLocked(jobID)
}

func (s *Store) dequeueLocked(jobID string) {
	for i, id := range s.queue {
		if id == jobID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

func cloneEquity(e *domain.Equity) *domain.Equity {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

func copyOffer(o domain.Offer) domain.Offer {
	o.Equity = cloneEquity(o.Equity)
	return o
}
