package ports

import (
	"context"
	"time"
)

type NarrativeJob struct {
	ID          string
	SelectionID string
	Revision    int
}

// NarrativeJobRepository supports claiming and updating narrative jobs.
type NarrativeJobRepository interface {
	ClaimNext(ctx context.Context) (job NarrativeJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	// MarkFailed fails the job and, if the selection has not moved on,
	// records the reason on it.
	MarkFailed(ctx context.Context, jobID string, reason string) error
	StartJobForSelection(ctx context.Context, selectionID string) (NarrativeJob, error)
	// RequeueStale puts jobs running longer than olderThan back in the queue,
	// failing those that already used maxAttempts.
	RequeueStale(ctx context.Context, olderThan time.Duration, maxAttempts int) (requeued int, err error)
}
