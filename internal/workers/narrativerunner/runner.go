package narrativerunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"nestquest/internal/ports"
)

// Processor performs the narrative work for a claimed job.
type Processor interface {
	Process(ctx context.Context, job ports.NarrativeJob) error
}

// Run starts a dispatcher that claims queued jobs and concurrency workers
// that process them. It blocks until ctx is cancelled and every worker has
// returned.
func Run(ctx context.Context, repo ports.NarrativeJobRepository, processor Processor, concurrency int, pollInterval time.Duration, log *zap.Logger) {
	if concurrency < 1 {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("narrativerunner")
	jobsCh := make(chan ports.NarrativeJob, concurrency)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			for {
				job, found, err := repo.ClaimNext(ctx)
				if err != nil {
					if ctx.Err() == nil {
						log.Warn("job claim error", zap.Error(err))
					}
					break
				}
				if !found {
					break
				}
				select {
				case jobsCh <- job:
				case <-ctx.Done():
					// the claimed job stays running; the sweeper requeues it
					return
				}
			}
		}
	}()

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				runJob(ctx, repo, processor, job, log.With(zap.Int("worker", idx)))
			}
		}(i)
	}
	wg.Wait()
}

func runJob(ctx context.Context, repo ports.NarrativeJobRepository, processor Processor, job ports.NarrativeJob, log *zap.Logger) {
	log = log.With(zap.String("job", job.ID), zap.String("comparison", job.SelectionID))
	err := processor.Process(ctx, job)
	if ctx.Err() != nil {
		log.Debug("shutdown while processing; leaving job for the sweeper")
		return
	}
	// bookkeeping must land even if the caller's deadline is close
	bg := context.WithoutCancel(ctx)
	if err != nil {
		log.Warn("job failed", zap.Error(err))
		if err := repo.MarkFailed(bg, job.ID, err.Error()); err != nil {
			log.Error("mark failed", zap.Error(err))
		}
		return
	}
	if err := repo.MarkCompleted(bg, job.ID); err != nil {
		log.Error("mark completed", zap.Error(err))
	}
}

// ProcessInline starts and processes the queued job for a comparison
// synchronously, using the same processor as the background workers.
func ProcessInline(ctx context.Context, repo ports.NarrativeJobRepository, processor Processor, selectionID string) error {
	job, err := repo.StartJobForSelection(ctx, selectionID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, job); err != nil {
		_ = repo.MarkFailed(context.WithoutCancel(ctx), job.ID, err.Error())
		return err
	}
	return repo.MarkCompleted(context.WithoutCancel(ctx), job.ID)
}
