package narrativerunner

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"nestquest/internal/ports"
)

// Sweeper periodically requeues jobs stuck in running, such as those left
// behind by a worker that was shut down mid-call.
type Sweeper struct {
	cron        *cron.Cron
	repo        ports.NarrativeJobRepository
	spec        string // cron spec, e.g. "@every 1m"
	olderThan   time.Duration
	maxAttempts int
	log         *zap.Logger
}

func NewSweeper(repo ports.NarrativeJobRepository, spec string, olderThan time.Duration, maxAttempts int, log *zap.Logger) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{
		cron:        cron.New(),
		repo:        repo,
		spec:        spec,
		olderThan:   olderThan,
		maxAttempts: maxAttempts,
		log:         log.Named("sweeper"),
	}
}

// Run registers the sweep, starts the scheduler and blocks until ctx is
// cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc(%q): %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info("sweeper started", zap.String("spec", s.spec))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("sweeper stopped")
	return nil
}

// Sweep runs one requeue pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	n, err := s.repo.RequeueStale(ctx, s.olderThan, s.maxAttempts)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("requeue stale jobs", zap.Error(err))
		}
		return
	}
	if n > 0 {
		s.log.Info("requeued stale jobs", zap.Int("count", n))
	}
}
