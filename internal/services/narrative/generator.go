// Package narrative produces the free-text comparison of a selected offer
// pair. It runs behind the job queue so numeric results never wait on it.
package narrative

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nestquest/internal/calc"
	"nestquest/internal/domain"
	"nestquest/internal/ports"
)

// ReadyChannel receives an event each time a narrative is stored.
const ReadyChannel = "narrative.ready"

// ReadyEvent is the payload published on ReadyChannel.
type ReadyEvent struct {
	Type         string `json:"type"`
	ComparisonID string `json:"comparisonId"`
	Revision     int    `json:"revision"`
	Cached       bool   `json:"cached"`
}

type Options struct {
	// Timeout bounds each call to the narrator.
	Timeout time.Duration
	// Attempts is how many times the narrator is called before giving up.
	Attempts int
	// Backoff is the pause before each retry.
	Backoff  time.Duration
	CacheTTL time.Duration
}

type Generator struct {
	offers     ports.OfferRepository
	selections ports.SelectionRepository
	calc       *calc.Calculator
	narrator   ports.Narrator
	cache      ports.NarrativeCache
	events     ports.EventPublisher
	opts       Options
	log        *zap.Logger
}

// New builds a Generator. cache and events may be nil.
func New(offers ports.OfferRepository, selections ports.SelectionRepository, calculator *calc.Calculator,
	narrator ports.Narrator, cache ports.NarrativeCache, events ports.EventPublisher, opts Options, log *zap.Logger) *Generator {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		offers:     offers,
		selections: selections,
		calc:       calculator,
		narrator:   narrator,
		cache:      cache,
		events:     events,
		opts:       opts,
		log:        log.Named("narrative"),
	}
}

// Process generates and stores the narrative for a job. A job whose
// selection is gone or has moved to a newer pair succeeds without work.
func (g *Generator) Process(ctx context.Context, job ports.NarrativeJob) error {
	log := g.log.With(zap.String("comparison", job.SelectionID), zap.Int("revision", job.Revision))

	sel, err := g.selections.GetSelection(ctx, job.SelectionID)
	if errors.Is(err, domain.ErrNotFound) {
		log.Debug("comparison cleared, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load comparison: %w", err)
	}
	if sel.Revision != job.Revision {
		log.Debug("comparison replaced, skipping", zap.Int("current", sel.Revision))
		return nil
	}

	first, err := g.offers.GetOffer(ctx, sel.FirstOfferID)
	if err != nil {
		return fmt.Errorf("load first offer: %w", err)
	}
	second, err := g.offers.GetOffer(ctx, sel.SecondOfferID)
	if err != nil {
		return fmt.Errorf("load second offer: %w", err)
	}

	prompt := BuildPrompt(g.calc.Compare(first, second))
	key := Fingerprint(prompt)

	text, cached := g.lookup(ctx, key, log)
	if !cached {
		text, err = g.narrate(ctx, prompt)
		if err != nil {
			return err
		}
		if g.cache != nil {
			if err := g.cache.Set(ctx, key, text, g.opts.CacheTTL); err != nil {
				log.Warn("narrative cache write failed", zap.Error(err))
			}
		}
	}

	if err := g.selections.SaveNarrative(ctx, sel.ID, job.Revision, text); err != nil {
		return fmt.Errorf("save narrative: %w", err)
	}
	log.Info("narrative stored", zap.Bool("cached", cached))

	if g.events != nil {
		ev := ReadyEvent{Type: ReadyChannel, ComparisonID: sel.ID, Revision: job.Revision, Cached: cached}
		if err := g.events.Publish(ctx, ReadyChannel, ev); err != nil {
			log.Warn("publish narrative.ready failed", zap.Error(err))
		}
	}
	return nil
}

func (g *Generator) lookup(ctx context.Context, key string, log *zap.Logger) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	text, found, err := g.cache.Get(ctx, key)
	if err != nil {
		log.Warn("narrative cache read failed", zap.Error(err))
		return "", false
	}
	return text, found
}

// narrate calls the narrator with a per-call timeout, retrying up to the
// configured number of attempts.
func (g *Generator) narrate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= g.opts.Attempts; attempt++ {
		if attempt > 1 && g.opts.Backoff > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(g.opts.Backoff):
			}
		}
		callCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
		text, err := g.narrator.Narrate(callCtx, prompt)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil || errors.Is(err, ports.ErrNarratorUnavailable) {
			break
		}
		g.log.Debug("narrator call failed", zap.Int("attempt", attempt), zap.Error(err))
	}
	return "", fmt.Errorf("narrate: %w", lastErr)
}

// Fingerprint is the cache key for a prompt.
func Fingerprint(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
