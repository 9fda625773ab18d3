package ports

import (
	"context"
	"errors"
	"time"

	"nestquest/internal/calc"
	"nestquest/internal/domain"
)

// Offers creates, edits and summarizes offers.
type Offers interface {
	Create(ctx context.Context, o domain.Offer) (domain.Offer, error)
	Get(ctx context.Context, id string) (domain.Offer, error)
	List(ctx context.Context) ([]domain.Offer, error)
	Update(ctx context.Context, o domain.Offer) (domain.Offer, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, id string) (calc.Summary, error)
}

// ComparisonView is a selection together with figures computed from the
// offers as they are now.
type ComparisonView struct {
	Selection  domain.Selection
	Comparison calc.Comparison
}

// Comparisons manages the selected offer pair.
type Comparisons interface {
	Select(ctx context.Context, firstOfferID, secondOfferID string) (domain.Selection, error)
	Replace(ctx context.Context, id, firstOfferID, secondOfferID string) (domain.Selection, error)
	Clear(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (ComparisonView, error)
}

// ErrNarratorUnavailable is matched by Narrator errors that retrying cannot fix.
var ErrNarratorUnavailable = errors.New("narrator unavailable")

// Narrator turns a prompt into narrative text using a hosted language model.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}

// NarrativeCache remembers narratives by prompt fingerprint.
type NarrativeCache interface {
	Get(ctx context.Context, key string) (text string, found bool, err error)
	Set(ctx context.Context, key, text string, ttl time.Duration) error
}

// EventPublisher broadcasts JSON events to interested listeners.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}
