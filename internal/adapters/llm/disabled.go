package llm

import (
	"context"
	"errors"

	"nestquest/internal/ports"
)

type disabledError struct{}

func (disabledError) Error() string { return "narrative provider not configured" }

func (disabledError) Is(target error) bool { return target == ports.ErrNarratorUnavailable }

var (
	// ErrDisabled is returned when no narrative provider is configured. It
	// matches ports.ErrNarratorUnavailable.
	ErrDisabled error = disabledError{}

	ErrEmptyResponse = errors.New("empty response from language model")
)

// Disabled is the Narrator used when NARRATIVE_PROVIDER is "none".
type Disabled struct{}

var _ ports.Narrator = Disabled{}

func (Disabled) Narrate(ctx context.Context, prompt string) (string, error) {
	return "", ErrDisabled
}
