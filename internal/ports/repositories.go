package ports

import (
	"context"

	"nestquest/internal/domain"
)

// OfferRepository stores offers. Ids are assigned by the repository on
// create and never reused.
type OfferRepository interface {
	CreateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error)
	GetOffer(ctx context.Context, id string) (domain.Offer, error)
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	UpdateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}

// SelectionRepository manages comparison selections. Creating or replacing a
// selection also queues a narrative job for the new pair. Deleting an offer
// discards every selection that references it.
type SelectionRepository interface {
	CreateSelection(ctx context.Context, firstOfferID, secondOfferID string) (domain.Selection, error)
	GetSelection(ctx context.Context, id string) (domain.Selection, error)
	ReplaceSelection(ctx context.Context, id, firstOfferID, secondOfferID string) (domain.Selection, error)
	ClearSelection(ctx context.Context, id string) error
	// SaveNarrative stores text only if the selection is still at revision.
	SaveNarrative(ctx context.Context, id string, revision int, text string) error
}
