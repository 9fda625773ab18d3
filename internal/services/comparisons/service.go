package comparisons

import (
	"context"

	"nestquest/internal/calc"
	"nestquest/internal/domain"
	"nestquest/internal/ports"
)

type Service struct {
	offers     ports.OfferRepository
	selections ports.SelectionRepository
	calc       *calc.Calculator
}

func New(offers ports.OfferRepository, selections ports.SelectionRepository, calculator *calc.Calculator) *Service {
	return &Service{offers: offers, selections: selections, calc: calculator}
}

var _ ports.Comparisons = (*Service)(nil)

// Select records a new pair and queues its narrative. Both offers must exist.
func (s *Service) Select(ctx context.Context, firstOfferID, secondOfferID string) (domain.Selection, error) {
	if err := s.checkPair(ctx, firstOfferID, secondOfferID); err != nil {
		return domain.Selection{}, err
	}
	return s.selections.CreateSelection(ctx, firstOfferID, secondOfferID)
}

// Replace swaps the pair held by an existing selection. Any narrative for
// the previous pair is discarded.
func (s *Service) Replace(ctx context.Context, id, firstOfferID, secondOfferID string) (domain.Selection, error) {
	if err := s.checkPair(ctx, firstOfferID, secondOfferID); err != nil {
		return domain.Selection{}, err
	}
	return s.selections.ReplaceSelection(ctx, id, firstOfferID, secondOfferID)
}

func (s *Service) Clear(ctx context.Context, id string) error {
	return s.selections.ClearSelection(ctx, id)
}

// Get computes the comparison from the offers as currently stored.
func (s *Service) Get(ctx context.Context, id string) (ports.ComparisonView, error) {
	sel, err := s.selections.GetSelection(ctx, id)
	if err != nil {
		return ports.ComparisonView{}, err
	}
	first, err := s.offers.GetOffer(ctx, sel.FirstOfferID)
	if err != nil {
		return ports.ComparisonView{}, err
	}
	second, err := s.offers.GetOffer(ctx, sel.SecondOfferID)
	if err != nil {
		return ports.ComparisonView{}, err
	}
	return ports.ComparisonView{Selection: sel, Comparison: s.calc.Compare(first, second)}, nil
}

func (s *Service) checkPair(ctx context.Context, firstOfferID, secondOfferID string) error {
	if firstOfferID == "" || secondOfferID == "" {
		return &domain.ValidationError{Msg: "two offer ids are required"}
	}
	if firstOfferID == secondOfferID {
		return &domain.ValidationError{Msg: "cannot compare an offer with itself"}
	}
	for _, id := range []string{firstOfferID, secondOfferID} {
		if _, err := s.offers.GetOffer(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
