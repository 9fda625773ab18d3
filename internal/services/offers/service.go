package offers

import (
	"context"
	"strings"

	"nestquest/internal/calc"
	"nestquest/internal/domain"
	"nestquest/internal/ports"
)

type Service struct {
	offers ports.OfferRepository
	calc   *calc.Calculator
}

func New(offers ports.OfferRepository, calculator *calc.Calculator) *Service {
	return &Service{offers: offers, calc: calculator}
}

var _ ports.Offers = (*Service)(nil)

func (s *Service) Create(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	o = normalize(o)
	if err := o.Validate(); err != nil {
		return domain.Offer{}, err
	}
	o.ID = ""
	return s.offers.CreateOffer(ctx, o)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Offer, error) {
	return s.offers.GetOffer(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.ListOffers(ctx)
}

// Update replaces every user-supplied field of an existing offer. The id is
// kept; timestamps are managed by the repository.
func (s *Service) Update(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	o = normalize(o)
	if err := o.Validate(); err != nil {
		return domain.Offer{}, err
	}
	return s.offers.UpdateOffer(ctx, o)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.offers.DeleteOffer(ctx, id)
}

func (s *Service) Summary(ctx context.Context, id string) (calc.Summary, error) {
	o, err := s.offers.GetOffer(ctx, id)
	if err != nil {
		return calc.Summary{}, err
	}
	return s.calc.Summarize(o), nil
}

func normalize(o domain.Offer) domain.Offer {
	o.Company = strings.TrimSpace(o.Company)
	o.Location = strings.TrimSpace(o.Location)
	return o
}
