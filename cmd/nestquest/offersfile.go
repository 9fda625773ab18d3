package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nestquest/internal/domain"
)

type fileEquity struct {
	Type               string  `yaml:"type"`
	Amount             float64 `yaml:"amount"`
	VestingPeriodYears float64 `yaml:"vestingPeriodYears"`
	VestingSchedule    string  `yaml:"vestingSchedule"`
	MarketRatePerUnit  float64 `yaml:"marketRatePerUnit"`
}

type fileOffer struct {
	Company       string      `yaml:"company"`
	Location      string      `yaml:"location"`
	Base          int64       `yaml:"base"`
	Bonus         int64       `yaml:"bonus"`
	SignOn        int64       `yaml:"signOn"`
	Relocation    int64       `yaml:"relocation"`
	OtherExpenses int64       `yaml:"otherExpenses"`
	Equity        *fileEquity `yaml:"equity"`
}

type offersFile struct {
	Offers []fileOffer `yaml:"offers"`
}

func readOffers(path string) ([]domain.Offer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseOffers(data)
}

// parseOffers decodes and validates an offers file. Ids are the 1-based
// position in the file.
func parseOffers(data []byte) ([]domain.Offer, error) {
	var f offersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse offers: %w", err)
	}
	if len(f.Offers) == 0 {
		return nil, fmt.Errorf("parse offers: no offers found")
	}
	out := make([]domain.Offer, 0, len(f.Offers))
	for i, fo := range f.Offers {
		o := domain.Offer{
			ID:            fmt.Sprint(i + 1),
			Company:       strings.TrimSpace(fo.Company),
			Location:      strings.TrimSpace(fo.Location),
			Base:          fo.Base,
			Bonus:         fo.Bonus,
			SignOn:        fo.SignOn,
			Relocation:    fo.Relocation,
			OtherExpenses: fo.OtherExpenses,
		}
		if fo.Equity != nil && fo.Equity.Type != "" {
			t, ok := domain.ParseEquityType(fo.Equity.Type)
			if !ok {
				t = domain.EquityType(fo.Equity.Type)
			}
			o.Equity = &domain.Equity{
				Type:               t,
				Amount:             fo.Equity.Amount,
				VestingPeriodYears: fo.Equity.VestingPeriodYears,
				VestingSchedule:    fo.Equity.VestingSchedule,
				MarketRatePerUnit:  fo.Equity.MarketRatePerUnit,
			}
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("offer %d: %w", i+1, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// findOffer matches ref against a 1-based position or a company name.
func findOffer(offers []domain.Offer, ref string) (domain.Offer, error) {
	for _, o := range offers {
		if o.ID == ref {
			return o, nil
		}
	}
	var match []domain.Offer
	for _, o := range offers {
		if strings.EqualFold(o.Company, ref) {
			match = append(match, o)
		}
	}
	switch len(match) {
	case 0:
		return domain.Offer{}, fmt.Errorf("no offer matches %q", ref)
	case 1:
		return match[0], nil
	default:
		return domain.Offer{}, fmt.Errorf("%q matches %d offers; use its position instead", ref, len(match))
	}
}
