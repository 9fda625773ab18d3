package domain

import "time"

// Core domain models used internally. API shapes live in internal/api;
// keep these decoupled from the wire format.

type EquityType string

const (
	EquityRSU     EquityType = "RSU"
	EquityOptions EquityType = "Options"
)

// ParseEquityType accepts the two grant types, case-insensitively for RSU.
func ParseEquityType(s string) (EquityType, bool) {
	switch s {
	case "RSU", "rsu", "Rsu":
		return EquityRSU, true
	case "Options", "options", "OPTIONS":
		return EquityOptions, true
	}
	return "", false
}

type Equity struct {
	Type               EquityType
	Amount             float64 // units granted
	VestingPeriodYears float64
	VestingSchedule    string // free text, e.g. "25-25-25-25"
	MarketRatePerUnit  float64
}

// Offer is one job offer. Money fields are whole dollars.
type Offer struct {
	ID            string
	Company       string
	Location      string // "City, ST"; must match a reference table key to resolve
	Base          int64
	Bonus         int64
	SignOn        int64
	Relocation    int64
	OtherExpenses int64 // annual
	Equity        *Equity
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type NarrativeStatus string

const (
	NarrativePending NarrativeStatus = "pending"
	NarrativeReady   NarrativeStatus = "ready"
	NarrativeFailed  NarrativeStatus = "failed"
)

// Selection is an ordered pair of offers chosen for side-by-side comparison.
// It holds offer ids only; the offers themselves are read at comparison time.
type Selection struct {
	ID            string
	FirstOfferID  string
	SecondOfferID string
	// Revision increments on every replace so late narrative results for an
	// older pair can be discarded.
	Revision        int
	NarrativeStatus NarrativeStatus
	Narrative       string
	NarrativeError  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
