package domain

import (
	"time"

	"github.com/rpgo/taxhawk/pkg/dateutil"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
)

// longTermMonthsThreshold returns the whole-month holding period, per
// security type, that a holding must exceed for its gain to be long-term:
// 12 months for listed-equity-like instruments, 24 months otherwise.
func longTermMonthsThreshold(t SecurityType) int {
	switch t {
	case EquityShare, EquityMF, ELSS:
		return 12
	default:
		return 24
	}
}

// Holding is one line of an equity/mutual-fund portfolio. PurchasePrice,
// Quantity and CurrentPrice are real numbers (paise-level precision), unlike
// the engine's whole-rupee Amount fields, so they are carried as
// decimal.Decimal directly.
type Holding struct {
	SecurityName  string          `yaml:"security_name" json:"security_name"`
	SecurityType  SecurityType    `yaml:"security_type" json:"security_type"`
	PurchaseDate  time.Time       `yaml:"purchase_date" json:"purchase_date"`
	PurchasePrice decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	Quantity      decimal.Decimal `yaml:"quantity" json:"quantity"`
	CurrentPrice  decimal.Decimal `yaml:"current_price" json:"current_price"`
}

// TotalCost returns purchase_price * quantity.
func (h *Holding) TotalCost() decimal.Decimal { return h.PurchasePrice.Mul(h.Quantity) }

// CurrentValue returns current_price * quantity.
func (h *Holding) CurrentValue() decimal.Decimal { return h.CurrentPrice.Mul(h.Quantity) }

// UnrealizedGain returns current_value - total_cost.
func (h *Holding) UnrealizedGain() decimal.Decimal { return h.CurrentValue().Sub(h.TotalCost()) }

// HoldingMonths returns the number of full calendar months held as of asOf.
func (h *Holding) HoldingMonths(asOf time.Time) int {
	return dateutil.HoldingMonths(h.PurchaseDate, asOf)
}

// IsLongTerm reports whether the holding qualifies as long-term as of asOf.
func (h *Holding) IsLongTerm(asOf time.Time) bool {
	return h.HoldingMonths(asOf) > longTermMonthsThreshold(h.SecurityType)
}

// Holdings is the caller-owned equity/mutual-fund portfolio, plus the
// realized gains already booked this financial year.
type Holdings struct {
	Items                []Holding    `yaml:"holdings" json:"holdings"`
	RealizedSTCGThisFY   rupee.Amount `yaml:"realized_stcg_this_fy" json:"realized_stcg_this_fy"`
	RealizedLTCGThisFY   rupee.Amount `yaml:"realized_ltcg_this_fy" json:"realized_ltcg_this_fy"`
}

// Empty returns a zero-value Holdings record, used when the caller omits
// holdings entirely.
func Empty() Holdings {
	return Holdings{}
}

// AsOf resolves the capital-gains check's as_of date: override (parsed from
// options.cg_as_of by the caller) wins if present, otherwise it falls back
// to the upcoming March 31 relative to clock.
func (h *Holdings) AsOf(clock time.Time, override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return dateutil.DefaultAsOf(clock)
}
