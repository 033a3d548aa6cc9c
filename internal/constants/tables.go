// Package constants holds the engine's immutable statutory slab, rebate,
// surcharge and deduction-limit tables keyed by financial year. Every table
// here is a finite, hand-maintained Go literal, with an optional YAML
// override loader for deployments that need to update a year's numbers
// without a code change.
package constants

import (
	"os"

	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Slab is one bracket of a progressive slab table: income strictly above the
// previous slab's UpperLimit and up to this slab's UpperLimit is taxed at
// Rate. The last slab in every table has Unbounded set instead of a finite
// UpperLimit, representing +infinity.
type Slab struct {
	UpperLimit rupee.Amount
	Unbounded  bool
	Rate       decimal.Decimal
}

func lakh(n int64) rupee.Amount  { return rupee.FromInt(n * 100000) }
func crore(n int64) rupee.Amount { return rupee.FromInt(n * 10000000) }

func pct(p float64) decimal.Decimal { return decimal.NewFromFloat(p / 100.0) }

// NewRegimeSlabs returns the new-regime slab table for a financial year.
func NewRegimeSlabs(fy domain.FinancialYear) []Slab {
	switch fy.Normalize() {
	case domain.FY2025_26:
		return []Slab{
			{UpperLimit: lakh(4), Rate: pct(0)},
			{UpperLimit: lakh(8), Rate: pct(5)},
			{UpperLimit: lakh(12), Rate: pct(10)},
			{UpperLimit: lakh(16), Rate: pct(15)},
			{UpperLimit: lakh(20), Rate: pct(20)},
			{UpperLimit: lakh(24), Rate: pct(25)},
			{Unbounded: true, Rate: pct(30)},
		}
	default: // FY2024_25
		return []Slab{
			{UpperLimit: lakh(3), Rate: pct(0)},
			{UpperLimit: lakh(7), Rate: pct(5)},
			{UpperLimit: lakh(10), Rate: pct(10)},
			{UpperLimit: lakh(12), Rate: pct(15)},
			{UpperLimit: lakh(15), Rate: pct(20)},
			{Unbounded: true, Rate: pct(30)},
		}
	}
}

// OldRegimeSlabs returns the old-regime slab table for an age category. The
// table is the same across both supported financial years, so it takes no
// year; only the new regime's table changes year over year.
func OldRegimeSlabs(age domain.AgeCategory) []Slab {
	switch age {
	case domain.Senior:
		return []Slab{
			{UpperLimit: lakh(3), Rate: pct(0)},
			{UpperLimit: lakh(5), Rate: pct(5)},
			{UpperLimit: lakh(10), Rate: pct(20)},
			{Unbounded: true, Rate: pct(30)},
		}
	case domain.SuperSenior:
		return []Slab{
			{UpperLimit: lakh(5), Rate: pct(0)},
			{UpperLimit: lakh(10), Rate: pct(20)},
			{Unbounded: true, Rate: pct(30)},
		}
	default: // BelowSixty
		return []Slab{
			{UpperLimit: decimal25Lakh(), Rate: pct(0)},
			{UpperLimit: lakh(5), Rate: pct(5)},
			{UpperLimit: lakh(10), Rate: pct(20)},
			{Unbounded: true, Rate: pct(30)},
		}
	}
}

func decimal25Lakh() rupee.Amount { return rupee.FromInt(250000) }

// CessRate is the flat cess rate applied to (tax + surcharge).
var CessRate = pct(4)

// StandardDeduction returns the salary-head standard deduction for a
// financial year and regime.
func StandardDeduction(fy domain.FinancialYear, regime domain.Regime) rupee.Amount {
	switch fy.Normalize() {
	case domain.FY2025_26:
		return rupee.FromInt(75000)
	default: // FY2024_25
		if regime == domain.New {
			return rupee.FromInt(75000)
		}
		return rupee.FromInt(50000)
	}
}

// Rebate87A describes Section 87A's cliff rebate: if taxable income is at or
// below Ceiling, subtract min(tax, MaxRebate); otherwise the rebate is zero.
type Rebate87A struct {
	Ceiling   rupee.Amount
	MaxRebate rupee.Amount
}

// Rebate87ATable returns the 87A rebate parameters for a financial year and
// regime. Unknown financial years use the FY 2024-25 rows and any regime
// other than New uses the old-regime row, so every call returns a non-zero
// entry; a zero-value Rebate87A (ceiling 0) is treated as "no rebate" by
// the rebate step.
func Rebate87ATable(fy domain.FinancialYear, regime domain.Regime) Rebate87A {
	switch fy.Normalize() {
	case domain.FY2025_26:
		if regime == domain.New {
			return Rebate87A{Ceiling: lakh(12), MaxRebate: rupee.FromInt(60000)}
		}
		return Rebate87A{Ceiling: lakh(5), MaxRebate: rupee.FromInt(12500)}
	default: // FY2024_25
		if regime == domain.New {
			return Rebate87A{Ceiling: lakh(7), MaxRebate: rupee.FromInt(25000)}
		}
		return Rebate87A{Ceiling: lakh(5), MaxRebate: rupee.FromInt(12500)}
	}
}

// SurchargeSlabs returns the surcharge slab table for a regime. The new
// regime caps its top slab at 25% instead of the old regime's 37%.
func SurchargeSlabs(regime domain.Regime) []Slab {
	top := pct(37)
	if regime == domain.New {
		top = pct(25)
	}
	return []Slab{
		{UpperLimit: lakh(50), Rate: pct(0)},
		{UpperLimit: crore(1), Rate: pct(10)},
		{UpperLimit: crore(2), Rate: pct(15)},
		{UpperLimit: crore(5), Rate: pct(25)},
		{Unbounded: true, Rate: top},
	}
}

// DeductionLimits collects the Chapter VI-A caps and capital-gains rates
// used by the checks. These are currently constant across both supported
// financial years.
type DeductionLimits struct {
	Cap80C             rupee.Amount
	Cap80CCD1B         rupee.Amount
	Cap80DSelfBelow60  rupee.Amount
	Cap80DSelfSenior   rupee.Amount
	Cap24BSelfOccupied rupee.Amount
	LTCGExemption      rupee.Amount
	LTCGRate           decimal.Decimal
	STCGRate           decimal.Decimal
}

// Limits returns the deduction/exemption limits for a financial year. The
// 80D parents limit mirrors the self below-60/senior values, so it has no
// separate field here.
func Limits(domain.FinancialYear) DeductionLimits {
	return DeductionLimits{
		Cap80C:             rupee.FromInt(150000),
		Cap80CCD1B:         rupee.FromInt(50000),
		Cap80DSelfBelow60:  rupee.FromInt(25000),
		Cap80DSelfSenior:   rupee.FromInt(50000),
		Cap24BSelfOccupied: rupee.FromInt(200000),
		LTCGExemption:      rupee.FromInt(125000),
		LTCGRate:           pct(12.5),
		STCGRate:           pct(20),
	}
}

// StatutoryOverrides is a deployment-supplied YAML document carrying
// replacement values for a financial year's new-regime slab table and cess
// rate; no other table can be overridden. LoadOverrides only parses it: the
// table functions in this package do not consult it, and applying a field
// is left to the caller (ApplyNewRegimeSlabOverride converts the slab part).
type StatutoryOverrides struct {
	FinancialYear   domain.FinancialYear `yaml:"financial_year"`
	NewRegimeSlabs  []SlabOverride       `yaml:"new_regime_slabs,omitempty"`
	CessRatePercent *float64             `yaml:"cess_rate_percent,omitempty"`
}

// SlabOverride is the YAML-friendly mirror of Slab (plain numbers instead of
// decimal.Decimal / rupee.Amount, which do not round-trip through yaml.v3's
// default scalar decoding).
type SlabOverride struct {
	UpperLimitRupees int64   `yaml:"upper_limit_rupees,omitempty"`
	Unbounded        bool    `yaml:"unbounded,omitempty"`
	RatePercent      float64 `yaml:"rate_percent"`
}

// LoadOverrides reads a YAML file of statutory-table overrides. A missing
// file is not an error: the caller is expected to fall back to the built-in
// defaults.
func LoadOverrides(path string) (*StatutoryOverrides, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out StatutoryOverrides
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyNewRegimeSlabOverride converts a SlabOverride table into []Slab, for
// callers that loaded a StatutoryOverrides and want to substitute it for the
// built-in NewRegimeSlabs result.
func ApplyNewRegimeSlabOverride(overrides []SlabOverride) []Slab {
	slabs := make([]Slab, 0, len(overrides))
	for _, o := range overrides {
		slabs = append(slabs, Slab{
			UpperLimit: rupee.FromInt(o.UpperLimitRupees),
			Unbounded:  o.Unbounded,
			Rate:       pct(o.RatePercent),
		})
	}
	return slabs
}
