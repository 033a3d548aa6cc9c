// Package taxmath holds the engine's pure, side-effect-free arithmetic
// primitives that turn a taxable income into a final payable tax. Every
// function here is a deterministic function of its arguments and the
// tables in internal/constants; none of them touch a SalaryProfile's
// exemptions or deductions directly, so each rule can be tested in
// isolation from the shape of the caller's input.
package taxmath

import (
	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
)

// TaxOnSlabs applies a progressive slab table to income and returns the
// unrounded tax liability. Intermediate arithmetic stays in decimal.Decimal;
// callers round to the nearest rupee only at designated rounding sites.
func TaxOnSlabs(income rupee.Amount, slabs []constants.Slab) decimal.Decimal {
	total := decimal.Zero
	lower := rupee.Zero
	incomeDec := income.Decimal()
	for _, s := range slabs {
		if lower.Decimal().GreaterThanOrEqual(incomeDec) {
			break
		}
		var upperDec decimal.Decimal
		if s.Unbounded {
			upperDec = incomeDec
		} else {
			upperDec = decimal.Min(s.UpperLimit.Decimal(), incomeDec)
		}
		span := upperDec.Sub(lower.Decimal())
		if span.IsPositive() {
			total = total.Add(span.Mul(s.Rate))
		}
		if !s.Unbounded {
			lower = s.UpperLimit
		}
	}
	return total
}

// GetMarginalRate returns the rate of the slab an income falls into.
func GetMarginalRate(income rupee.Amount, slabs []constants.Slab) decimal.Decimal {
	for _, s := range slabs {
		if s.Unbounded || income <= s.UpperLimit {
			return s.Rate
		}
	}
	if len(slabs) > 0 {
		return slabs[len(slabs)-1].Rate
	}
	return decimal.Zero
}

// ApplyCess applies the flat cess rate to a tax-plus-surcharge amount.
func ApplyCess(taxPlusSurcharge decimal.Decimal) decimal.Decimal {
	return taxPlusSurcharge.Mul(constants.CessRate)
}

// Apply87ARebate applies Section 87A's cliff rebate to a pre-rebate tax
// amount: at or below the ceiling, subtract min(tax, max_rebate); above it,
// the rebate is zero and the full marginal benefit of crossing is lost.
func Apply87ARebate(taxableIncome rupee.Amount, taxBeforeRebate decimal.Decimal, fy domain.FinancialYear, regime domain.Regime) decimal.Decimal {
	table := constants.Rebate87ATable(fy, regime)
	if table.Ceiling.IsZero() || taxableIncome > table.Ceiling {
		return taxBeforeRebate
	}
	rebate := decimal.Min(taxBeforeRebate, table.MaxRebate.Decimal())
	return taxBeforeRebate.Sub(rebate)
}

// surchargeBracket returns the index into slabs of the bracket income falls
// into, and that bracket's rate.
func surchargeBracket(income rupee.Amount, slabs []constants.Slab) (int, decimal.Decimal) {
	for i, s := range slabs {
		if s.Unbounded || income <= s.UpperLimit {
			return i, s.Rate
		}
	}
	last := len(slabs) - 1
	return last, slabs[last].Rate
}

// Surcharge computes surcharge on tax-after-rebate, applying marginal
// relief at each slab threshold: the combined increase in
// tax-plus-surcharge caused by crossing into a higher surcharge bracket can
// never exceed the increase in income that caused the crossing.
func Surcharge(taxableIncome rupee.Amount, taxAfterRebate decimal.Decimal, regime domain.Regime, slabTable []constants.Slab) decimal.Decimal {
	sc := constants.SurchargeSlabs(regime)
	idx, rate := surchargeBracket(taxableIncome, sc)
	if rate.IsZero() {
		return decimal.Zero
	}
	raw := taxAfterRebate.Mul(rate)
	if idx == 0 {
		return raw
	}

	threshold := sc[idx-1].UpperLimit
	prevRate := sc[idx-1].Rate
	// Marginal relief compares against tax computed at the threshold before
	// the 87A rebate: incomes high enough to trigger surcharge are always
	// well above every rebate ceiling, so the rebate step is a no-op there.
	taxAtThreshold := TaxOnSlabs(threshold, slabTable)
	surchargeAtThreshold := taxAtThreshold.Mul(prevRate)
	excessIncome := taxableIncome.Sub(threshold).Decimal()
	cap := taxAtThreshold.Add(surchargeAtThreshold).Add(excessIncome)

	rawTotal := taxAfterRebate.Add(raw)
	if rawTotal.GreaterThan(cap) {
		relieved := cap.Sub(taxAfterRebate)
		if relieved.IsNegative() {
			relieved = decimal.Zero
		}
		return relieved
	}
	return raw
}

// HRAExemption computes the Section 10(13A) exemption: the least of HRA
// received, rent paid minus 10% of basic salary, and 50%/40% of basic
// salary for metro/non-metro cities, clamped to zero.
func HRAExemption(basicSalary, hraReceived, annualRent rupee.Amount, isMetro bool) rupee.Amount {
	rentMinusTenPct := annualRent.Decimal().Sub(basicSalary.Decimal().Mul(decimal.NewFromFloat(0.10)))
	cityPct := decimal.NewFromFloat(0.40)
	if isMetro {
		cityPct = decimal.NewFromFloat(0.50)
	}
	basicPct := basicSalary.Decimal().Mul(cityPct)

	least := hraReceived.Decimal()
	least = decimal.Min(least, rentMinusTenPct)
	least = decimal.Min(least, basicPct)
	least = rupee.ClampDecimalNonNegative(least)
	return rupee.RoundHalfAwayFromZero(least)
}

// OldRegimeOverrides lets a caller substitute hypothetical values for any
// line item of the old-regime taxable-income pipeline without mutating the
// caller's SalaryProfile — the regime_arbitrage check uses this to price a
// fully-optimized old-regime scenario alongside the profile's as-declared
// one. A nil field falls back to the corresponding SalaryProfile value.
type OldRegimeOverrides struct {
	HRAExemption   *rupee.Amount
	LTAExemption   *rupee.Amount
	OtherExemption *rupee.Amount
	Chapter80C     *rupee.Amount // already-capped combined 80C+80CCC+80CCD1
	Deduction80D   *rupee.Amount
	Deduction80CCD1B *rupee.Amount
	Deduction80CCD2  *rupee.Amount
	Deduction24B     *rupee.Amount
}

func pickOverride(override *rupee.Amount, fallback rupee.Amount) rupee.Amount {
	if override != nil {
		return *override
	}
	return fallback
}

// OldRegimeBreakdown is the full line-item trace of OldRegimeTaxableIncome,
// exposed so checks can report "deductions_needed" detail without
// recomputing the pipeline.
type OldRegimeBreakdown struct {
	NetSalary        rupee.Amount
	GTI              rupee.Amount
	Cap80C           rupee.Amount
	Cap24B           rupee.Amount
	Deduction80D     rupee.Amount
	Deduction80CCD1B rupee.Amount
	Deduction80CCD2  rupee.Amount
	OtherDeductions  rupee.Amount
	TotalVIA         rupee.Amount
	TaxableIncome    rupee.Amount
}

// OldRegimeTaxableIncome runs the old-regime taxable-income pipeline: net
// salary, GTI, capped 80C/24b, the remaining Chapter VI-A items, and the
// resulting taxable income. overrides may be nil to use the profile's
// as-declared values throughout.
func OldRegimeTaxableIncome(p *domain.SalaryProfile, fy domain.FinancialYear, overrides *OldRegimeOverrides, limits constants.DeductionLimits) OldRegimeBreakdown {
	var ov OldRegimeOverrides
	if overrides != nil {
		ov = *overrides
	}

	hraExempt := pickOverride(ov.HRAExemption, p.HRAExemption)
	ltaExempt := pickOverride(ov.LTAExemption, p.LTAExemption)
	otherExempt := pickOverride(ov.OtherExemption, p.OtherExemptions)
	netSalary := p.GrossSalary.Sub(hraExempt).Sub(ltaExempt).Sub(otherExempt)

	gti := netSalary.Sub(constants.StandardDeduction(fy, domain.Old)).Sub(p.ProfessionalTax)

	chapter80C := pickOverride(ov.Chapter80C, p.Deduction80C.Add(p.Deduction80CCC).Add(p.Deduction80CCD1))
	cap80C := rupee.Min(chapter80C, limits.Cap80C)

	cap24B := rupee.Min(pickOverride(ov.Deduction24B, p.Deduction24B), limits.Cap24BSelfOccupied)

	deduction80D := pickOverride(ov.Deduction80D, p.Deduction80D)
	deduction80CCD1B := pickOverride(ov.Deduction80CCD1B, p.Deduction80CCD1B)
	deduction80CCD2 := pickOverride(ov.Deduction80CCD2, p.Deduction80CCD2)

	other := p.Deduction80E.Add(p.Deduction80G).Add(p.Deduction80TTA).Add(p.OtherDeductions)

	totalVIA := cap80C.Add(deduction80CCD1B).Add(deduction80CCD2).Add(deduction80D).Add(cap24B).Add(other)
	taxable := gti.Sub(totalVIA).ClampNonNegative()

	return OldRegimeBreakdown{
		NetSalary:        netSalary,
		GTI:              gti.ClampNonNegative(),
		Cap80C:           cap80C,
		Cap24B:           cap24B,
		Deduction80D:     deduction80D,
		Deduction80CCD1B: deduction80CCD1B,
		Deduction80CCD2:  deduction80CCD2,
		OtherDeductions:  other,
		TotalVIA:         totalVIA,
		TaxableIncome:    taxable,
	}
}

// NewRegimeTaxableIncome derives new-regime taxable income: gross salary
// less the standard deduction, professional tax, and the employer's NPS
// contribution (80CCD2) — the only Chapter VI-A item the new regime still
// allows.
func NewRegimeTaxableIncome(p *domain.SalaryProfile, fy domain.FinancialYear) rupee.Amount {
	taxable := p.GrossSalary.
		Sub(constants.StandardDeduction(fy, domain.New)).
		Sub(p.ProfessionalTax).
		Sub(p.Deduction80CCD2)
	return taxable.ClampNonNegative()
}

// RegimeTaxBreakdown is the full line-item trace of a regime's tax pipeline:
// the pre-rebate slab tax, tax after the 87A rebate, surcharge with marginal
// relief, cess, and the rounded total payable.
type RegimeTaxBreakdown struct {
	BaseTax     rupee.Amount
	AfterRebate rupee.Amount
	Surcharge   rupee.Amount
	Cess        rupee.Amount
	Total       rupee.Amount
}

// OldRegimeTax runs the full old-regime pipeline: slabs, 87A rebate,
// surcharge with marginal relief, cess, rounded to the nearest rupee.
func OldRegimeTax(taxableIncome rupee.Amount, fy domain.FinancialYear, age domain.AgeCategory) RegimeTaxBreakdown {
	slabs := constants.OldRegimeSlabs(age)
	return runPipeline(taxableIncome, slabs, fy, domain.Old)
}

// NewRegimeTax runs the full new-regime pipeline. The new regime has no
// age-based slab variation.
func NewRegimeTax(taxableIncome rupee.Amount, fy domain.FinancialYear) RegimeTaxBreakdown {
	slabs := constants.NewRegimeSlabs(fy)
	return runPipeline(taxableIncome, slabs, fy, domain.New)
}

func runPipeline(taxableIncome rupee.Amount, slabs []constants.Slab, fy domain.FinancialYear, regime domain.Regime) RegimeTaxBreakdown {
	taxRaw := TaxOnSlabs(taxableIncome, slabs)
	afterRebate := Apply87ARebate(taxableIncome, taxRaw, fy, regime)
	surcharge := Surcharge(taxableIncome, afterRebate, regime, slabs)
	cess := ApplyCess(afterRebate.Add(surcharge))
	total := afterRebate.Add(surcharge).Add(cess)
	return RegimeTaxBreakdown{
		BaseTax:     rupee.RoundHalfAwayFromZero(taxRaw),
		AfterRebate: rupee.RoundHalfAwayFromZero(afterRebate),
		Surcharge:   rupee.RoundHalfAwayFromZero(surcharge),
		Cess:        rupee.RoundHalfAwayFromZero(cess),
		Total:       rupee.RoundHalfAwayFromZero(total),
	}
}
