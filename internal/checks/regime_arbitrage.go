package checks

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/internal/taxmath"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// RegimeArbitrage is the highest-impact check: it compares the new-regime
// tax on the profile as declared against a fully-optimized old-regime
// scenario (full 80C, full 80CCD1B, optimal HRA, topped-up 80D, the
// profile's own 24b).
func RegimeArbitrage(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	limits := constants.Limits(fy)

	newTaxable := taxmath.NewRegimeTaxableIncome(p, fy)
	newTaxBreakdown := taxmath.NewRegimeTax(newTaxable, fy)
	newTax := newTaxBreakdown.Total

	var optimalHRA rupee.Amount
	if p.HRAReceived.IsPositive() && p.MonthlyRent.IsPositive() {
		optimalHRA = taxmath.HRAExemption(p.BasicSalary, p.HRAReceived, p.AnnualRent(), p.IsMetro())
	}

	optimal80C := limits.Cap80C
	optimal80CCD1B := limits.Cap80CCD1B

	selfLimit, parentsLimit := ageLimits(opts.SelfSenior, opts.ParentsSenior, limits)
	var target80D rupee.Amount
	if opts.SelfSenior {
		target80D = selfLimit.Add(parentsLimit)
	} else {
		target80D = parentsLimit
	}
	optimal80D := rupee.Max(p.Deduction80D, target80D)

	optimal24B := rupee.Min(p.Deduction24B, limits.Cap24BSelfOccupied)

	overrides := &taxmath.OldRegimeOverrides{
		HRAExemption:     &optimalHRA,
		Chapter80C:       &optimal80C,
		Deduction80D:     &optimal80D,
		Deduction80CCD1B: &optimal80CCD1B,
		Deduction24B:     &optimal24B,
	}
	oldBreakdown := taxmath.OldRegimeTaxableIncome(p, fy, overrides, limits)
	oldTaxBreakdown := taxmath.OldRegimeTax(oldBreakdown.TaxableIncome, fy, opts.Age)
	oldTax := oldTaxBreakdown.Total

	savings := rupee.Max(newTax.Sub(oldTax), rupee.Zero)

	recommendedRegime := domain.New
	status := domain.Optimized
	finding := fmt.Sprintf(
		"Staying in the new regime already beats a fully-optimized old regime by ₹%s.",
		oldTax.Sub(newTax).ClampNonNegative().String(),
	)
	explanation := "New-regime tax is lower than even a fully-optimized old-regime tax, so no regime switch is recommended."
	if savings.IsPositive() {
		recommendedRegime = domain.Old
		status = domain.Opportunity
		finding = fmt.Sprintf("Switching to the old regime and claiming every available deduction saves ₹%s this year.", savings.String())
		explanation = "Old-regime tax, after maxing 80C, 80CCD(1B), HRA and 80D, is lower than new-regime tax on the declared profile."
	}

	deductionsNeeded := map[string]any{}
	if gap := limits.Cap80C.Sub(p.Deduction80C.Add(p.Deduction80CCC).Add(p.Deduction80CCD1)); gap.IsPositive() {
		deductionsNeeded["80c_gap"] = gap
	}
	if gap := limits.Cap80CCD1B.Sub(p.Deduction80CCD1B); gap.IsPositive() {
		deductionsNeeded["80ccd_1b_gap"] = gap
	}
	if gap := optimal80D.Sub(p.Deduction80D); gap.IsPositive() {
		deductionsNeeded["80d_gap"] = gap
	}
	if gap := optimalHRA.Sub(p.HRAExemption); gap.IsPositive() {
		deductionsNeeded["hra_exemption_gap"] = gap
	}

	return domain.Finding{
		CheckID:     domain.CheckRegimeArbitrage,
		CheckName:   "Regime Comparator",
		Status:      status,
		Finding:     finding,
		Savings:     savings,
		Action:      "Compare regimes before filing and declare your choice to your employer.",
		Deadline:    "July 31 (ITR filing deadline)",
		Confidence:  domain.Definite,
		Explanation: explanation,
		Details: map[string]any{
			"recommended_regime": recommendedRegime,
			"new_regime": map[string]any{
				"taxable_income": newTaxable,
				"tax":            newTax,
				"tax_breakdown":  newTaxBreakdown,
			},
			"old_regime": map[string]any{
				"taxable_income":   oldBreakdown.TaxableIncome,
				"tax":              oldTax,
				"tax_breakdown":    oldTaxBreakdown,
				"breakdown":        oldBreakdown,
				"optimal_hra":      optimalHRA,
				"optimal_80c":      optimal80C,
				"optimal_80d":      optimal80D,
				"optimal_80ccd_1b": optimal80CCD1B,
				"optimal_24b":      optimal24B,
			},
			"deductions_needed": deductionsNeeded,
		},
	}
}
