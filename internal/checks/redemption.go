package checks

import (
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
)

// effectiveLTCGRate is 12.5% LTCG plus 4% cess on that tax.
var effectiveLTCGRate = decimal.NewFromFloat(0.125).Mul(decimal.NewFromFloat(1.04))

// RedemptionExemptions carries the two inputs the redemption planner needs
// beyond the planned sale amount: the exemption already available this
// financial year, and the exemption expected to reset next financial year.
type RedemptionExemptions struct {
	ExemptionRemaining rupee.Amount
	ExemptionNextFY    rupee.Amount
}

// RedemptionPlan is the result of ComputeRedemptionTax: a side-by-side
// comparison of selling the full planned amount in one financial year
// versus splitting it across two.
type RedemptionPlan struct {
	PlannedLTCG rupee.Amount

	OneFYTaxableIncome rupee.Amount
	OneFYTax           rupee.Amount
	OneFYEffectiveRate decimal.Decimal

	SplitSellFY1     rupee.Amount
	SplitSellFY2     rupee.Amount
	SplitTaxableFY2  rupee.Amount
	SplitTaxFY2      rupee.Amount
	SplitTotal       rupee.Amount
	SplitEffectiveRate decimal.Decimal

	SplitBeneficial bool
	SplitSavings    rupee.Amount
}

// ComputeRedemptionTax is the auxiliary redemption planner: it compares
// selling a planned LTCG amount in one financial year against
// splitting the sale across the current and next financial year's LTCG
// exemption.
func ComputeRedemptionTax(plannedLTCG rupee.Amount, ex RedemptionExemptions) RedemptionPlan {
	planned := rupee.Max(plannedLTCG, rupee.Zero)
	exemptionRemaining := rupee.Max(ex.ExemptionRemaining, rupee.Zero)
	exemptionNextFY := rupee.Max(ex.ExemptionNextFY, rupee.Zero)

	oneFYTaxable := planned.Sub(exemptionRemaining).ClampNonNegative()
	oneFYTax := rupee.RoundHalfAwayFromZero(oneFYTaxable.Decimal().Mul(effectiveLTCGRate))

	sellFY1 := rupee.Min(planned, exemptionRemaining)
	sellFY2 := planned.Sub(sellFY1)
	taxableFY2 := sellFY2.Sub(exemptionNextFY).ClampNonNegative()
	taxFY2 := rupee.RoundHalfAwayFromZero(taxableFY2.Decimal().Mul(effectiveLTCGRate))
	splitTotal := taxFY2

	splitSavings := rupee.Max(oneFYTax.Sub(splitTotal), rupee.Zero)
	splitBeneficial := oneFYTax.Sub(splitTotal).IsPositive()

	oneFYRate := decimal.Zero
	if planned.IsPositive() {
		oneFYRate = oneFYTax.Decimal().Div(planned.Decimal())
	}
	splitRate := decimal.Zero
	if planned.IsPositive() {
		splitRate = splitTotal.Decimal().Div(planned.Decimal())
	}

	return RedemptionPlan{
		PlannedLTCG:        planned,
		OneFYTaxableIncome: oneFYTaxable,
		OneFYTax:           oneFYTax,
		OneFYEffectiveRate: oneFYRate,
		SplitSellFY1:       sellFY1,
		SplitSellFY2:       sellFY2,
		SplitTaxableFY2:    taxableFY2,
		SplitTaxFY2:        taxFY2,
		SplitTotal:         splitTotal,
		SplitEffectiveRate: splitRate,
		SplitBeneficial:    splitBeneficial,
		SplitSavings:       splitSavings,
	}
}
