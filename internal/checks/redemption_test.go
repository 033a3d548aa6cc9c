package checks

import (
	"testing"

	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/stretchr/testify/assert"
)

func TestComputeRedemptionTaxS4(t *testing.T) {
	plan := ComputeRedemptionTax(rupee.FromInt(300000), RedemptionExemptions{
		ExemptionRemaining: rupee.FromInt(125000),
		ExemptionNextFY:    rupee.FromInt(125000),
	})

	assert.Equal(t, rupee.FromInt(175000), plan.OneFYTaxableIncome)
	assert.Equal(t, rupee.FromInt(22750), plan.OneFYTax)
	assert.Equal(t, rupee.FromInt(125000), plan.SplitSellFY1)
	assert.Equal(t, rupee.FromInt(175000), plan.SplitSellFY2)
	assert.Equal(t, rupee.FromInt(50000), plan.SplitTaxableFY2)
	assert.Equal(t, rupee.FromInt(6500), plan.SplitTaxFY2)
	assert.Equal(t, rupee.FromInt(6500), plan.SplitTotal)
	assert.Equal(t, rupee.FromInt(16250), plan.SplitSavings)
	assert.True(t, plan.SplitBeneficial)
}

func TestComputeRedemptionTaxExemptionLaw(t *testing.T) {
	plan := ComputeRedemptionTax(rupee.FromInt(500000), RedemptionExemptions{ExemptionRemaining: rupee.FromInt(125000)})
	assert.Equal(t, plan.PlannedLTCG, plan.OneFYTaxableIncome.Add(rupee.FromInt(125000)))
}

func TestComputeRedemptionTaxClampsNegativeInput(t *testing.T) {
	plan := ComputeRedemptionTax(rupee.FromInt(-500), RedemptionExemptions{})
	assert.True(t, plan.PlannedLTCG.IsZero())
	assert.True(t, plan.OneFYTax.IsZero())
}

func TestComputeRedemptionTaxZeroPlannedHasZeroRates(t *testing.T) {
	plan := ComputeRedemptionTax(rupee.Zero, RedemptionExemptions{ExemptionRemaining: rupee.FromInt(100000)})
	assert.True(t, plan.OneFYEffectiveRate.IsZero())
	assert.True(t, plan.SplitEffectiveRate.IsZero())
}
