package constants

import (
	"testing"

	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/stretchr/testify/assert"
)

func TestNewRegimeSlabsFY202425(t *testing.T) {
	slabs := NewRegimeSlabs(domain.FY2024_25)
	assert.Len(t, slabs, 6)
	assert.Equal(t, rupee.FromInt(300000), slabs[0].UpperLimit)
	assert.True(t, slabs[5].Unbounded)
}

func TestNewRegimeSlabsFY202526HasSevenBrackets(t *testing.T) {
	slabs := NewRegimeSlabs(domain.FY2025_26)
	assert.Len(t, slabs, 7)
	assert.Equal(t, rupee.FromInt(2400000), slabs[5].UpperLimit)
}

func TestOldRegimeSlabsByAge(t *testing.T) {
	below60 := OldRegimeSlabs(domain.BelowSixty)
	assert.Equal(t, rupee.FromInt(250000), below60[0].UpperLimit)

	senior := OldRegimeSlabs(domain.Senior)
	assert.Equal(t, rupee.FromInt(300000), senior[0].UpperLimit)

	superSenior := OldRegimeSlabs(domain.SuperSenior)
	assert.Equal(t, rupee.FromInt(500000), superSenior[0].UpperLimit)
}

func TestUnknownFinancialYearFallsBackTo202425(t *testing.T) {
	unknown := domain.FinancialYear("1999-00")
	assert.Equal(t, NewRegimeSlabs(domain.FY2024_25), NewRegimeSlabs(unknown.Normalize()))
}

func TestRebate87ATable(t *testing.T) {
	newFY25 := Rebate87ATable(domain.FY2024_25, domain.New)
	assert.Equal(t, rupee.FromInt(700000), newFY25.Ceiling)
	assert.Equal(t, rupee.FromInt(25000), newFY25.MaxRebate)

	newFY26 := Rebate87ATable(domain.FY2025_26, domain.New)
	assert.Equal(t, rupee.FromInt(1200000), newFY26.Ceiling)
	assert.Equal(t, rupee.FromInt(60000), newFY26.MaxRebate)
}

func TestSurchargeSlabsCapNewRegimeAt25Percent(t *testing.T) {
	old := SurchargeSlabs(domain.Old)
	newR := SurchargeSlabs(domain.New)
	assert.True(t, old[len(old)-1].Rate.Equal(pct(37)))
	assert.True(t, newR[len(newR)-1].Rate.Equal(pct(25)))
}

func TestLoadOverridesMissingFileIsNotAnError(t *testing.T) {
	out, err := LoadOverrides("/nonexistent/overrides.yaml")
	assert.NoError(t, err)
	assert.Nil(t, out)
}
