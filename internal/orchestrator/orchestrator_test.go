package orchestrator

import (
	"testing"
	"time"

	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priyaProfile() *domain.SalaryProfile {
	return &domain.SalaryProfile{
		FinancialYear:           domain.FY2024_25,
		EmployeeName:            "Priya Sharma",
		GrossSalary:             rupee.FromInt(1500000),
		BasicSalary:             rupee.FromInt(600000),
		HRAReceived:             rupee.FromInt(300000),
		ProfessionalTax:         rupee.FromInt(2400),
		Deduction80C:            rupee.FromInt(72000),
		EPFEmployeeContribution: rupee.FromInt(72000),
		City:                    "mumbai",
		MonthlyRent:             rupee.FromInt(25000),
		CurrentRegime:           domain.New,
	}
}

func priyaHoldings() *domain.Holdings {
	return &domain.Holdings{
		Items: []domain.Holding{
			{SecurityName: "Fund A", SecurityType: domain.EquityMF, PurchaseDate: date(2022, 1, 1), PurchasePrice: decimal.NewFromInt(100000), Quantity: decimal.NewFromInt(1), CurrentPrice: decimal.NewFromInt(120000)},
			{SecurityName: "Stock B", SecurityType: domain.EquityShare, PurchaseDate: date(2022, 6, 1), PurchasePrice: decimal.NewFromInt(50000), Quantity: decimal.NewFromInt(1), CurrentPrice: decimal.NewFromInt(62400)},
			{SecurityName: "ELSS C", SecurityType: domain.ELSS, PurchaseDate: date(2021, 1, 1), PurchasePrice: decimal.NewFromInt(30000), Quantity: decimal.NewFromInt(1), CurrentPrice: decimal.NewFromInt(35000)},
			{SecurityName: "Fund D", SecurityType: domain.EquityMF, PurchaseDate: date(2024, 9, 1), PurchasePrice: decimal.NewFromInt(20000), Quantity: decimal.NewFromInt(1), CurrentPrice: decimal.NewFromInt(25000)},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func asOfOpts() domain.Options {
	asOf := "2025-03-31"
	return domain.Options{Age: domain.BelowSixty, CGAsOf: &asOf}
}

func TestAnalyzeS1PriyaFullProfile(t *testing.T) {
	engine := New(nil)
	report := engine.Analyze(priyaProfile(), priyaHoldings(), asOfOpts())

	require.Len(t, report.Checks, 7)
	assert.Equal(t, domain.Old, report.RecommendedRegime)
	assert.Equal(t, rupee.FromInt(20982), report.TotalSavings)

	byID := map[string]domain.Finding{}
	for _, f := range report.Checks {
		byID[f.CheckID] = f
	}
	assert.Equal(t, rupee.FromInt(16120), byID[domain.CheckRegimeArbitrage].Savings)
	assert.Equal(t, rupee.FromInt(4862), byID[domain.CheckCapitalGains].Savings)
	assert.Equal(t, rupee.FromInt(24336), byID[domain.Check80CGap].Savings)
	assert.Equal(t, rupee.FromInt(15600), byID[domain.CheckNPSCheck].Savings)
	assert.Equal(t, rupee.FromInt(7800), byID[domain.Check80DCheck].Savings)
	assert.True(t, byID[domain.CheckHRAOptimizer].Savings.IsZero())
	assert.Equal(t, domain.NotApplicable, byID[domain.CheckHomeLoanCheck].Status)
}

func TestAnalyzeS2HomeLoanInterest(t *testing.T) {
	p := priyaProfile()
	p.Deduction24B = rupee.FromInt(200000)
	engine := New(nil)

	s1Report := engine.Analyze(priyaProfile(), priyaHoldings(), asOfOpts())
	s2Report := engine.Analyze(p, priyaHoldings(), asOfOpts())

	var s1Regime, s2Regime domain.Finding
	var s2HomeLoan domain.Finding
	for _, f := range s1Report.Checks {
		if f.CheckID == domain.CheckRegimeArbitrage {
			s1Regime = f
		}
	}
	for _, f := range s2Report.Checks {
		if f.CheckID == domain.CheckRegimeArbitrage {
			s2Regime = f
		}
		if f.CheckID == domain.CheckHomeLoanCheck {
			s2HomeLoan = f
		}
	}

	assert.True(t, s2Regime.Savings > s1Regime.Savings)
	assert.Equal(t, domain.Opportunity, s2HomeLoan.Status)
	assert.True(t, s2HomeLoan.Savings.IsZero())
	assert.Equal(t, rupee.FromInt(200000), s2HomeLoan.Details["capped_amount"])
	assert.Equal(t, rupee.FromInt(62400), s2HomeLoan.Details["display_saving"])
}

func TestAnalyzeS3LowIncomeNewRegimeWins(t *testing.T) {
	p := &domain.SalaryProfile{
		FinancialYear:   domain.FY2024_25,
		EmployeeName:    "Low Income User",
		GrossSalary:     rupee.FromInt(600000),
		BasicSalary:     rupee.FromInt(300000),
		ProfessionalTax: rupee.FromInt(2400),
		CurrentRegime:   domain.New,
	}
	engine := New(nil)
	report := engine.Analyze(p, nil, domain.Options{Age: domain.BelowSixty})

	assert.Equal(t, domain.New, report.RecommendedRegime)
	assert.True(t, report.TotalSavings.IsZero())
	for _, f := range report.Checks {
		if f.CheckID == domain.CheckCapitalGains {
			continue
		}
		if f.CheckID == domain.CheckRegimeArbitrage {
			continue
		}
		assert.Equal(t, domain.NotApplicable, f.Status, "check %s should be suppressed", f.CheckID)
		assert.True(t, f.Savings.IsZero())
	}
}

func TestAnalyzeSortsBySavingsDescending(t *testing.T) {
	engine := New(nil)
	report := engine.Analyze(priyaProfile(), priyaHoldings(), asOfOpts())
	for i := 1; i < len(report.Checks); i++ {
		assert.True(t, report.Checks[i-1].Savings >= report.Checks[i].Savings)
	}
}

func TestAnalyzeNonDoubleCounting(t *testing.T) {
	engine := New(nil)
	report := engine.Analyze(priyaProfile(), priyaHoldings(), asOfOpts())

	var sumAll rupee.Amount
	for _, f := range report.Checks {
		sumAll = sumAll.Add(f.Savings)
	}
	assert.True(t, report.TotalSavings <= sumAll)
}

func TestAnalyzeHandlesNilHoldings(t *testing.T) {
	engine := New(nil)
	report := engine.Analyze(priyaProfile(), nil, asOfOpts())
	require.Len(t, report.Checks, 7)
}
