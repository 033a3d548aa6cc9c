// Package orchestrator holds the engine's composition root: it runs every
// check, resolves the regime interdependency, and assembles the final
// Report. A small struct carries a Logger, with one method that walks a
// fixed pipeline and returns an owned result.
package orchestrator

import (
	"fmt"
	"sort"

	"github.com/rpgo/taxhawk/internal/checks"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// Logger is the engine's logging seam: an interface with a no-op default so
// callers can wire in any structured logger without the engine importing one
// directly.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards every message. It is the Engine's default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// deductionBasedChecks lists the check_ids the regime-interdependency rule
// suppresses when the recommended regime is new.
var deductionBasedChecks = map[string]bool{
	domain.Check80CGap:        true,
	domain.Check80DCheck:      true,
	domain.CheckHRAOptimizer:  true,
	domain.CheckNPSCheck:      true,
	domain.CheckHomeLoanCheck: true,
}

// Engine runs the optimization pipeline over a single profile.
type Engine struct {
	Logger Logger
}

// New builds an Engine with the given logger, defaulting to NopLogger.
func New(logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Engine{Logger: logger}
}

// Analyze runs the seven checks, applies the regime interdependency rule,
// computes total savings, sorts findings, and returns the assembled Report.
func (e *Engine) Analyze(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options) domain.Report {
	fy := p.FinancialYear.Normalize()

	if h == nil {
		empty := domain.Empty()
		h = &empty
	}

	e.Logger.Debugf("running %d checks for financial year %s", len(checks.All), fy)
	findings := make([]domain.Finding, 0, len(checks.All))
	for _, check := range checks.All {
		findings = append(findings, check(p, h, opts, fy))
	}

	recommendedRegime := domain.New
	var regimeFinding, capitalGainsFinding *domain.Finding
	for i := range findings {
		switch findings[i].CheckID {
		case domain.CheckRegimeArbitrage:
			regimeFinding = &findings[i]
			if r, ok := regimeFinding.Details["recommended_regime"].(domain.Regime); ok {
				recommendedRegime = r
			}
		case domain.CheckCapitalGains:
			capitalGainsFinding = &findings[i]
		}
	}

	if recommendedRegime == domain.New {
		for i := range findings {
			if !deductionBasedChecks[findings[i].CheckID] {
				continue
			}
			original := findings[i].Savings
			findings[i].Status = domain.NotApplicable
			findings[i].Savings = rupee.Zero
			if original.IsPositive() {
				findings[i].Finding = fmt.Sprintf("Not applicable under new regime (would save ₹%s under old).", original.String())
			}
		}
	}

	totalSavings := rupee.Zero
	if regimeFinding != nil {
		totalSavings = totalSavings.Add(regimeFinding.Savings)
	}
	if capitalGainsFinding != nil {
		totalSavings = totalSavings.Add(capitalGainsFinding.Savings)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Savings > findings[j].Savings
	})

	return domain.Report{
		UserName:          p.EmployeeName,
		FinancialYear:     fy,
		CurrentRegime:     p.CurrentRegime,
		RecommendedRegime: recommendedRegime,
		TotalSavings:      totalSavings,
		Checks:            findings,
		Summary:           buildSummary(totalSavings, recommendedRegime, findings),
		Disclaimer:        disclaimer,
	}
}

const disclaimer = "This is an automated estimate based on the inputs provided and the statutory rules for the selected financial year. It is not tax advice; consult a qualified professional before acting on it."

func buildSummary(totalSavings rupee.Amount, recommendedRegime domain.Regime, findings []domain.Finding) string {
	summary := fmt.Sprintf("Recommended regime: %s. Total estimated savings: ₹%s.", recommendedRegime, totalSavings.String())
	for _, f := range findings {
		if f.Status == domain.Opportunity && f.Savings.IsPositive() {
			summary += fmt.Sprintf(" %s: ₹%s.", f.CheckName, f.Savings.String())
		}
	}
	return summary
}
