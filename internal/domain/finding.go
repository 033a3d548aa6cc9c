package domain

import "github.com/rpgo/taxhawk/pkg/rupee"

// Finding is the uniform result shape every check returns.
// Details is an open, check-specific bag of supplementary fields (regime
// breakdowns, deduction gaps, holding-period alerts, ...) so the orchestrator
// can remain ignorant of each check's internals while still being able to
// read domain_specific fields such as recommended_regime off it.
type Finding struct {
	CheckID     string        `json:"check_id"`
	CheckName   string        `json:"check_name"`
	Status      FindingStatus `json:"status"`
	Finding     string        `json:"finding"`
	Savings     rupee.Amount  `json:"savings"`
	Action      string        `json:"action"`
	Deadline    string        `json:"deadline"`
	Confidence  Confidence    `json:"confidence"`
	Explanation string        `json:"explanation"`
	Details     map[string]any `json:"details,omitempty"`
}

// Report is the orchestrator's final output.
type Report struct {
	UserName          string        `json:"user_name"`
	FinancialYear     FinancialYear `json:"financial_year"`
	CurrentRegime     Regime        `json:"current_regime"`
	RecommendedRegime Regime        `json:"recommended_regime"`
	TotalSavings      rupee.Amount  `json:"total_savings"`
	Checks            []Finding     `json:"checks"`
	Summary           string        `json:"summary"`
	Disclaimer        string        `json:"disclaimer"`
}
