package checks

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// EightyDCheck checks health-insurance premium deduction headroom under
// Section 80D.
func EightyDCheck(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	limits := constants.Limits(fy)
	selfLimit, parentsLimit := ageLimits(opts.SelfSenior, opts.ParentsSenior, limits)
	totalLimit := selfLimit.Add(parentsLimit)

	details := map[string]any{
		"current_80d":  p.Deduction80D,
		"self_limit":   selfLimit,
		"parents_limit": parentsLimit,
		"total_limit":  totalLimit,
	}

	if p.Deduction80D >= totalLimit {
		return domain.Finding{
			CheckID:     domain.Check80DCheck,
			CheckName:   "80D Check",
			Status:      domain.Optimized,
			Finding:     "Your health insurance premium deduction already covers the full 80D limit.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "current_80d already meets or exceeds self_limit + parents_limit.",
			Details:     details,
		}
	}

	var recommendedPremium rupee.Amount
	if p.Deduction80D.IsZero() {
		recommendedPremium = parentsLimit
	} else {
		recommendedPremium = totalLimit.Sub(p.Deduction80D)
	}
	marginal := marginalRateAtOldGTI(p, opts, fy)
	savings := savingsFromGap(recommendedPremium, marginal)
	details["recommended_premium"] = recommendedPremium
	details["marginal_rate"] = marginal

	return domain.Finding{
		CheckID:   domain.Check80DCheck,
		CheckName: "80D Check",
		Status:    domain.Opportunity,
		Finding:   fmt.Sprintf("You can claim ₹%s more health insurance premium under 80D.", recommendedPremium.String()),
		Savings:   savings,
		Action:    fmt.Sprintf("Buy or top up a health policy covering ₹%s of annual premium.", recommendedPremium.String()),
		Deadline:  "March 31 (investment deadline)",
		Confidence: domain.Likely,
		Explanation: "When current_80d is zero the employer is assumed to cover self, so only the parents' limit is targeted; otherwise the remaining headroom to the combined limit is targeted.",
		Details:   details,
	}
}
