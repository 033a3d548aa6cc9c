package checks

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// EightyCGap checks how much of the ₹1,50,000 combined 80C/80CCC/80CCD(1)
// cap is unused.
func EightyCGap(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	limits := constants.Limits(fy)
	current := rupee.Min(p.Deduction80C.Add(p.Deduction80CCC).Add(p.Deduction80CCD1), limits.Cap80C)
	gap := limits.Cap80C.Sub(current)

	details := map[string]any{
		"epf_contribution":  p.EPFEmployeeContribution,
		"current_80c_total": current,
		"gap":               gap,
	}

	if gap <= 0 {
		return domain.Finding{
			CheckID:     domain.Check80CGap,
			CheckName:   "80C Gap",
			Status:      domain.Optimized,
			Finding:     "Your 80C/80CCC/80CCD(1) deduction is already at the ₹1,50,000 cap.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "current_80c_total already equals or exceeds the combined cap.",
			Details:     details,
		}
	}

	marginal := marginalRateAtOldGTI(p, opts, fy)
	savings := savingsFromGap(gap, marginal)
	details["marginal_rate"] = marginal

	return domain.Finding{
		CheckID:   domain.Check80CGap,
		CheckName: "80C Gap",
		Status:    domain.Opportunity,
		Finding:   fmt.Sprintf("₹%s of your 80C/80CCC/80CCD(1) cap is unused.", gap.String()),
		Savings:   savings,
		Action:    fmt.Sprintf("Invest ₹%s more in ELSS, PPF, life insurance premium or EPF before the financial year closes.", gap.String()),
		Deadline:  "March 31 (investment deadline)",
		Confidence: domain.Likely,
		Explanation: "savings = gap × marginal_rate × 1.04, assuming the old regime (the regime comparator decides whether this is actually claimable).",
		Details:   details,
	}
}
