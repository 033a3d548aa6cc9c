package checks

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// NPSCheck checks headroom in the additional ₹50,000 NPS deduction under
// Section 80CCD(1B).
func NPSCheck(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	limits := constants.Limits(fy)
	gap := rupee.Max(limits.Cap80CCD1B.Sub(p.Deduction80CCD1B), rupee.Zero)

	details := map[string]any{
		"current_80ccd_1b": p.Deduction80CCD1B,
		"cap":              limits.Cap80CCD1B,
		"gap":              gap,
	}

	if gap.IsZero() {
		return domain.Finding{
			CheckID:     domain.CheckNPSCheck,
			CheckName:   "NPS 80CCD(1B)",
			Status:      domain.Optimized,
			Finding:     "Your additional NPS deduction already reaches the ₹50,000 cap.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "current_80ccd_1b already equals or exceeds the cap.",
			Details:     details,
		}
	}

	marginal := marginalRateAtOldGTI(p, opts, fy)
	savings := savingsFromGap(gap, marginal)
	details["marginal_rate"] = marginal

	return domain.Finding{
		CheckID:   domain.CheckNPSCheck,
		CheckName: "NPS 80CCD(1B)",
		Status:    domain.Opportunity,
		Finding:   fmt.Sprintf("₹%s of the additional NPS deduction is unused.", gap.String()),
		Savings:   savings,
		Action:    fmt.Sprintf("Contribute ₹%s more to a Tier-I NPS account before the financial year closes.", gap.String()),
		Deadline:  "March 31 (investment deadline)",
		Confidence: domain.Likely,
		Explanation: "savings = gap × marginal_rate × 1.04, independent of the 80C cap.",
		Details:   details,
	}
}
