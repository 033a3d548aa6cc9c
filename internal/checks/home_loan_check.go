package checks

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// HomeLoanCheck is display-only, like HRAOptimizer: its benefit is already
// priced into the regime comparator.
func HomeLoanCheck(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	if p.Deduction24B.IsZero() {
		return domain.Finding{
			CheckID:     domain.CheckHomeLoanCheck,
			CheckName:   "Home Loan Interest (24b)",
			Status:      domain.NotApplicable,
			Finding:     "No home loan interest deduction declared.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "deduction_24b is zero.",
		}
	}

	limits := constants.Limits(fy)
	capped := rupee.Min(p.Deduction24B, limits.Cap24BSelfOccupied)
	marginal := marginalRateAtOldGTI(p, opts, fy)
	displaySaving := savingsFromGap(capped, marginal)

	finding := fmt.Sprintf("Your self-occupied home loan interest is eligible for up to ₹%s under Section 24(b).", capped.String())
	if p.Deduction24B > limits.Cap24BSelfOccupied {
		finding = fmt.Sprintf("Your home loan interest of ₹%s is capped at ₹%s under Section 24(b) for a self-occupied property.", p.Deduction24B.String(), capped.String())
	}

	return domain.Finding{
		CheckID:   domain.CheckHomeLoanCheck,
		CheckName: "Home Loan Interest (24b)",
		Status:    domain.Opportunity,
		Finding:   finding,
		Savings:   rupee.Zero,
		Action:    "Ensure your lender's interest certificate is available at filing time.",
		Deadline:  "July 31 (ITR filing deadline)",
		Confidence: domain.Definite,
		Explanation: "Savings are reported as zero here and counted inside the regime comparator's old-regime scenario, to avoid double-counting.",
		Details: map[string]any{
			"capped_amount":  capped,
			"display_saving": displaySaving,
			"marginal_rate":  marginal,
		},
	}
}
