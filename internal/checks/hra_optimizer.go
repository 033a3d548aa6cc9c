package checks

import (
	"fmt"

	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/internal/taxmath"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// HRAOptimizer is display-only: its effect is already priced into the
// regime comparator, so it never reports nonzero savings of its own; doing
// so would double-count against the regime-arbitrage finding.
func HRAOptimizer(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	if p.HRAReceived.IsZero() || p.MonthlyRent.IsZero() {
		return domain.Finding{
			CheckID:     domain.CheckHRAOptimizer,
			CheckName:   "HRA Optimizer",
			Status:      domain.NotApplicable,
			Finding:     "No HRA received or no rent paid, so HRA exemption does not apply.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "hra_received or monthly_rent is zero.",
		}
	}

	optimum := taxmath.HRAExemption(p.BasicSalary, p.HRAReceived, p.AnnualRent(), p.IsMetro())
	details := map[string]any{
		"current_exemption": p.HRAExemption,
		"optimum":           optimum,
		"basic_salary":      p.BasicSalary,
		"hra_received":      p.HRAReceived,
		"annual_rent":       p.AnnualRent(),
		"is_metro":          p.IsMetro(),
	}

	if optimum.IsZero() {
		return domain.Finding{
			CheckID:     domain.CheckHRAOptimizer,
			CheckName:   "HRA Optimizer",
			Status:      domain.NotApplicable,
			Finding:     "Rent paid does not exceed 10% of basic salary, so no HRA exemption is available.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "min(hra_received, rent - 10%*basic, city%*basic) evaluates to zero.",
			Details:     details,
		}
	}

	if p.HRAExemption >= optimum {
		return domain.Finding{
			CheckID:     domain.CheckHRAOptimizer,
			CheckName:   "HRA Optimizer",
			Status:      domain.Optimized,
			Finding:     "Your claimed HRA exemption already matches the statutory optimum.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "current_exemption already meets or exceeds the formula optimum.",
			Details:     details,
		}
	}

	return domain.Finding{
		CheckID:   domain.CheckHRAOptimizer,
		CheckName: "HRA Optimizer",
		Status:    domain.Opportunity,
		Finding:   fmt.Sprintf("You could claim up to ₹%s in HRA exemption, versus ₹%s currently.", optimum.String(), p.HRAExemption.String()),
		Savings:   rupee.Zero,
		Action:    "Submit rent receipts and, above ₹1,00,000/year, the landlord's PAN to your employer.",
		Deadline:  "March 31 (investment deadline)",
		Confidence: domain.Definite,
		Explanation: "Savings are reported as zero here and counted inside the regime comparator's old-regime scenario, to avoid double-counting the same rupee of benefit.",
		Details:   details,
	}
}
