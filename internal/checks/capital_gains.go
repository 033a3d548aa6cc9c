package checks

import (
	"fmt"
	"time"

	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
)

// parseCGAsOf parses options.CGAsOf (YYYY-MM-DD) into the override
// *time.Time that Holdings.AsOf expects, returning nil if unset or
// malformed.
func parseCGAsOf(opts domain.Options) *time.Time {
	if opts.CGAsOf == nil {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", *opts.CGAsOf)
	if err != nil {
		return nil
	}
	return &parsed
}

// CapitalGains is regime-independent: it looks for unrealized long-term
// gains that fit inside the unused ₹1,25,000 LTCG exemption and flags
// holdings approaching the 12-month long-term boundary.
func CapitalGains(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding {
	if h == nil || len(h.Items) == 0 {
		return domain.Finding{
			CheckID:     domain.CheckCapitalGains,
			CheckName:   "Capital Gains Harvesting",
			Status:      domain.NotApplicable,
			Finding:     "No equity/mutual-fund holdings provided.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Definite,
			Explanation: "holdings list is empty.",
		}
	}

	limits := constants.Limits(fy)
	asOf := h.AsOf(time.Now(), parseCGAsOf(opts))

	unrealizedLTCG := decimal.Zero
	var holdingPeriodAlerts []map[string]any
	var unrealizedLosses []map[string]any

	for i := range h.Items {
		holding := &h.Items[i]
		gain := holding.UnrealizedGain()
		months := holding.HoldingMonths(asOf)
		longTerm := holding.IsLongTerm(asOf)

		if gain.IsNegative() {
			unrealizedLosses = append(unrealizedLosses, map[string]any{
				"security_name": holding.SecurityName,
				"loss":          gain,
				"is_long_term":  longTerm,
			})
			continue
		}
		if !gain.IsPositive() {
			continue
		}
		if longTerm {
			unrealizedLTCG = unrealizedLTCG.Add(gain)
			continue
		}
		if months >= 10 && months <= 12 {
			stcgTax := gain.Mul(limits.STCGRate).Mul(decimal.NewFromInt(1).Add(constants.CessRate))
			holdingPeriodAlerts = append(holdingPeriodAlerts, map[string]any{
				"security_name":    holding.SecurityName,
				"months_held":      months,
				"months_to_ltcg":   13 - months,
				"unrealized_gain":  gain,
				"stcg_tax_avoided": rupee.RoundHalfAwayFromZero(stcgTax),
			})
		}
	}

	exemptionRemaining := rupee.Max(limits.LTCGExemption.Sub(h.RealizedLTCGThisFY), rupee.Zero)
	unrealizedLTCGAmount := rupee.RoundHalfAwayFromZero(unrealizedLTCG)
	harvestable := rupee.Min(unrealizedLTCGAmount, exemptionRemaining)
	futureTaxSaved := savingsFromGap(harvestable, limits.LTCGRate)

	details := map[string]any{
		"as_of":                 asOf.Format("2006-01-02"),
		"unrealized_ltcg":       unrealizedLTCGAmount,
		"exemption_remaining":   exemptionRemaining,
		"harvestable":           harvestable,
		"holding_period_alerts": holdingPeriodAlerts,
		"unrealized_losses":     unrealizedLosses,
	}

	if harvestable.IsZero() && len(holdingPeriodAlerts) == 0 {
		return domain.Finding{
			CheckID:     domain.CheckCapitalGains,
			CheckName:   "Capital Gains Harvesting",
			Status:      domain.Optimized,
			Finding:     "No harvestable long-term gains and no holdings approaching the 12-month boundary.",
			Savings:     rupee.Zero,
			Action:      "No action needed.",
			Deadline:    "N/A",
			Confidence:  domain.Likely,
			Explanation: "Either the LTCG exemption is already used up or there is no unrealized long-term gain to harvest.",
			Details:     details,
		}
	}

	return domain.Finding{
		CheckID:   domain.CheckCapitalGains,
		CheckName: "Capital Gains Harvesting",
		Status:    domain.Opportunity,
		Finding:   fmt.Sprintf("₹%s of unrealized long-term gains fits inside your unused LTCG exemption.", harvestable.String()),
		Savings:   futureTaxSaved,
		Action:    "Sell and (optionally) repurchase long-term holdings up to the harvestable amount before March 31.",
		Deadline:  "March 31 (investment deadline)",
		Confidence: domain.Likely,
		Explanation: "future_tax_saved = harvestable × 12.5% × 1.04, the tax this gain would otherwise attract in a future year once the exemption is gone.",
		Details:   details,
	}
}
