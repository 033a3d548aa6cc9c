// Package checks implements the engine's seven optimization checks, plus the
// auxiliary redemption planner. Every check is a pure function from
// (profile, holdings, options) to a domain.Finding; none of them mutate
// their inputs or raise errors — precondition failures and already-optimized
// states are reported through FindingStatus.
package checks

import (
	"github.com/rpgo/taxhawk/internal/constants"
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/internal/taxmath"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/shopspring/decimal"
)

// Check is the uniform shape every optimization check implements: a named
// pure function over a fixed input tuple that returns one structured result.
type Check func(p *domain.SalaryProfile, h *domain.Holdings, opts domain.Options, fy domain.FinancialYear) domain.Finding

// All lists the seven checks in canonical order. The orchestrator runs them
// in this order before sorting by savings.
var All = []Check{
	RegimeArbitrage,
	EightyCGap,
	EightyDCheck,
	HRAOptimizer,
	CapitalGains,
	NPSCheck,
	HomeLoanCheck,
}

// marginalRateAtOldGTI evaluates the marginal rate at the profile's
// as-declared old-regime GTI, the rule shared by every deduction-based
// check: savings are always priced at the old-regime marginal rate.
func marginalRateAtOldGTI(p *domain.SalaryProfile, opts domain.Options, fy domain.FinancialYear) decimal.Decimal {
	limits := constants.Limits(fy)
	breakdown := taxmath.OldRegimeTaxableIncome(p, fy, nil, limits)
	slabs := constants.OldRegimeSlabs(opts.Age)
	return taxmath.GetMarginalRate(breakdown.GTI, slabs)
}

// savingsFromGap applies the shared "gap × marginal_rate × (1 + cess_rate)"
// formula, rounded half-away-from-zero to the nearest rupee.
func savingsFromGap(gap rupee.Amount, marginalRate decimal.Decimal) rupee.Amount {
	onePlusCess := decimal.NewFromInt(1).Add(constants.CessRate)
	raw := gap.Decimal().Mul(marginalRate).Mul(onePlusCess)
	return rupee.RoundHalfAwayFromZero(raw)
}

// ageLimits resolves the 80D self/parents limits from the age flags. The
// parents limit mirrors the self limit's below-60/senior values.
func ageLimits(selfSenior, parentsSenior bool, limits constants.DeductionLimits) (selfLimit, parentsLimit rupee.Amount) {
	selfLimit = limits.Cap80DSelfBelow60
	if selfSenior {
		selfLimit = limits.Cap80DSelfSenior
	}
	parentsLimit = limits.Cap80DSelfBelow60
	if parentsSenior {
		parentsLimit = limits.Cap80DSelfSenior
	}
	return
}
