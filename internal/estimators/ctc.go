// Package estimators builds approximate SalaryProfile and Holdings records
// from the small number of inputs a quick what-if scenario provides: small
// pure constructor functions that derive a richer structure from fewer
// fields. These are convenience entry points, not a replacement for a
// caller supplying an exact SalaryProfile.
package estimators

import (
	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// Standard CTC-to-component ratios used when a caller has only an annual CTC
// figure and no payslip breakdown. These are rough industry norms, not
// statutory values.
const (
	basicOfCTCRatio         = 0.40
	hraOfBasicMetroRatio    = 0.50
	hraOfBasicNonMetroRatio = 0.40
)

// EstimateFromCTC derives an approximate SalaryProfile from an annual CTC
// figure, city, and monthly rent. Basic salary is assumed to be 40% of CTC;
// HRA is assumed paid at the statutory metro/non-metro ceiling of basic; the
// remainder becomes special allowance.
func EstimateFromCTC(fy domain.FinancialYear, ctc rupee.Amount, employeeName, city string, monthlyRent rupee.Amount) *domain.SalaryProfile {
	basic := rupee.FromInt(int64(float64(ctc) * basicOfCTCRatio))
	hraRatio := hraOfBasicNonMetroRatio
	if domain.IsMetro(city) {
		hraRatio = hraOfBasicMetroRatio
	}
	hra := rupee.FromInt(int64(float64(basic) * hraRatio))
	special := ctc.Sub(basic).Sub(hra).ClampNonNegative()

	return &domain.SalaryProfile{
		FinancialYear:    fy,
		EmployeeName:     employeeName,
		GrossSalary:      ctc,
		BasicSalary:      basic,
		HRAReceived:      hra,
		SpecialAllowance: special,
		City:             city,
		MonthlyRent:      monthlyRent,
		CurrentRegime:    domain.New,
	}
}
