package domain

import (
	"github.com/rpgo/taxhawk/pkg/rupee"
)

// SalaryProfile is the caller-owned input describing one salaried
// individual's financial-year salary, exemptions, and deductions. All
// monetary fields are non-negative integer rupees per year unless noted.
type SalaryProfile struct {
	FinancialYear FinancialYear `yaml:"financial_year" json:"financial_year"`
	EmployeeName  string        `yaml:"employee_name" json:"employee_name"`
	PAN           string        `yaml:"pan" json:"pan"`
	EmployerName  string        `yaml:"employer_name" json:"employer_name"`

	// Salary components.
	GrossSalary       rupee.Amount `yaml:"gross_salary" json:"gross_salary"`
	BasicSalary       rupee.Amount `yaml:"basic_salary" json:"basic_salary"`
	HRAReceived       rupee.Amount `yaml:"hra_received" json:"hra_received"`
	SpecialAllowance  rupee.Amount `yaml:"special_allowance" json:"special_allowance"`
	LTA               rupee.Amount `yaml:"lta" json:"lta"`
	Bonus             rupee.Amount `yaml:"bonus" json:"bonus"`
	OtherSalary       rupee.Amount `yaml:"other_salary" json:"other_salary"`

	// Section 10 exemptions currently claimed.
	HRAExemption   rupee.Amount `yaml:"hra_exemption" json:"hra_exemption"`
	LTAExemption   rupee.Amount `yaml:"lta_exemption" json:"lta_exemption"`
	OtherExemptions rupee.Amount `yaml:"other_exemptions" json:"other_exemptions"`

	// Salary-head deductions.
	StandardDeduction rupee.Amount `yaml:"standard_deduction" json:"standard_deduction"`
	ProfessionalTax   rupee.Amount `yaml:"professional_tax" json:"professional_tax"`

	// Chapter VI-A deductions currently claimed.
	Deduction80C     rupee.Amount `yaml:"80c" json:"80c"`
	Deduction80CCC   rupee.Amount `yaml:"80ccc" json:"80ccc"`
	Deduction80CCD1  rupee.Amount `yaml:"80ccd_1" json:"80ccd_1"`
	Deduction80CCD1B rupee.Amount `yaml:"80ccd_1b" json:"80ccd_1b"`
	Deduction80CCD2  rupee.Amount `yaml:"80ccd_2" json:"80ccd_2"`
	Deduction80D     rupee.Amount `yaml:"80d" json:"80d"`
	Deduction80E     rupee.Amount `yaml:"80e" json:"80e"`
	Deduction80G     rupee.Amount `yaml:"80g" json:"80g"`
	Deduction80TTA   rupee.Amount `yaml:"80tta" json:"80tta"`
	Deduction24B     rupee.Amount `yaml:"24b" json:"24b"`
	OtherDeductions  rupee.Amount `yaml:"other" json:"other"`

	// Declared tax figures, informational only.
	DeclaredTaxableIncome rupee.Amount `yaml:"taxable_income" json:"taxable_income"`
	DeclaredTaxPayable    rupee.Amount `yaml:"tax_payable" json:"tax_payable"`
	DeclaredCess          rupee.Amount `yaml:"cess" json:"cess"`
	DeclaredTotalTaxPaid  rupee.Amount `yaml:"total_tax_paid" json:"total_tax_paid"`

	CurrentRegime           Regime       `yaml:"regime" json:"regime"`
	City                    string       `yaml:"city" json:"city"`
	MonthlyRent             rupee.Amount `yaml:"monthly_rent" json:"monthly_rent"`
	EPFEmployeeContribution rupee.Amount `yaml:"epf_employee_contribution" json:"epf_employee_contribution"`
}

// IsMetro reports whether the profile's city is classified as metro.
func (p *SalaryProfile) IsMetro() bool { return IsMetro(p.City) }

// TotalExemptions sums the Section 10 exemptions currently claimed.
func (p *SalaryProfile) TotalExemptions() rupee.Amount {
	return p.HRAExemption.Add(p.LTAExemption).Add(p.OtherExemptions)
}

// TotalChapterVIA sums every Chapter VI-A deduction currently claimed.
func (p *SalaryProfile) TotalChapterVIA() rupee.Amount {
	return p.Deduction80C.Add(p.Deduction80CCC).Add(p.Deduction80CCD1).
		Add(p.Deduction80CCD1B).Add(p.Deduction80CCD2).Add(p.Deduction80D).
		Add(p.Deduction80E).Add(p.Deduction80G).Add(p.Deduction80TTA).
		Add(p.Deduction24B).Add(p.OtherDeductions)
}

// AnnualRent returns the monthly rent annualized.
func (p *SalaryProfile) AnnualRent() rupee.Amount {
	return rupee.FromInt(int64(p.MonthlyRent) * 12)
}

// Validate returns advisory warnings for invariant violations, all of them
// non-fatal: the engine never rejects a malformed profile, it only flags it
// for the caller.
func (p *SalaryProfile) Validate() []string {
	var warnings []string
	checkNonNegative := func(label string, v rupee.Amount) {
		if v < 0 {
			warnings = append(warnings, label+" is negative")
		}
	}
	checkNonNegative("gross_salary", p.GrossSalary)
	checkNonNegative("basic_salary", p.BasicSalary)
	checkNonNegative("hra_received", p.HRAReceived)
	checkNonNegative("monthly_rent", p.MonthlyRent)
	checkNonNegative("epf_employee_contribution", p.EPFEmployeeContribution)
	if p.BasicSalary > p.GrossSalary {
		warnings = append(warnings, "basic_salary exceeds gross_salary")
	}
	return warnings
}

// Options carries per-run inputs that are not part of the salary profile:
// age-category flags used by the 80D and regime checks, and an optional
// override for the capital-gains check's as_of date.
type Options struct {
	SelfSenior    bool `yaml:"self_senior" json:"self_senior"`
	ParentsSenior bool `yaml:"parents_senior" json:"parents_senior"`
	Age           AgeCategory `yaml:"age_category" json:"age_category"`
	CGAsOf        *string     `yaml:"cg_as_of,omitempty" json:"cg_as_of,omitempty"`
}
