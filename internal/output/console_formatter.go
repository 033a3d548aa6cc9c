package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/taxhawk/internal/domain"
)

// ConsoleFormatter renders a plain-text summary of a Report: one headline
// line per finding, followed by a savings line when savings are positive and
// an action line for opportunities, in the report's order (savings
// descending).
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TAX OPTIMIZATION REPORT — %s (FY %s)\n", report.UserName, report.FinancialYear)
	fmt.Fprintln(&buf, "================================================")
	fmt.Fprintf(&buf, "Current regime: %s  Recommended regime: %s\n", report.CurrentRegime, report.RecommendedRegime)
	fmt.Fprintf(&buf, "Total estimated savings: %s\n\n", FormatRupee(report.TotalSavings))

	for _, f := range report.Checks {
		fmt.Fprintf(&buf, "[%s] %s — %s\n", f.Status, f.CheckName, f.Finding)
		if f.Savings.IsPositive() {
			fmt.Fprintf(&buf, "  Savings: %s\n", FormatRupee(f.Savings))
		}
		if f.Action != "" && f.Status == domain.Opportunity {
			fmt.Fprintf(&buf, "  Action: %s (deadline: %s)\n", f.Action, f.Deadline)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, report.Summary)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, report.Disclaimer)
	return buf.Bytes(), nil
}
