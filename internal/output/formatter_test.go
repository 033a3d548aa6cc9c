package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/rpgo/taxhawk/pkg/rupee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport() *domain.Report {
	return &domain.Report{
		UserName:          "Priya Sharma",
		FinancialYear:     domain.FY2024_25,
		CurrentRegime:     domain.New,
		RecommendedRegime: domain.Old,
		TotalSavings:      rupee.FromInt(20982),
		Checks: []domain.Finding{
			{
				CheckID:   domain.CheckRegimeArbitrage,
				CheckName: "Regime Comparator",
				Status:    domain.Opportunity,
				Finding:   "Switching to the old regime saves ₹16120 this year.",
				Savings:   rupee.FromInt(16120),
				Action:    "Declare your regime choice to your employer.",
				Deadline:  "July 31 (ITR filing deadline)",
				Confidence: domain.Definite,
			},
			{
				CheckID:   domain.CheckCapitalGains,
				CheckName: "Capital Gains Harvesting",
				Status:    domain.Opportunity,
				Finding:   "₹37400 of unrealized long-term gains fits inside your exemption.",
				Savings:   rupee.FromInt(4862),
				Action:    "Harvest before March 31.",
				Deadline:  "March 31 (investment deadline)",
				Confidence: domain.Likely,
			},
		},
		Summary:    "Recommended regime: old. Total estimated savings: ₹20982.",
		Disclaimer: "This is an automated estimate, not tax advice.",
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	out, err := f.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Priya Sharma")
	assert.Contains(t, content, "Regime Comparator")
	assert.Contains(t, content, "₹16120")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	f := JSONFormatter{}
	out, err := f.Format(buildTestReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"check_id": "regime_arbitrage"`)
	assert.Contains(t, string(out), `"total_savings": 20982`)
}

func TestCSVFormatterHasOneRowPerFinding(t *testing.T) {
	f := CSVFormatter{}
	out, err := f.Format(buildTestReport())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, 3) // header + 2 findings
	assert.True(t, strings.HasPrefix(lines[1], "regime_arbitrage,"))
}

func TestGetFormatterByNameResolvesAliases(t *testing.T) {
	f := GetFormatterByName("json-pretty")
	require.NotNil(t, f)
	assert.Equal(t, "json", f.Name())
}

func TestGetFormatterByNameUnknownReturnsNil(t *testing.T) {
	assert.Nil(t, GetFormatterByName("definitely-not-a-format"))
}

func TestGenerateReportUnknownFormatError(t *testing.T) {
	_, err := GenerateReport(buildTestReport(), "definitely-not-a-format", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestGenerateReportWritesToGivenPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	written, err := GenerateReport(buildTestReport(), "json", path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"check_id": "regime_arbitrage"`)
}
