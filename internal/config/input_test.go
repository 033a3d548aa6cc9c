package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
salary_profile:
  financial_year: "2024-25"
  employee_name: Priya Sharma
  gross_salary: 1500000
  basic_salary: 600000
  hra_received: 300000
  professional_tax: 2400
  80c: 72000
  epf_employee_contribution: 72000
  city: mumbai
  monthly_rent: 25000
  regime: new
options:
  self_senior: false
  parents_senior: false
`

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempFile(t, sampleYAML)
	doc, warnings, err := Loader{}.LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "Priya Sharma", doc.SalaryProfile.EmployeeName)
	assert.NotNil(t, doc.Holdings)
	assert.Empty(t, doc.Holdings.Items)
}

func TestLoadFromFileMissingFile(t *testing.T) {
	_, _, err := Loader{}.LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateDocumentFlagsBasicAboveGross(t *testing.T) {
	path := writeTempFile(t, sampleYAML)
	doc, _, err := Loader{}.LoadFromFile(path)
	require.NoError(t, err)

	doc.SalaryProfile.BasicSalary = doc.SalaryProfile.GrossSalary + 1
	warnings := ValidateDocument(doc)
	assert.Contains(t, warnings, "basic_salary exceeds gross_salary")
}
