// Package config loads a SalaryProfile, Holdings and Options record from a
// YAML (or JSON, which is a YAML subset) file, then runs an advisory
// validation pass: a thin loader plus a separate non-fatal validation step.
package config

import (
	"fmt"
	"os"

	"github.com/rpgo/taxhawk/internal/domain"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a TaxHawk input file: a salary profile,
// optional holdings, and the run options.
type Document struct {
	SalaryProfile domain.SalaryProfile `yaml:"salary_profile"`
	Holdings      *domain.Holdings     `yaml:"holdings,omitempty"`
	Options       domain.Options       `yaml:"options"`
}

// Loader reads and validates a Document from disk.
type Loader struct{}

// LoadFromFile reads a YAML document from path and returns it along with
// any advisory validation warnings. A parse failure is a hard error; a
// validation warning is not — callers decide whether to proceed.
func (Loader) LoadFromFile(path string) (*Document, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input file %q: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing input file %q: %w", path, err)
	}

	if doc.Holdings == nil {
		empty := domain.Empty()
		doc.Holdings = &empty
	}

	warnings := ValidateDocument(&doc)
	return &doc, warnings, nil
}

// ValidateDocument runs every advisory check, all of them non-fatal:
// malformed input never blocks a run, it only surfaces warnings.
func ValidateDocument(doc *Document) []string {
	var warnings []string
	warnings = append(warnings, doc.SalaryProfile.Validate()...)

	for i, h := range doc.Holdings.Items {
		if h.Quantity.IsNegative() {
			warnings = append(warnings, fmt.Sprintf("holdings[%d]: quantity is negative", i))
		}
		if h.PurchasePrice.IsNegative() || h.CurrentPrice.IsNegative() {
			warnings = append(warnings, fmt.Sprintf("holdings[%d]: price is negative", i))
		}
	}

	return warnings
}
