// Package output holds the engine's pluggable report formatters: console,
// JSON, and CSV renderings of a domain.Report, selected by name through a
// small registry.
package output

import (
	"sort"
	"strings"

	"github.com/rpgo/taxhawk/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations are pure: no side effects besides deterministic formatting.
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	Name() string
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(*domain.Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                            { return ff.ID }

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter by its canonical name or
// a recognized alias. Returns nil if no formatter matches.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name || f.Name() == n {
			return f
		}
	}
	return nil
}

var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"json-pretty": "json",
	"csv-summary": "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
