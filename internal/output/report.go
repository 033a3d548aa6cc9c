package output

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rpgo/taxhawk/internal/domain"
)

// ErrUnsupportedFormat is returned when a caller names a format this package
// does not register.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// WriteFormatted runs a formatter and writes its output to path, returning
// the path written. An empty path falls back to a timestamped filename in
// the working directory, using ext as the file extension.
func WriteFormatted(f Formatter, report *domain.Report, path, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = fmt.Sprintf("taxhawk_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateReport writes a Report using the named formatter to path. An empty
// path falls back to a timestamped filename with an extension inferred from
// the format name.
func GenerateReport(report *domain.Report, format, path string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	return WriteFormatted(f, report, path, ext)
}
