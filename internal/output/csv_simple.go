package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/taxhawk/internal/domain"
)

// CSVFormatter renders one row per Finding, for spreadsheet consumption.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"check_id", "check_name", "status", "savings", "confidence", "finding", "action", "deadline"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, f := range report.Checks {
		row := []string{
			f.CheckID,
			f.CheckName,
			string(f.Status),
			f.Savings.String(),
			string(f.Confidence),
			f.Finding,
			f.Action,
			f.Deadline,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
