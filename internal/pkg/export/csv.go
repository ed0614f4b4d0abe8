package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
)

// CSVExporter writes three blank-line separated sections: attendance,
// transactions and summary.
type CSVExporter struct{}

var _ report.Exporter = CSVExporter{}

func (CSVExporter) Format() report.Format { return report.FormatCSV }

func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVExporter) Export(w io.Writer, r report.MonthlyReport) error {
	if err := gocsv.Marshal(attendanceRows(r.Detail.Logs), w); err != nil {
		return fmt.Errorf("write attendance section: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := gocsv.Marshal(transactionRows(r.Detail.Transactions), w); err != nil {
		return fmt.Errorf("write transactions section: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := gocsv.Marshal(summaryRows(r), w); err != nil {
		return fmt.Errorf("write summary section: %w", err)
	}
	return nil
}

// Exporters returns the built-in exporters keyed by format.
func Exporters() map[report.Format]report.Exporter {
	return map[report.Format]report.Exporter{
		report.FormatXLSX: XLSXExporter{},
		report.FormatCSV:  CSVExporter{},
	}
}
