package export

import (
	"fmt"
	"io"

	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/tealeg/xlsx"
)

type XLSXExporter struct{}

var _ report.Exporter = XLSXExporter{}

func (XLSXExporter) Format() report.Format { return report.FormatXLSX }

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) Export(w io.Writer, r report.MonthlyReport) error {
	file := xlsx.NewFile()

	att, err := file.AddSheet("Attendance")
	if err != nil {
		return fmt.Errorf("add attendance sheet: %w", err)
	}
	addRow(att, "Date", "Location", "Status", "Reg Hours", "OT Hours", "Earnings")
	for _, row := range attendanceRows(r.Detail.Logs) {
		addRow(att, row.Date, row.Location, row.Status, row.RegHours, row.OTHours, row.Earnings)
	}

	txs, err := file.AddSheet("Transactions")
	if err != nil {
		return fmt.Errorf("add transactions sheet: %w", err)
	}
	addRow(txs, "Date", "Type", "Amount", "Payment Mode", "Notes")
	for _, row := range transactionRows(r.Detail.Transactions) {
		addRow(txs, row.Date, row.Type, row.Amount, row.PaymentMode, row.Notes)
	}

	summary, err := file.AddSheet("Summary")
	if err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	for _, row := range summaryRows(r) {
		addRow(summary, row.Label, row.Value)
	}

	return file.Write(w)
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}
