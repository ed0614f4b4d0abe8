package export

import (
	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
)

type attendanceRow struct {
	Date     string `csv:"Date"`
	Location string `csv:"Location"`
	Status   string `csv:"Status"`
	RegHours string `csv:"Reg Hours"`
	OTHours  string `csv:"OT Hours"`
	Earnings string `csv:"Earnings"`
}

type transactionRow struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	PaymentMode string `csv:"Payment Mode"`
	Notes       string `csv:"Notes"`
}

type summaryRow struct {
	Label string `csv:"Summary"`
	Value string `csv:"Amount"`
}

func attendanceRows(logs []attendance.AttendanceLog) []attendanceRow {
	rows := make([]attendanceRow, 0, len(logs))
	for _, l := range logs {
		r := attendance.NewAttendanceLogResponse(l)
		rows = append(rows, attendanceRow{
			Date:     r.Date,
			Location: string(r.Location),
			Status:   string(r.Status),
			RegHours: r.RegHours.String(),
			OTHours:  r.OTHours.String(),
			Earnings: r.Earnings.StringFixed(2),
		})
	}
	return rows
}

func transactionRows(txs []transaction.TransactionLog) []transactionRow {
	rows := make([]transactionRow, 0, len(txs))
	for _, t := range txs {
		r := transaction.NewTransactionLogResponse(t)
		row := transactionRow{
			Date:        r.Date,
			Type:        string(r.Type),
			Amount:      r.Amount.StringFixed(2),
			PaymentMode: r.PaymentMode,
		}
		if r.Notes != nil {
			row.Notes = *r.Notes
		}
		rows = append(rows, row)
	}
	return rows
}

// summaryRows renders the three figures already computed by the aggregator.
func summaryRows(r report.MonthlyReport) []summaryRow {
	return []summaryRow{
		{Label: "Employee", Value: r.EmployeeName},
		{Label: "Month", Value: r.MonthName},
		{Label: "Total Earned", Value: r.Detail.TotalEarned.StringFixed(2)},
		{Label: "Total Paid Out", Value: r.Detail.TotalPaidOut.StringFixed(2)},
		{Label: "Net Payable", Value: r.Detail.NetPayable().StringFixed(2)},
	}
}
