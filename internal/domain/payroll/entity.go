package payroll

import (
	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// PayrollStat - Per-employee running totals, derived on every read.
// Balance = TotalEarnings - TotalPaid and may be negative when overpaid.
type PayrollStat struct {
	ID            string
	Name          string
	TotalEarnings decimal.Decimal
	TotalPaid     decimal.Decimal
	Balance       decimal.Decimal
}

// IsDue reports whether money is still owed to the employee.
func (s PayrollStat) IsDue() bool {
	return s.Balance.IsPositive()
}

// GlobalTotals - Sums over a set of PayrollStat
type GlobalTotals struct {
	TotalDue  decimal.Decimal
	TotalPaid decimal.Decimal
}

// MonthlyDetail - One employee's activity in a calendar month.
// TotalPaidOut only counts Advance and Payment transactions.
type MonthlyDetail struct {
	TotalEarned  decimal.Decimal
	TotalPaidOut decimal.Decimal
	Logs         []attendance.AttendanceLog
	Transactions []transaction.TransactionLog
}

// NetPayable is what remains for the month after payouts.
func (d MonthlyDetail) NetPayable() decimal.Decimal {
	return d.TotalEarned.Sub(d.TotalPaidOut)
}
