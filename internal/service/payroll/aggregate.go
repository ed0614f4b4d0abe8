package payroll

import (
	"strings"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// The functions in this file are pure: they never mutate their arguments and
// always return freshly allocated slices.

// sameID compares ids exactly. Record coercion already stringifies numeric
// ids and trims text ones at the source boundary.
func sameID(a, b string) bool {
	return a == b
}

// inMonth matches on calendar month only; the year is ignored.
// Undated rows never match.
func inMonth(date time.Time, month int) bool {
	if date.IsZero() {
		return false
	}
	return int(date.Month())-1 == month
}

// ComputePayrollStats returns one stat per employee, in input order.
// TotalPaid sums every transaction type.
func ComputePayrollStats(
	employees []employee.Employee,
	attendanceLogs []attendance.AttendanceLog,
	transactionLogs []transaction.TransactionLog,
) []payroll.PayrollStat {
	stats := make([]payroll.PayrollStat, 0, len(employees))

	for _, emp := range employees {
		earned := decimal.Zero
		for _, log := range attendanceLogs {
			if sameID(log.EmployeeID, emp.ID) {
				earned = earned.Add(log.Earnings)
			}
		}

		paid := decimal.Zero
		for _, log := range transactionLogs {
			if sameID(log.EmployeeID, emp.ID) {
				paid = paid.Add(log.Amount)
			}
		}

		stats = append(stats, payroll.PayrollStat{
			ID:            emp.ID,
			Name:          emp.Name,
			TotalEarnings: earned,
			TotalPaid:     paid,
			Balance:       earned.Sub(paid),
		})
	}

	return stats
}

// ComputeGlobalTotals sums balances and payments. TotalDue goes negative when
// overpayments outweigh what is owed.
func ComputeGlobalTotals(stats []payroll.PayrollStat) payroll.GlobalTotals {
	totals := payroll.GlobalTotals{TotalDue: decimal.Zero, TotalPaid: decimal.Zero}
	for _, s := range stats {
		totals.TotalDue = totals.TotalDue.Add(s.Balance)
		totals.TotalPaid = totals.TotalPaid.Add(s.TotalPaid)
	}
	return totals
}

// ComputeMonthlyDetail filters one employee's logs to a zero-based calendar month
// of any year. TotalPaidOut counts Advance and Payment only, unlike the
// all-types TotalPaid of ComputePayrollStats.
func ComputeMonthlyDetail(
	employeeID string,
	month int,
	attendanceLogs []attendance.AttendanceLog,
	transactionLogs []transaction.TransactionLog,
) payroll.MonthlyDetail {
	detail := payroll.MonthlyDetail{
		TotalEarned:  decimal.Zero,
		TotalPaidOut: decimal.Zero,
		Logs:         make([]attendance.AttendanceLog, 0),
		Transactions: make([]transaction.TransactionLog, 0),
	}

	for _, log := range attendanceLogs {
		if sameID(log.EmployeeID, employeeID) && inMonth(log.Date, month) {
			detail.Logs = append(detail.Logs, log)
			detail.TotalEarned = detail.TotalEarned.Add(log.Earnings)
		}
	}

	for _, log := range transactionLogs {
		if sameID(log.EmployeeID, employeeID) && inMonth(log.Date, month) {
			detail.Transactions = append(detail.Transactions, log)
			if log.Type.IsPayout() {
				detail.TotalPaidOut = detail.TotalPaidOut.Add(log.Amount)
			}
		}
	}

	return detail
}

// UniqueSites lists "All" followed by each distinct site label in first-seen order.
func UniqueSites(employees []employee.Employee) []string {
	sites := []string{employee.SiteAll}
	seen := make(map[string]bool)
	for _, emp := range employees {
		label := emp.SiteLabel()
		if seen[label] {
			continue
		}
		seen[label] = true
		sites = append(sites, label)
	}
	return sites
}

// FilterEmployees keeps employees on the given site whose name or site contains the
// search text, case-insensitively. An empty site or "All" matches every site and
// "Unassigned" matches a blank one.
func FilterEmployees(employees []employee.Employee, filter employee.EmployeeFilter) []employee.Employee {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]employee.Employee, 0, len(employees))

	for _, emp := range employees {
		if filter.Site != "" && filter.Site != employee.SiteAll && emp.SiteLabel() != filter.Site {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(emp.Name), query) &&
			!strings.Contains(strings.ToLower(emp.CurrentSite), query) {
			continue
		}
		result = append(result, emp)
	}

	return result
}
