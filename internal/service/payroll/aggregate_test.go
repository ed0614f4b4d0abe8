package payroll

import (
	"testing"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func work(empID string, date time.Time, earnings int64) attendance.AttendanceLog {
	return attendance.AttendanceLog{
		EmployeeID: empID,
		Date:       date,
		Location:   attendance.LocationFactory,
		Status:     attendance.StatusPresent,
		RegHours:   d(8),
		OTHours:    decimal.Zero,
		Earnings:   d(earnings),
	}
}

func txn(empID string, date time.Time, typ transaction.Type, amount int64) transaction.TransactionLog {
	return transaction.TransactionLog{
		EmployeeID:  empID,
		Date:        date,
		Type:        typ,
		Amount:      d(amount),
		PaymentMode: "Cash",
	}
}

func TestComputePayrollStats_EmptyLogs(t *testing.T) {
	employees := []employee.Employee{{ID: "1", Name: "Asha"}, {ID: "2", Name: "Vikram"}}

	stats := ComputePayrollStats(employees, nil, nil)

	require.Len(t, stats, 2)
	for i, s := range stats {
		assert.Equal(t, employees[i].ID, s.ID)
		assert.True(t, s.TotalEarnings.IsZero())
		assert.True(t, s.TotalPaid.IsZero())
		assert.True(t, s.Balance.IsZero())
	}
}

func TestComputePayrollStats_NoEmployees(t *testing.T) {
	stats := ComputePayrollStats(nil, []attendance.AttendanceLog{work("1", day(2025, 1, 2), 500)}, nil)

	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestComputePayrollStats_UnknownEmployeeLogsIgnored(t *testing.T) {
	employees := []employee.Employee{{ID: "1", Name: "Asha"}}
	logs := []attendance.AttendanceLog{
		work("1", day(2025, 1, 2), 500),
		work("99", day(2025, 1, 2), 10000),
	}
	txs := []transaction.TransactionLog{txn("42", day(2025, 1, 3), transaction.TypePayment, 700)}

	stats := ComputePayrollStats(employees, logs, txs)

	require.Len(t, stats, 1)
	assert.True(t, stats[0].TotalEarnings.Equal(d(500)))
	assert.True(t, stats[0].TotalPaid.IsZero())
}

func TestComputePayrollStats_IDsComparedAsStrings(t *testing.T) {
	employees := []employee.Employee{{ID: "7", Name: "Suresh"}}
	logs := []attendance.AttendanceLog{
		work("7", day(2025, 4, 1), 350),
		work(" 7 ", day(2025, 4, 2), 100),
		work("07", day(2025, 4, 3), 100),
	}

	stats := ComputePayrollStats(employees, logs, nil)

	assert.True(t, stats[0].TotalEarnings.Equal(d(350)), "only the exact id matches")
}

func TestComputePayrollStats_BalanceIdentity(t *testing.T) {
	employees := []employee.Employee{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	logs := []attendance.AttendanceLog{
		work("1", day(2025, 1, 1), 500),
		work("2", day(2025, 1, 1), 250),
		{EmployeeID: "3", Date: day(2025, 1, 1), Earnings: decimal.RequireFromString("333.33")},
	}
	txs := []transaction.TransactionLog{
		txn("1", day(2025, 1, 5), transaction.TypeAdvance, 100),
		txn("2", day(2025, 1, 5), transaction.TypeExpense, 400),
		{EmployeeID: "3", Date: day(2025, 1, 5), Type: transaction.TypePayment, Amount: decimal.RequireFromString("0.33")},
	}

	for _, s := range ComputePayrollStats(employees, logs, txs) {
		assert.True(t, s.Balance.Equal(s.TotalEarnings.Sub(s.TotalPaid)), "balance mismatch for %s", s.ID)
	}
}

func TestComputePayrollStats_ScenarioBonusCounted(t *testing.T) {
	employees := []employee.Employee{{ID: "1", Name: "Asha"}}
	logs := []attendance.AttendanceLog{
		work("1", day(2025, 3, 3), 500),
		work("1", day(2025, 3, 4), 300),
	}
	txs := []transaction.TransactionLog{
		txn("1", day(2025, 3, 10), transaction.TypeAdvance, 200),
		txn("1", day(2025, 3, 11), transaction.TypeBonus, 100),
	}

	stats := ComputePayrollStats(employees, logs, txs)
	require.Len(t, stats, 1)
	assert.True(t, stats[0].TotalEarnings.Equal(d(800)))
	assert.True(t, stats[0].TotalPaid.Equal(d(300)), "global total_paid includes bonus")
	assert.True(t, stats[0].Balance.Equal(d(500)))

	detail := ComputeMonthlyDetail("1", 2, logs, txs)
	assert.True(t, detail.TotalEarned.Equal(d(800)))
	assert.True(t, detail.TotalPaidOut.Equal(d(200)), "monthly paid out excludes bonus")
	assert.Len(t, detail.Logs, 2)
	assert.Len(t, detail.Transactions, 2)
}

func TestComputePayrollStats_Idempotent(t *testing.T) {
	employees := []employee.Employee{{ID: "1", Name: "Asha"}, {ID: "2", Name: "Vikram"}}
	logs := []attendance.AttendanceLog{work("1", day(2025, 1, 1), 500), work("2", day(2025, 1, 1), 200)}
	txs := []transaction.TransactionLog{txn("2", day(2025, 1, 2), transaction.TypeAdvance, 50)}

	employeesCopy := append([]employee.Employee(nil), employees...)
	logsCopy := append([]attendance.AttendanceLog(nil), logs...)
	txsCopy := append([]transaction.TransactionLog(nil), txs...)

	first := ComputePayrollStats(employees, logs, txs)
	second := ComputePayrollStats(employees, logs, txs)

	assert.Equal(t, first, second)
	assert.Equal(t, employeesCopy, employees)
	assert.Equal(t, logsCopy, logs)
	assert.Equal(t, txsCopy, txs)

	first[0].Name = "changed"
	assert.Equal(t, "Asha", second[0].Name, "each call returns a new slice")
}

func TestComputeGlobalTotals_SumOfParts(t *testing.T) {
	stats := []payroll.PayrollStat{
		{ID: "1", TotalEarnings: d(100), TotalPaid: d(150), Balance: d(-50)},
		{ID: "2", TotalEarnings: d(300), TotalPaid: d(100), Balance: d(200)},
	}

	totals := ComputeGlobalTotals(stats)

	assert.True(t, totals.TotalDue.Equal(d(150)))
	assert.True(t, totals.TotalPaid.Equal(d(250)))
	assert.False(t, stats[0].IsDue(), "overpaid employee is not highlighted as due")
	assert.True(t, stats[1].IsDue())
}

func TestComputeGlobalTotals_NegativeTotalDue(t *testing.T) {
	stats := []payroll.PayrollStat{
		{ID: "1", TotalPaid: d(500), Balance: d(-500)},
		{ID: "2", TotalEarnings: d(100), Balance: d(100)},
	}

	totals := ComputeGlobalTotals(stats)

	assert.True(t, totals.TotalDue.Equal(d(-400)))
}

func TestComputeGlobalTotals_Empty(t *testing.T) {
	totals := ComputeGlobalTotals(nil)

	assert.True(t, totals.TotalDue.IsZero())
	assert.True(t, totals.TotalPaid.IsZero())
}

// The month filter ignores the year, so the same month of different years is merged.
func TestComputeMonthlyDetail_MonthOnlyAnyYear(t *testing.T) {
	logs := []attendance.AttendanceLog{
		work("1", day(2023, 6, 10), 400),
		work("1", day(2025, 6, 11), 600),
		work("1", day(2025, 7, 1), 999),
	}
	txs := []transaction.TransactionLog{
		txn("1", day(2022, 6, 30), transaction.TypePayment, 100),
		txn("1", day(2025, 5, 31), transaction.TypePayment, 999),
	}

	detail := ComputeMonthlyDetail("1", 5, logs, txs)

	require.Len(t, detail.Logs, 2)
	assert.True(t, detail.TotalEarned.Equal(d(1000)))
	require.Len(t, detail.Transactions, 1)
	assert.True(t, detail.TotalPaidOut.Equal(d(100)))
}

func TestComputeMonthlyDetail_FiltersEmployeeAndTypes(t *testing.T) {
	logs := []attendance.AttendanceLog{
		work("1", day(2025, 2, 1), 500),
		work("2", day(2025, 2, 1), 700),
	}
	txs := []transaction.TransactionLog{
		txn("1", day(2025, 2, 2), transaction.TypeAdvance, 50),
		txn("1", day(2025, 2, 3), transaction.TypePayment, 25),
		txn("1", day(2025, 2, 4), transaction.TypeExpense, 80),
		txn("1", day(2025, 2, 5), transaction.TypeBonus, 20),
		txn("2", day(2025, 2, 2), transaction.TypeAdvance, 300),
	}

	detail := ComputeMonthlyDetail("1", 1, logs, txs)

	require.Len(t, detail.Logs, 1)
	assert.True(t, detail.TotalEarned.Equal(d(500)))
	assert.Len(t, detail.Transactions, 4, "all types are listed")
	assert.True(t, detail.TotalPaidOut.Equal(d(75)), "only Advance and Payment are summed")
	assert.True(t, detail.NetPayable().Equal(d(425)))
}

func TestComputeMonthlyDetail_EmptyAndUndated(t *testing.T) {
	logs := []attendance.AttendanceLog{{EmployeeID: "1", Earnings: d(500)}}

	detail := ComputeMonthlyDetail("1", 0, logs, nil)
	assert.Empty(t, detail.Logs, "a row without a date never matches a month")
	assert.NotNil(t, detail.Logs)
	assert.NotNil(t, detail.Transactions)
	assert.True(t, detail.TotalEarned.IsZero())
	assert.True(t, detail.TotalPaidOut.IsZero())

	outOfRange := ComputeMonthlyDetail("1", 12, []attendance.AttendanceLog{work("1", day(2025, 1, 1), 10)}, nil)
	assert.Empty(t, outOfRange.Logs)
}

func TestUniqueSites(t *testing.T) {
	employees := []employee.Employee{
		{ID: "1", CurrentSite: "Pune Plant"},
		{ID: "2", CurrentSite: ""},
		{ID: "3", CurrentSite: "Pune Plant"},
		{ID: "4", CurrentSite: "Nashik"},
	}

	assert.Equal(t, []string{"All", "Pune Plant", "Unassigned", "Nashik"}, UniqueSites(employees))
	assert.Equal(t, []string{"All"}, UniqueSites(nil))
}

func TestFilterEmployees(t *testing.T) {
	employees := []employee.Employee{
		{ID: "1", Name: "Asha Patil", CurrentSite: "Pune Plant"},
		{ID: "2", Name: "Vikram Rao", CurrentSite: "Nashik"},
		{ID: "3", Name: "Meena", CurrentSite: ""},
	}

	tests := []struct {
		name   string
		filter employee.EmployeeFilter
		want   []string
	}{
		{"no filter", employee.EmployeeFilter{}, []string{"1", "2", "3"}},
		{"all sites", employee.EmployeeFilter{Site: "All"}, []string{"1", "2", "3"}},
		{"one site", employee.EmployeeFilter{Site: "Nashik"}, []string{"2"}},
		{"unassigned", employee.EmployeeFilter{Site: "Unassigned"}, []string{"3"}},
		{"search by name", employee.EmployeeFilter{Search: "asha"}, []string{"1"}},
		{"search by site", employee.EmployeeFilter{Search: "PUNE"}, []string{"1"}},
		{"site and search", employee.EmployeeFilter{Site: "Nashik", Search: "asha"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEmployees(employees, tt.filter)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
