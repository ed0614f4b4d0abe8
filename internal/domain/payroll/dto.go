package payroll

import (
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MonthName returns the English name of a zero-based month index, or "" when out of range.
func MonthName(month int) string {
	if !validator.IsMonthIndex(month) {
		return ""
	}
	return time.Month(month + 1).String()
}

type PayrollFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Site       string `json:"site,omitempty"`
}

type PayrollStatResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Balance       decimal.Decimal `json:"balance"`
	IsDue         bool            `json:"is_due"`
}

func NewPayrollStatResponse(s PayrollStat) PayrollStatResponse {
	return PayrollStatResponse{
		ID:            s.ID,
		Name:          s.Name,
		TotalEarnings: s.TotalEarnings,
		TotalPaid:     s.TotalPaid,
		Balance:       s.Balance,
		IsDue:         s.IsDue(),
	}
}

type PayrollOverviewResponse struct {
	ActiveStaff int                   `json:"active_staff"`
	TotalDue    decimal.Decimal       `json:"total_due"`
	TotalPaid   decimal.Decimal       `json:"total_paid"`
	Stats       []PayrollStatResponse `json:"stats"`
	FetchedAt   *string               `json:"fetched_at,omitempty"`
}

type MonthlyDetailRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"` // 0 = January
}

func (r *MonthlyDetailRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsMonthIndex(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 0 and 11"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyDetailResponse struct {
	EmployeeID   string                               `json:"employee_id"`
	EmployeeName string                               `json:"employee_name"`
	Month        int                                  `json:"month"`
	MonthName    string                               `json:"month_name"`
	TotalEarned  decimal.Decimal                      `json:"total_earned"`
	TotalPaidOut decimal.Decimal                      `json:"total_paid_out"`
	NetPayable   decimal.Decimal                      `json:"net_payable"`
	Logs         []attendance.AttendanceLogResponse   `json:"logs"`
	Transactions []transaction.TransactionLogResponse `json:"transactions"`
}

// MonthlyDetailResult pairs a computed detail with the identifying metadata of the employee.
type MonthlyDetailResult struct {
	EmployeeID   string
	EmployeeName string
	Month        int
	Detail       MonthlyDetail
}

func NewMonthlyDetailResponse(r MonthlyDetailResult) MonthlyDetailResponse {
	logs := make([]attendance.AttendanceLogResponse, 0, len(r.Detail.Logs))
	for _, l := range r.Detail.Logs {
		logs = append(logs, attendance.NewAttendanceLogResponse(l))
	}
	txs := make([]transaction.TransactionLogResponse, 0, len(r.Detail.Transactions))
	for _, t := range r.Detail.Transactions {
		txs = append(txs, transaction.NewTransactionLogResponse(t))
	}

	return MonthlyDetailResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Month:        r.Month,
		MonthName:    MonthName(r.Month),
		TotalEarned:  r.Detail.TotalEarned,
		TotalPaidOut: r.Detail.TotalPaidOut,
		NetPayable:   r.Detail.NetPayable(),
		Logs:         logs,
		Transactions: txs,
	}
}
