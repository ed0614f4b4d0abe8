package payroll

import (
	"context"

	"github.com/navnirman/admin-backend-go/internal/domain/employee"
)

type PayrollService interface {
	// Refresh re-fetches employees, attendance and transactions from the data source.
	Refresh(ctx context.Context) error

	GetOverview(ctx context.Context, filter PayrollFilter) (PayrollOverviewResponse, error)
	GetMonthlyDetail(ctx context.Context, req MonthlyDetailRequest) (MonthlyDetailResult, error)

	ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error)
	ListSites(ctx context.Context) ([]string, error)
}
