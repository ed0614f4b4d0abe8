package payroll

import (
	"context"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/service/snapshot"
)

type PayrollServiceImpl struct {
	store *snapshot.Store
}

func NewPayrollService(store *snapshot.Store) payroll.PayrollService {
	return &PayrollServiceImpl{store: store}
}

func (s *PayrollServiceImpl) Refresh(ctx context.Context) error {
	_, err := s.store.Refresh(ctx)
	return err
}

// GetOverview computes stats for the filtered employees. Before the first refresh
// completes it returns an empty overview rather than an error.
func (s *PayrollServiceImpl) GetOverview(ctx context.Context, filter payroll.PayrollFilter) (payroll.PayrollOverviewResponse, error) {
	snap, loaded := s.store.Current()

	employees := FilterEmployees(snap.Employees, employee.EmployeeFilter{Site: filter.Site})
	if filter.EmployeeID != "" {
		selected := make([]employee.Employee, 0, 1)
		for _, emp := range employees {
			if sameID(emp.ID, filter.EmployeeID) {
				selected = append(selected, emp)
			}
		}
		employees = selected
	}

	stats := ComputePayrollStats(employees, snap.AttendanceLogs, snap.TransactionLogs)
	totals := ComputeGlobalTotals(stats)

	result := payroll.PayrollOverviewResponse{
		ActiveStaff: len(employees),
		TotalDue:    totals.TotalDue,
		TotalPaid:   totals.TotalPaid,
		Stats:       make([]payroll.PayrollStatResponse, 0, len(stats)),
	}
	for _, st := range stats {
		result.Stats = append(result.Stats, payroll.NewPayrollStatResponse(st))
	}
	if loaded {
		fetchedAt := snap.FetchedAt.Format(time.RFC3339)
		result.FetchedAt = &fetchedAt
	}

	return result, nil
}

func (s *PayrollServiceImpl) GetMonthlyDetail(ctx context.Context, req payroll.MonthlyDetailRequest) (payroll.MonthlyDetailResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyDetailResult{}, err
	}

	snap, loaded := s.store.Current()
	if !loaded {
		return payroll.MonthlyDetailResult{}, payroll.ErrDataNotLoaded
	}
	emp, ok := snap.FindEmployee(req.EmployeeID)
	if !ok {
		return payroll.MonthlyDetailResult{}, employee.ErrEmployeeNotFound
	}

	return payroll.MonthlyDetailResult{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Month:        req.Month,
		Detail:       ComputeMonthlyDetail(emp.ID, req.Month, snap.AttendanceLogs, snap.TransactionLogs),
	}, nil
}

func (s *PayrollServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	snap, _ := s.store.Current()

	filtered := FilterEmployees(snap.Employees, filter)
	result := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(filtered)),
		TotalCount: len(filtered),
	}
	for _, emp := range filtered {
		result.Data = append(result.Data, employee.NewEmployeeResponse(emp))
	}

	return result, nil
}

func (s *PayrollServiceImpl) ListSites(ctx context.Context) ([]string, error) {
	snap, _ := s.store.Current()
	return UniqueSites(snap.Employees), nil
}
