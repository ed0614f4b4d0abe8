package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
)

// EmployeeLookup resolves an employee from the loaded payroll snapshot.
type EmployeeLookup interface {
	FindEmployee(id string) (employee.Employee, error)
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employees EmployeeLookup
	now       func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employees EmployeeLookup) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		employees:            employees,
		now:                  time.Now,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	req.ApplyDefaults(a.now())
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	emp, err := a.employees.FindEmployee(req.EmployeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	submission := attendance.AttendanceSubmission{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		RateFactory:  emp.RateFactory,
		RateOffsite:  emp.RateOffsite,
		RateOT:       emp.RateOT,
		Date:         req.Date,
		Location:     req.Location,
		Status:       req.Status,
		RegHours:     *req.RegHours,
		OTHours:      *req.OTHours,
	}
	if err := a.AttendanceRepository.MarkAttendance(ctx, submission); err != nil {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	slog.Info("attendance marked", "emp_id", emp.ID, "date", req.Date, "status", req.Status)
	return attendance.MarkAttendanceResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         req.Date,
	}, nil
}
