package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one complete fetch of the three collections.
type Snapshot struct {
	Employees       []employee.Employee
	AttendanceLogs  []attendance.AttendanceLog
	TransactionLogs []transaction.TransactionLog
	FetchedAt       time.Time
}

// BatchFetcher is implemented by sources that serve all three collections
// from one upstream read. The returned context scopes that read to a single
// refresh so the collections always come from the same response.
type BatchFetcher interface {
	BeginBatch(ctx context.Context) context.Context
}

// Store keeps the most recently fetched Snapshot in memory.
// Refreshes are not fenced: whichever finishes last wins.
type Store struct {
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	transactionRepo transaction.TransactionRepository
	now             func() time.Time

	mu      sync.RWMutex
	current Snapshot
	loaded  bool
}

func NewStore(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	transactionRepo transaction.TransactionRepository,
) *Store {
	return &Store{
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Refresh fetches all three collections concurrently. The stored snapshot is
// replaced only when every fetch succeeds.
func (s *Store) Refresh(ctx context.Context) (Snapshot, error) {
	var (
		employees       []employee.Employee
		attendanceLogs  []attendance.AttendanceLog
		transactionLogs []transaction.TransactionLog
	)

	if b, ok := s.employeeRepo.(BatchFetcher); ok {
		ctx = b.BeginBatch(ctx)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.employeeRepo.FetchEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("fetch employees: %w", err)
		}
		employees = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.attendanceRepo.FetchAttendanceLogs(gCtx)
		if err != nil {
			return fmt.Errorf("fetch attendance logs: %w", err)
		}
		attendanceLogs = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.transactionRepo.FetchTransactionLogs(gCtx)
		if err != nil {
			return fmt.Errorf("fetch transaction logs: %w", err)
		}
		transactionLogs = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Employees:       employees,
		AttendanceLogs:  attendanceLogs,
		TransactionLogs: transactionLogs,
		FetchedAt:       s.now(),
	}

	s.mu.Lock()
	s.current = snap
	s.loaded = true
	s.mu.Unlock()

	slog.Info("Payroll data refreshed",
		"employees", len(employees),
		"attendance_logs", len(attendanceLogs),
		"transaction_logs", len(transactionLogs),
	)

	return snap, nil
}

// Current returns the last stored snapshot and whether any refresh has completed.
func (s *Store) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.loaded
}

// Clear drops the stored snapshot, e.g. on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Snapshot{}
	s.loaded = false
}

// FindEmployee looks an employee up by id in the stored snapshot.
func (s *Store) FindEmployee(id string) (employee.Employee, error) {
	snap, loaded := s.Current()
	if !loaded {
		return employee.Employee{}, payroll.ErrDataNotLoaded
	}
	emp, ok := snap.FindEmployee(id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s Snapshot) FindEmployee(id string) (employee.Employee, bool) {
	id = strings.TrimSpace(id)
	for _, emp := range s.Employees {
		if strings.TrimSpace(emp.ID) == id {
			return emp, true
		}
	}
	return employee.Employee{}, false
}
