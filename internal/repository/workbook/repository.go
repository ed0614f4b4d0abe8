package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/navnirman/admin-backend-go/internal/pkg/sheets"
	sheetsrepo "github.com/navnirman/admin-backend-go/internal/repository/sheets"
	"github.com/xuri/excelize/v2"
)

const (
	SheetEmployees       = "employees"
	SheetAttendanceLogs  = "attendance_logs"
	SheetTransactionLogs = "transaction_logs"
)

// Repository reads an exported copy of the payroll workbook from disk. The
// first row of each sheet holds the column headers. It is read-only.
type Repository struct {
	path     string
	location *time.Location
}

var (
	_ employee.EmployeeRepository       = (*Repository)(nil)
	_ attendance.AttendanceRepository   = (*Repository)(nil)
	_ transaction.TransactionRepository = (*Repository)(nil)
)

func NewRepository(path string, location *time.Location) *Repository {
	if location == nil {
		location = time.UTC
	}
	return &Repository{path: path, location: location}
}

func (r *Repository) FetchEmployees(ctx context.Context) ([]employee.Employee, error) {
	records, err := r.readSheet(ctx, SheetEmployees)
	if err != nil {
		return nil, err
	}
	return sheetsrepo.Employees(records), nil
}

func (r *Repository) FetchAttendanceLogs(ctx context.Context) ([]attendance.AttendanceLog, error) {
	records, err := r.readSheet(ctx, SheetAttendanceLogs)
	if err != nil {
		return nil, err
	}
	return sheetsrepo.AttendanceLogs(records, r.location), nil
}

func (r *Repository) FetchTransactionLogs(ctx context.Context) ([]transaction.TransactionLog, error) {
	records, err := r.readSheet(ctx, SheetTransactionLogs)
	if err != nil {
		return nil, err
	}
	return sheetsrepo.TransactionLogs(records, r.location), nil
}

func (r *Repository) MarkAttendance(ctx context.Context, submission attendance.AttendanceSubmission) error {
	return attendance.ErrReadOnlySource
}

func (r *Repository) LogTransaction(ctx context.Context, submission transaction.TransactionSubmission) error {
	return transaction.ErrReadOnlySource
}

func (r *Repository) readSheet(ctx context.Context, sheet string) ([]sheets.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []sheets.Record{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]sheets.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(sheets.Record, len(header))
		empty := true
		for i, key := range header {
			if key == "" || i >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[i])
			if value != "" {
				empty = false
			}
			if key == sheetsrepo.ColDate {
				value = serialToDate(value)
			}
			rec[key] = value
		}
		if !empty {
			records = append(records, rec)
		}
	}
	return records, nil
}

// serialToDate turns an Excel date serial into a calendar date. Other values
// are returned unchanged.
func serialToDate(value string) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}
	return t.Format("2006-01-02")
}
