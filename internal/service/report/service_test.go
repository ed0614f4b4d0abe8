package report

import (
	"context"
	"testing"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/navnirman/admin-backend-go/internal/pkg/export"
	"github.com/navnirman/admin-backend-go/internal/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayroll struct {
	payroll.PayrollService
	result payroll.MonthlyDetailResult
	err    error
}

func (s stubPayroll) GetMonthlyDetail(ctx context.Context, req payroll.MonthlyDetailRequest) (payroll.MonthlyDetailResult, error) {
	if s.err != nil {
		return payroll.MonthlyDetailResult{}, s.err
	}
	return s.result, nil
}

func newStubPayroll() stubPayroll {
	return stubPayroll{result: payroll.MonthlyDetailResult{
		EmployeeID:   "1",
		EmployeeName: "Ramesh Kumar",
		Month:        2,
		Detail: payroll.MonthlyDetail{
			TotalEarned:  decimal.NewFromInt(800),
			TotalPaidOut: decimal.NewFromInt(200),
			Logs: []attendance.AttendanceLog{
				{EmployeeID: "1", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Earnings: decimal.NewFromInt(800)},
			},
		},
	}}
}

func exporters() []report.Exporter {
	return []report.Exporter{export.XLSXExporter{}, export.CSVExporter{}}
}

func TestExportMonthly(t *testing.T) {
	archive, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewReportService(newStubPayroll(), exporters(), archive)

	out, err := svc.ExportMonthly(context.Background(), report.MonthlyReportRequest{EmployeeID: "1", Month: 2, Format: report.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar_March_Report.csv", out.FileName)
	assert.Equal(t, "text/csv; charset=utf-8", out.ContentType)
	assert.Contains(t, string(out.Data), "Net Payable,600.00")
	assert.Equal(t, "reports/Ramesh Kumar_March_Report.csv", out.StoragePath)

	ok, err := archive.Exists(context.Background(), out.StoragePath)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExportMonthly_DefaultsToXLSX(t *testing.T) {
	svc := NewReportService(newStubPayroll(), exporters(), nil)

	out, err := svc.ExportMonthly(context.Background(), report.MonthlyReportRequest{EmployeeID: "1", Month: 2})
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar_March_Report.xlsx", out.FileName)
	assert.NotEmpty(t, out.Data)
	assert.Empty(t, out.StoragePath)
}

func TestExportMonthly_Errors(t *testing.T) {
	ctx := context.Background()

	svc := NewReportService(newStubPayroll(), []report.Exporter{export.CSVExporter{}}, nil)
	_, err := svc.ExportMonthly(ctx, report.MonthlyReportRequest{EmployeeID: "1", Month: 2, Format: report.FormatXLSX})
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)

	_, err = svc.ExportMonthly(ctx, report.MonthlyReportRequest{EmployeeID: "1", Month: 2, Format: "pdf"})
	assert.Error(t, err)

	missing := NewReportService(stubPayroll{err: employee.ErrEmployeeNotFound}, exporters(), nil)
	_, err = missing.ExportMonthly(ctx, report.MonthlyReportRequest{EmployeeID: "9", Month: 2})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPurgeArchived_NoArchive(t *testing.T) {
	svc := NewReportService(newStubPayroll(), exporters(), nil)

	n, err := svc.PurgeArchived(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}
