package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/navnirman/admin-backend-go/internal/pkg/storage"
)

const archiveDir = "reports"

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
	exporters      map[report.Format]report.Exporter
	archive        storage.FileStorage
	now            func() time.Time
}

// NewReportService wires the exporters by format. archive may be nil, in which
// case reports are rendered without being kept.
func NewReportService(payrollService payroll.PayrollService, exporters []report.Exporter, archive storage.FileStorage) report.ReportService {
	byFormat := make(map[report.Format]report.Exporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ReportServiceImpl{
		payrollService: payrollService,
		exporters:      byFormat,
		archive:        archive,
		now:            time.Now,
	}
}

// ExportMonthly implements report.ReportService.
func (s *ReportServiceImpl) ExportMonthly(ctx context.Context, req report.MonthlyReportRequest) (report.ExportedReport, error) {
	if req.Format == "" {
		req.Format = report.FormatXLSX
	}
	if err := req.Validate(); err != nil {
		return report.ExportedReport{}, err
	}

	exporter, ok := s.exporters[req.Format]
	if !ok {
		return report.ExportedReport{}, report.ErrUnsupportedFormat
	}

	result, err := s.payrollService.GetMonthlyDetail(ctx, payroll.MonthlyDetailRequest{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
	})
	if err != nil {
		return report.ExportedReport{}, err
	}

	monthly := report.MonthlyReport{
		EmployeeID:   result.EmployeeID,
		EmployeeName: result.EmployeeName,
		Month:        result.Month,
		MonthName:    payroll.MonthName(result.Month),
		Detail:       result.Detail,
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, monthly); err != nil {
		return report.ExportedReport{}, fmt.Errorf("failed to render %s report: %w", req.Format, err)
	}

	exported := report.ExportedReport{
		FileName:    monthly.FileName(string(req.Format)),
		ContentType: exporter.ContentType(),
		Data:        buf.Bytes(),
	}

	if s.archive != nil {
		stored, err := s.archive.Save(ctx, path.Join(archiveDir, exported.FileName), bytes.NewReader(exported.Data))
		if err != nil {
			slog.Warn("failed to archive report", "file", exported.FileName, "error", err)
		} else {
			exported.StoragePath = stored
		}
	}

	slog.Info("report exported", "emp_id", monthly.EmployeeID, "month", monthly.MonthName, "format", req.Format)
	return exported, nil
}

// PurgeArchived implements report.ReportService.
func (s *ReportServiceImpl) PurgeArchived(ctx context.Context, retention time.Duration) (int, error) {
	if s.archive == nil || retention <= 0 {
		return 0, nil
	}
	return s.archive.PurgeOlderThan(ctx, archiveDir, s.now().Add(-retention))
}
