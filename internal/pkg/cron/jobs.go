package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
)

// MaintenanceConfig holds the job intervals. Zero disables a job.
type MaintenanceConfig struct {
	SessionCleanupInterval time.Duration
	DataRefreshInterval    time.Duration
	ReportPurgeInterval    time.Duration
	ReportRetention        time.Duration
}

// MaintenanceJobs keeps sessions, the payroll snapshot and the report archive tidy.
type MaintenanceJobs struct {
	authService    auth.AuthService
	payrollService payroll.PayrollService
	reportService  report.ReportService
	cfg            MaintenanceConfig
}

func NewMaintenanceJobs(authService auth.AuthService, payrollService payroll.PayrollService, reportService report.ReportService, cfg MaintenanceConfig) *MaintenanceJobs {
	return &MaintenanceJobs{
		authService:    authService,
		payrollService: payrollService,
		reportService:  reportService,
		cfg:            cfg,
	}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:       "purge_expired_sessions",
		Interval:   j.cfg.SessionCleanupInterval,
		RunOnStart: true,
		Fn:         j.PurgeExpiredSessions,
	})

	scheduler.AddJob(Job{
		Name:     "refresh_payroll_data",
		Interval: j.cfg.DataRefreshInterval,
		Fn:       j.RefreshPayrollData,
	})

	if j.cfg.ReportRetention > 0 {
		scheduler.AddJob(Job{
			Name:     "purge_archived_reports",
			Interval: j.cfg.ReportPurgeInterval,
			Fn:       j.PurgeArchivedReports,
		})
	}
}

func (j *MaintenanceJobs) PurgeExpiredSessions(ctx context.Context) error {
	n, err := j.authService.PurgeExpiredSessions(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("expired sessions purged", "count", n)
	}
	return nil
}

// RefreshPayrollData re-fetches the snapshot only while one is loaded, so a
// logged-out portal does not keep polling the data source.
func (j *MaintenanceJobs) RefreshPayrollData(ctx context.Context) error {
	overview, err := j.payrollService.GetOverview(ctx, payroll.PayrollFilter{})
	if err != nil {
		return err
	}
	if overview.FetchedAt == nil {
		return nil
	}
	return j.payrollService.Refresh(ctx)
}

func (j *MaintenanceJobs) PurgeArchivedReports(ctx context.Context) error {
	n, err := j.reportService.PurgeArchived(ctx, j.cfg.ReportRetention)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("archived reports purged", "count", n)
	}
	return nil
}
