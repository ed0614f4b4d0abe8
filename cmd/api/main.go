package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navnirman/admin-backend-go/internal/config"
	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	appHTTP "github.com/navnirman/admin-backend-go/internal/handler/http"
	"github.com/navnirman/admin-backend-go/internal/pkg/cron"
	"github.com/navnirman/admin-backend-go/internal/pkg/database"
	"github.com/navnirman/admin-backend-go/internal/pkg/export"
	"github.com/navnirman/admin-backend-go/internal/pkg/jwt"
	"github.com/navnirman/admin-backend-go/internal/pkg/sheets"
	"github.com/navnirman/admin-backend-go/internal/pkg/storage"
	"github.com/navnirman/admin-backend-go/internal/repository/memory"
	"github.com/navnirman/admin-backend-go/internal/repository/postgresql"
	sheetsRepo "github.com/navnirman/admin-backend-go/internal/repository/sheets"
	"github.com/navnirman/admin-backend-go/internal/repository/workbook"
	attendanceService "github.com/navnirman/admin-backend-go/internal/service/attendance"
	serviceAuth "github.com/navnirman/admin-backend-go/internal/service/auth"
	payrollService "github.com/navnirman/admin-backend-go/internal/service/payroll"
	reportService "github.com/navnirman/admin-backend-go/internal/service/report"
	"github.com/navnirman/admin-backend-go/internal/service/snapshot"
	transactionService "github.com/navnirman/admin-backend-go/internal/service/transaction"
)

// dataSource is what each backing store offers to the services.
type dataSource interface {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	transaction.TransactionRepository
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source dataSource
	var verifier auth.PasswordVerifier
	switch cfg.DataSource.Type {
	case config.DataSourceSheets:
		repo := sheetsRepo.NewRepository(sheets.NewClient(cfg.DataSource.SheetsURL, cfg.DataSource.Timeout), cfg.Location())
		source, verifier = repo, repo
		if cfg.Admin.PasswordHash != "" {
			verifier = serviceAuth.NewBcryptVerifier(cfg.Admin.PasswordHash)
		}
	case config.DataSourceWorkbook:
		source = workbook.NewRepository(cfg.DataSource.WorkbookPath, cfg.Location())
		verifier = serviceAuth.NewBcryptVerifier(cfg.Admin.PasswordHash)
	}
	slog.Info("data source configured", "type", cfg.DataSource.Type)

	var sessionRepo auth.SessionRepository
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns:       cfg.Database.MaxConns,
			MinConns:       cfg.Database.MinConns,
			ConnectTimeout: cfg.Database.ConnectTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		if err := postgresql.EnsureSessionSchema(ctx, db); err != nil {
			return fmt.Errorf("prepare session schema: %w", err)
		}
		sessionRepo = postgresql.NewSessionRepository(db)
	default:
		sessionRepo = memory.NewSessionRepository()
	}

	var archive storage.FileStorage
	if cfg.Storage.Enabled {
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			return fmt.Errorf("initialize report storage: %w", err)
		}
		archive = local
	}

	store := snapshot.NewStore(source, source, source)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.SecureCookie)

	authService := serviceAuth.NewAuthService(verifier, sessionRepo, JWTService, store)
	payrollSvc := payrollService.NewPayrollService(store)
	attendanceSvc := attendanceService.NewAttendanceService(source, store)
	transactionSvc := transactionService.NewTransactionService(source, store)
	reportSvc := reportService.NewReportService(payrollSvc, []report.Exporter{export.XLSXExporter{}, export.CSVExporter{}}, archive)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(authService, payrollSvc, reportSvc, cron.MaintenanceConfig{
		SessionCleanupInterval: cfg.Jobs.SessionCleanupInterval,
		DataRefreshInterval:    cfg.Jobs.DataRefreshInterval,
		ReportPurgeInterval:    cfg.Jobs.ReportPurgeInterval,
		ReportRetention:        cfg.Jobs.ReportRetention,
	}).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			Version:        cfg.App.Version,
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		authService,
		appHTTP.Handlers{
			Auth:        appHTTP.NewAuthHandler(JWTService, authService),
			Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
			Employee:    appHTTP.NewEmployeeHandler(payrollSvc),
			Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
			Transaction: appHTTP.NewTransactionHandler(transactionSvc),
			Report:      appHTTP.NewReportHandler(reportSvc),
		},
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
