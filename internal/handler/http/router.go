package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/handler/http/middleware"
	"github.com/navnirman/admin-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth        AuthHandler
	Payroll     PayrollHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Transaction TransactionHandler
	Report      ReportHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, authService auth.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService, authService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/session", h.Auth.Session)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/data/refresh", h.Payroll.Refresh)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/sites", h.Employee.ListSites)
				})

				r.With(chiMiddleware.AllowContentType("application/json")).Post("/attendance", h.Attendance.Mark)
				r.With(chiMiddleware.AllowContentType("application/json")).Post("/transactions", h.Transaction.Log)

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", h.Payroll.GetOverview)
					r.Route("/employees/{employeeId}", func(r chi.Router) {
						r.Get("/monthly", h.Payroll.GetMonthlyDetail)
						r.Get("/report", h.Report.DownloadMonthly)
					})
				})
			})
		})
	})
	return r
}
