package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/navnirman/admin-backend-go/internal/pkg/sheets"
	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var remoteErr *sheets.RemoteError
	if errors.As(err, &remoteErr) && !errors.Is(err, auth.ErrConnectionFailed) {
		msg := remoteErr.Message
		if msg == "" {
			msg = "Data source rejected the request"
		}
		BadGateway(w, msg)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPassword):
		Unauthorized(w, "Invalid Password")
	case errors.Is(err, auth.ErrConnectionFailed):
		BadGateway(w, "Connection Failed")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session expired, please log in again")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Data source errors
	case errors.Is(err, sheets.ErrNetwork):
		BadGateway(w, "Network Error")
	case errors.Is(err, sheets.ErrInvalidResponse):
		BadGateway(w, "Invalid response from data source")
	case errors.Is(err, attendance.ErrReadOnlySource), errors.Is(err, transaction.ErrReadOnlySource):
		Conflict(w, "Data source is read-only")

	// Payroll domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrDataNotLoaded):
		Conflict(w, "Payroll data not loaded, refresh first")
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported report format", nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
