package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetMonthlyDetail(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Refresh handles POST /data/refresh
func (h *payrollHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	overview, err := h.payrollService.GetOverview(r.Context(), payroll.PayrollFilter{})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll data refreshed", overview)
}

// GetOverview handles GET /payroll
func (h *payrollHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Site:       r.URL.Query().Get("site"),
	}

	result, err := h.payrollService.GetOverview(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetMonthlyDetail handles GET /payroll/employees/{employeeId}/monthly
func (h *payrollHandlerImpl) GetMonthlyDetail(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", map[string]string{"month": "must be a number between 0 and 11"})
		return
	}

	result, err := h.payrollService.GetMonthlyDetail(r.Context(), payroll.MonthlyDetailRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.NewMonthlyDetailResponse(result))
}

// parseMonth reads the 0-based month query parameter.
func parseMonth(r *http.Request) (int, error) {
	return strconv.Atoi(r.URL.Query().Get("month"))
}
