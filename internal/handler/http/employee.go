package http

import (
	"net/http"

	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListSites(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewEmployeeHandler(payrollService payroll.PayrollService) EmployeeHandler {
	return &employeeHandlerImpl{payrollService: payrollService}
}

// ListEmployees handles GET /employees?site=&q=
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		query = r.URL.Query().Get("query")
	}

	filter := employee.EmployeeFilter{
		Site:   r.URL.Query().Get("site"),
		Search: query,
	}

	result, err := h.payrollService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListSites handles GET /employees/sites
func (h *employeeHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.payrollService.ListSites(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sites)
}
