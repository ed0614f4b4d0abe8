package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/navnirman/admin-backend-go/internal/domain/report"
	"github.com/navnirman/admin-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DownloadMonthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DownloadMonthly handles GET /payroll/employees/{employeeId}/report
func (h *reportHandlerImpl) DownloadMonthly(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", map[string]string{"month": "must be a number between 0 and 11"})
		return
	}

	req := report.MonthlyReportRequest{
		EmployeeID: chi.URLParam(r, "employeeId"),
		Month:      month,
		Format:     report.Format(r.URL.Query().Get("format")),
	}

	result, err := h.reportService.ExportMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, result.FileName, result.ContentType, result.Data)
}
