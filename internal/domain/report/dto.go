package report

import (
	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Format     Format `json:"format"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsMonthIndex(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 0 and 11"})
	}
	if r.Format != "" && !validator.IsInSlice(string(r.Format), []string{string(FormatXLSX), string(FormatCSV)}) {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "format must be 'xlsx' or 'csv'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportedReport is a rendered report ready for download.
type ExportedReport struct {
	FileName    string
	ContentType string
	StoragePath string
	Data        []byte
}
