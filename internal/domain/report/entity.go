package report

import (
	"fmt"
	"strings"

	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// MonthlyReport - Input of an exporter. Sums come from the payroll aggregator
// and are rendered as-is.
type MonthlyReport struct {
	EmployeeID   string
	EmployeeName string
	Month        int
	MonthName    string
	Detail       payroll.MonthlyDetail
}

var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-", "\"", "", "\n", " ", "\r", " ")

// FileName follows the {EmployeeName}_{MonthName}_Report.{ext} convention.
func (r MonthlyReport) FileName(ext string) string {
	return fmt.Sprintf("%s_%s_Report.%s", fileNameReplacer.Replace(r.EmployeeName), r.MonthName, ext)
}
