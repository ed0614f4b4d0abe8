package sheets

import (
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/navnirman/admin-backend-go/internal/pkg/sheets"
)

// Column headers shared by the web app and exported workbooks.
const (
	ColID          = "id"
	ColName        = "name"
	ColCurrentSite = "current_site"
	ColRole        = "role"
	ColRateFactory = "rate_factory"
	ColRateOffsite = "rate_offsite"
	ColRateOT      = "rate_ot"

	ColEmployeeID  = "emp_id"
	ColDate        = "date"
	ColLocation    = "location"
	ColStatus      = "status"
	ColRegHours    = "reg_hours"
	ColOTHours     = "ot_hours"
	ColEarnings    = "earnings"
	ColType        = "type"
	ColAmount      = "amount"
	ColPaymentMode = "payment_mode"
	ColNotes       = "notes"
)

func EmployeeFromRecord(r sheets.Record) employee.Employee {
	return employee.Employee{
		ID:          r.String(ColID),
		Name:        r.String(ColName),
		CurrentSite: r.String(ColCurrentSite),
		Role:        r.String(ColRole),
		RateFactory: r.Decimal(ColRateFactory),
		RateOffsite: r.Decimal(ColRateOffsite),
		RateOT:      r.Decimal(ColRateOT),
	}
}

func AttendanceLogFromRecord(r sheets.Record, loc *time.Location) attendance.AttendanceLog {
	return attendance.AttendanceLog{
		EmployeeID: r.String(ColEmployeeID),
		Date:       r.Date(ColDate, loc),
		Location:   attendance.Location(r.String(ColLocation)),
		Status:     attendance.Status(r.String(ColStatus)),
		RegHours:   r.Decimal(ColRegHours),
		OTHours:    r.Decimal(ColOTHours),
		Earnings:   r.Decimal(ColEarnings),
	}
}

func TransactionLogFromRecord(r sheets.Record, loc *time.Location) transaction.TransactionLog {
	return transaction.TransactionLog{
		EmployeeID:  r.String(ColEmployeeID),
		Date:        r.Date(ColDate, loc),
		Type:        transaction.Type(r.String(ColType)),
		Amount:      r.Decimal(ColAmount),
		PaymentMode: r.String(ColPaymentMode),
		Notes:       r.OptionalString(ColNotes),
	}
}

// Employees maps every row, including ones with a blank id; such an employee
// still shows up in the overview with zero totals.
func Employees(records []sheets.Record) []employee.Employee {
	result := make([]employee.Employee, 0, len(records))
	for _, r := range records {
		result = append(result, EmployeeFromRecord(r))
	}
	return result
}

func AttendanceLogs(records []sheets.Record, loc *time.Location) []attendance.AttendanceLog {
	result := make([]attendance.AttendanceLog, 0, len(records))
	for _, r := range records {
		result = append(result, AttendanceLogFromRecord(r, loc))
	}
	return result
}

func TransactionLogs(records []sheets.Record, loc *time.Location) []transaction.TransactionLog {
	result := make([]transaction.TransactionLog, 0, len(records))
	for _, r := range records {
		result = append(result, TransactionLogFromRecord(r, loc))
	}
	return result
}
