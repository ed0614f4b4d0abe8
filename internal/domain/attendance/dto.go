package attendance

import (
	"time"

	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultRegHours = 8

type MarkAttendanceRequest struct {
	EmployeeID string           `json:"emp_id"`
	Date       string           `json:"date"`
	Location   Location         `json:"location"`
	Status     Status           `json:"status"`
	RegHours   *decimal.Decimal `json:"reg_hours,omitempty"`
	OTHours    *decimal.Decimal `json:"ot_hours,omitempty"`
}

// ApplyDefaults fills fields left empty with the entry form defaults.
func (r *MarkAttendanceRequest) ApplyDefaults(now time.Time) {
	if r.Date == "" {
		r.Date = now.Format("2006-01-02")
	}
	if r.Location == "" {
		r.Location = LocationFactory
	}
	if r.Status == "" {
		r.Status = StatusPresent
	}
	if r.RegHours == nil {
		h := decimal.NewFromInt(DefaultRegHours)
		r.RegHours = &h
	}
	if r.OTHours == nil {
		h := decimal.Zero
		r.OTHours = &h
	}
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(string(r.Location), []string{string(LocationFactory), string(LocationOffsite)}) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "location must be 'Factory' or 'Offsite'"})
	}
	if !validator.IsInSlice(string(r.Status), []string{string(StatusPresent), string(StatusHalfDay), string(StatusAbsent)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be 'Present', 'Half-Day' or 'Absent'"})
	}
	if r.RegHours != nil && !validator.IsNonNegative(*r.RegHours) {
		errs = append(errs, validator.ValidationError{Field: "reg_hours", Message: "must be non-negative"})
	}
	if r.OTHours != nil && !validator.IsNonNegative(*r.OTHours) {
		errs = append(errs, validator.ValidationError{Field: "ot_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceLogResponse struct {
	EmployeeID string          `json:"emp_id"`
	Date       string          `json:"date"`
	Location   Location        `json:"location"`
	Status     Status          `json:"status"`
	RegHours   decimal.Decimal `json:"reg_hours"`
	OTHours    decimal.Decimal `json:"ot_hours"`
	Earnings   decimal.Decimal `json:"earnings"`
}

func NewAttendanceLogResponse(l AttendanceLog) AttendanceLogResponse {
	var date string
	if !l.Date.IsZero() {
		date = l.Date.Format("2006-01-02")
	}
	return AttendanceLogResponse{
		EmployeeID: l.EmployeeID,
		Date:       date,
		Location:   l.Location,
		Status:     l.Status,
		RegHours:   l.RegHours,
		OTHours:    l.OTHours,
		Earnings:   l.Earnings,
	}
}

type MarkAttendanceResponse struct {
	EmployeeID   string `json:"emp_id"`
	EmployeeName string `json:"emp_name"`
	Date         string `json:"date"`
}
