package attendance

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Location string

const (
	LocationFactory Location = "Factory"
	LocationOffsite Location = "Offsite"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "Half-Day"
	StatusAbsent  Status = "Absent"
)

// AttendanceLog - One employee work-day as recorded upstream.
// Earnings is computed by the data source from hours and rates.
type AttendanceLog struct {
	EmployeeID string
	Date       time.Time
	Location   Location
	Status     Status
	RegHours   decimal.Decimal
	OTHours    decimal.Decimal
	Earnings   decimal.Decimal
}

// AttendanceSubmission - Flat record sent to the data source when marking attendance.
// Rates are copied from the employee so the remote side can compute earnings.
type AttendanceSubmission struct {
	EmployeeID   string          `json:"emp_id"`
	EmployeeName string          `json:"emp_name"`
	RateFactory  decimal.Decimal `json:"rate_factory"`
	RateOffsite  decimal.Decimal `json:"rate_offsite"`
	RateOT       decimal.Decimal `json:"rate_ot"`
	Date         string          `json:"date"`
	Location     Location        `json:"location"`
	Status       Status          `json:"status"`
	RegHours     decimal.Decimal `json:"reg_hours"`
	OTHours      decimal.Decimal `json:"ot_hours"`
}

// MarshalJSON writes rates and hours as JSON numbers; the remote script does
// arithmetic on them and would concatenate strings.
func (s AttendanceSubmission) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EmployeeID   string      `json:"emp_id"`
		EmployeeName string      `json:"emp_name"`
		RateFactory  json.Number `json:"rate_factory"`
		RateOffsite  json.Number `json:"rate_offsite"`
		RateOT       json.Number `json:"rate_ot"`
		Date         string      `json:"date"`
		Location     Location    `json:"location"`
		Status       Status      `json:"status"`
		RegHours     json.Number `json:"reg_hours"`
		OTHours      json.Number `json:"ot_hours"`
	}{
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		RateFactory:  json.Number(s.RateFactory.String()),
		RateOffsite:  json.Number(s.RateOffsite.String()),
		RateOT:       json.Number(s.RateOT.String()),
		Date:         s.Date,
		Location:     s.Location,
		Status:       s.Status,
		RegHours:     json.Number(s.RegHours.String()),
		OTHours:      json.Number(s.OTHours.String()),
	})
}
