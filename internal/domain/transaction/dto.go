package transaction

import (
	"time"

	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultPaymentMode = "Cash"

type LogTransactionRequest struct {
	EmployeeID  string          `json:"emp_id"`
	Date        string          `json:"date"`
	Type        Type            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"payment_mode"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *LogTransactionRequest) ApplyDefaults(now time.Time) {
	if r.Date == "" {
		r.Date = now.Format("2006-01-02")
	}
	if r.PaymentMode == "" {
		r.PaymentMode = DefaultPaymentMode
	}
}

func (r *LogTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(string(r.Type), []string{string(TypeAdvance), string(TypePayment), string(TypeExpense), string(TypeBonus)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of Advance, Payment, Expense, Bonus"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionLogResponse struct {
	EmployeeID  string          `json:"emp_id"`
	Date        string          `json:"date"`
	Type        Type            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"payment_mode"`
	Notes       *string         `json:"notes,omitempty"`
}

func NewTransactionLogResponse(l TransactionLog) TransactionLogResponse {
	var date string
	if !l.Date.IsZero() {
		date = l.Date.Format("2006-01-02")
	}
	return TransactionLogResponse{
		EmployeeID:  l.EmployeeID,
		Date:        date,
		Type:        l.Type,
		Amount:      l.Amount,
		PaymentMode: l.PaymentMode,
		Notes:       l.Notes,
	}
}

type LogTransactionResponse struct {
	EmployeeID   string          `json:"emp_id"`
	EmployeeName string          `json:"emp_name"`
	Type         Type            `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
}
