package transaction

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAdvance Type = "Advance"
	TypePayment Type = "Payment"
	TypeExpense Type = "Expense"
	TypeBonus   Type = "Bonus"
)

// IsPayout reports whether the type counts as money paid out in the monthly view.
// Expense and Bonus are excluded there.
func (t Type) IsPayout() bool {
	return t == TypeAdvance || t == TypePayment
}

// TransactionLog - Cash movement recorded against an employee
type TransactionLog struct {
	EmployeeID  string
	Date        time.Time
	Type        Type
	Amount      decimal.Decimal
	PaymentMode string
	Notes       *string
}

// TransactionSubmission - Flat record sent to the data source when logging a transaction
type TransactionSubmission struct {
	EmployeeID   string          `json:"emp_id"`
	EmployeeName string          `json:"emp_name"`
	Date         string          `json:"date"`
	Type         Type            `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentMode  string          `json:"payment_mode"`
	Notes        string          `json:"notes,omitempty"`
}

// MarshalJSON writes the amount as a JSON number.
func (s TransactionSubmission) MarshalJSON() ([]byte, error) {
	type plain TransactionSubmission
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"amount"`
	}{
		plain:  plain(s),
		Amount: json.Number(s.Amount.String()),
	})
}
