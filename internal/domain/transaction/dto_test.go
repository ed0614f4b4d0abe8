package transaction

import (
	"testing"
	"time"

	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_IsPayout(t *testing.T) {
	assert.True(t, TypeAdvance.IsPayout())
	assert.True(t, TypePayment.IsPayout())
	assert.False(t, TypeExpense.IsPayout())
	assert.False(t, TypeBonus.IsPayout())
	assert.False(t, Type("Refund").IsPayout())
}

func TestLogTransactionRequest_Validate(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	req := LogTransactionRequest{EmployeeID: "7", Type: TypeAdvance, Amount: decimal.NewFromInt(200)}
	req.ApplyDefaults(now)
	require.NoError(t, req.Validate())
	assert.Equal(t, "2025-03-14", req.Date)
	assert.Equal(t, DefaultPaymentMode, req.PaymentMode)

	bad := LogTransactionRequest{Date: "14/03/2025", Type: "Loan", Amount: decimal.Zero}
	err := bad.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "emp_id")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "amount")
}
