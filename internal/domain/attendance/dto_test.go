package attendance

import (
	"testing"
	"time"

	"github.com/navnirman/admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_ApplyDefaults(t *testing.T) {
	req := MarkAttendanceRequest{EmployeeID: "12"}
	req.ApplyDefaults(time.Date(2025, 1, 5, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, "2025-01-05", req.Date)
	assert.Equal(t, LocationFactory, req.Location)
	assert.Equal(t, StatusPresent, req.Status)
	require.NotNil(t, req.RegHours)
	require.NotNil(t, req.OTHours)
	assert.True(t, req.RegHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, req.OTHours.IsZero())
	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	neg := decimal.NewFromInt(-2)
	req := MarkAttendanceRequest{
		Date:     "2025-02-30",
		Location: "Home",
		Status:   "Late",
		RegHours: &neg,
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Len(t, fields, 5)
	assert.Contains(t, fields, "emp_id")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "location")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "reg_hours")
}
