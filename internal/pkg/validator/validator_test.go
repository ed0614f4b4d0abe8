package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Factory", "Offsite"}
	if !IsInSlice("Factory", slice) {
		t.Errorf("IsInSlice(Factory) = false, want true")
	}
	if IsInSlice("factory", slice) {
		t.Errorf("IsInSlice(factory) = true, want false")
	}
	if IsInSlice("", nil) {
		t.Errorf("IsInSlice on nil slice = true, want false")
	}
}

func TestIsMonthIndex(t *testing.T) {
	for _, m := range []int{0, 5, 11} {
		if !IsMonthIndex(m) {
			t.Errorf("IsMonthIndex(%d) = false, want true", m)
		}
	}
	for _, m := range []int{-1, 12, 100} {
		if IsMonthIndex(m) {
			t.Errorf("IsMonthIndex(%d) = true, want false", m)
		}
	}
}

func TestIsNonNegative(t *testing.T) {
	if !IsNonNegative(decimal.Zero) {
		t.Errorf("IsNonNegative(0) = false, want true")
	}
	if IsNonNegative(decimal.NewFromInt(-1)) {
		t.Errorf("IsNonNegative(-1) = true, want false")
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "emp_id", Message: "emp_id is required"},
		{Field: "date", Message: "date must be YYYY-MM-DD"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["emp_id"] != "emp_id is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "emp_id: emp_id is required; date: date must be YYYY-MM-DD" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
