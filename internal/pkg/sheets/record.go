package sheets

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one loosely-typed spreadsheet row keyed by column header.
// Values can be strings, json.Number, float64, bool or nil depending on the source.
type Record map[string]any

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
}

// String returns the value as text. Numbers are printed without trailing zeros
// so a numeric id 7 and "7" compare equal.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return normalizeNumber(v.String())
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// OptionalString returns nil for a missing or blank value.
func (r Record) OptionalString(key string) *string {
	s := r.String(key)
	if s == "" {
		return nil
	}
	return &s
}

// Decimal parses a numeric value; missing or malformed values yield zero.
func (r Record) Decimal(key string) decimal.Decimal {
	switch v := r[key].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Date parses a calendar date. Full timestamps are converted to loc before the
// date is taken, since the web app serialises sheet dates as UTC instants.
// Unparseable values yield the zero time.
func (r Record) Date(key string, loc *time.Location) time.Time {
	s := r.String(key)
	if s == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func normalizeNumber(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.String()
}
