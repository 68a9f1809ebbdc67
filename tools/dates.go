package tools

import (
	"time"

	"github.com/triply/travelhub/core"
)

// ParseDate parses a YYYY-MM-DD argument. Empty input is allowed and
// returns a zero time so optional dates pass through.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(core.DateLayout, value)
	if err != nil {
		return time.Time{}, core.Validationf("%s must be a YYYY-MM-DD date, got %q", field, value)
	}
	return t, nil
}

// ParseDateRange parses an optional start/end pair and rejects ranges
// where the end comes before the start.
func ParseDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := ParseDate("startDate", startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate("endDate", endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, core.Validationf("endDate %s is before startDate %s", endValue, startValue)
	}
	return start, end, nil
}
