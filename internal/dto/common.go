package dto

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format accepted by every date field.
const DateLayout = "2006-01-02"

// ParseDate parses a DateLayout string as local midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseDateRange parses optional from/to dates. The returned upper bound is
// the start of the day after to, so the range includes the whole last day.
func ParseDateRange(from, to string, loc *time.Location) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if from != "" {
		t, err := ParseDate(from, loc)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if to != "" {
		t, err := ParseDate(to, loc)
		if err != nil {
			return nil, nil, err
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	if start != nil && end != nil && !start.Before(*end) {
		return nil, nil, fmt.Errorf("date range start must not be after its end")
	}
	return start, end, nil
}
