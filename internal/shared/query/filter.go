// Package query provides typed query filters shared by repositories.
package query

import (
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/errors"
)

// DateRange is a tagged filter over calendar days. The zero value matches
// all dates; Between constrains to an inclusive [start, end] span of
// YYYY-MM-DD day strings.
type DateRange struct {
	bounded bool
	start   string
	end     string
}

// AllDates returns an unbounded range.
func AllDates() DateRange {
	return DateRange{}
}

// Between returns an inclusive range over the given day strings.
// Both bounds must be valid YYYY-MM-DD dates and start must not follow end.
func Between(start, end string) (DateRange, error) {
	s, err := biztime.ParseDate(start)
	if err != nil {
		return DateRange{}, errors.NewValidationError("invalid start date", err.Error())
	}
	e, err := biztime.ParseDate(end)
	if err != nil {
		return DateRange{}, errors.NewValidationError("invalid end date", err.Error())
	}
	if s.After(e) {
		return DateRange{}, errors.NewValidationError("start date must not be after end date")
	}
	return DateRange{bounded: true, start: start, end: end}, nil
}

// FromParams builds a DateRange from optional query parameters. Both empty
// means all dates; providing only one bound is a validation error.
func FromParams(start, end string) (DateRange, error) {
	if start == "" && end == "" {
		return AllDates(), nil
	}
	if start == "" || end == "" {
		return DateRange{}, errors.NewValidationError("start_date and end_date must be provided together")
	}
	return Between(start, end)
}

func (r DateRange) IsAll() bool {
	return !r.bounded
}

// Bounds returns the inclusive day-string bounds. Only meaningful when
// IsAll() is false.
func (r DateRange) Bounds() (start, end string) {
	return r.start, r.end
}
