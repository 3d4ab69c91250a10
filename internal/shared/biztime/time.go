// Package biztime provides office-timezone calendar calculations.
// All storage and transport use UTC; the office timezone is used only to
// decide which calendar day (and week) a timestamp belongs to, so every
// employee shares one day boundary regardless of device locale.
//
// Design principles:
// - All time storage is in UTC
// - Every "today" computation goes through this package
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default office timezone.
	DefaultTimezone = "Asia/Dhaka"

	// DateLayout is the canonical calendar-day format used for session dates.
	DateLayout = "2006-01-02"
)

var (
	officeLocation *time.Location
	officeOnce     sync.Once
	initErr        error
)

// Init initializes the office timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Dhaka.
func Init(tz string) error {
	officeOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		officeLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the office timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize office timezone %q: %v", tz, err))
	}
}

// Location returns the office timezone location, auto-initializing with the
// default timezone if Init was never called.
func Location() *time.Location {
	if officeLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return officeLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateString returns the calendar day a timestamp falls on in the office
// timezone, formatted as YYYY-MM-DD. This is the single definition of
// "today" for check-in, check-out, and reporting.
func DateString(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as an office-timezone midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// StartOfDayUTC returns the start of day (00:00:00) in the office timezone,
// converted to UTC for storage and queries.
func StartOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return start.UTC()
}

// EndOfDayUTC returns the end of day (23:59:59.999999999) in the office
// timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Location())
	return end.UTC()
}

// StartOfWeek returns office-timezone midnight of the Sunday beginning the
// week that contains t. Weeks start on Sunday.
func StartOfWeek(t time.Time) time.Time {
	local := t.In(Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return start.AddDate(0, 0, -int(start.Weekday()))
}

// FormatInOfficeTime formats a UTC time as a string in the office timezone.
func FormatInOfficeTime(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
