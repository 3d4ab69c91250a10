package attendance

import (
	"time"

	"punchcard/internal/shared/biztime"
)

// DayStatus classifies one day's worth of sessions for a user.
type DayStatus string

const (
	DayNoSessions     DayStatus = "no_sessions"
	DayHasOpenSession DayStatus = "has_open_session"
	DayAllClosed      DayStatus = "all_closed"
)

// ClassifyDay derives the day status driving the UI labels
// ("Not Checked In" / "Working" / "Day Complete").
func ClassifyDay(sessions []*Session) DayStatus {
	if len(sessions) == 0 {
		return DayNoSessions
	}
	for _, s := range sessions {
		if s.IsOpen() {
			return DayHasOpenSession
		}
	}
	return DayAllClosed
}

// RecordStatus is the per-session export status. The three-way split lets
// administrators tell "still working" apart from "forgot to check out".
type RecordStatus string

const (
	StatusComplete   RecordStatus = "Complete"
	StatusInProgress RecordStatus = "In Progress"
	StatusIncomplete RecordStatus = "Incomplete"
)

// ClassifyRecord returns Complete for closed sessions, In Progress for a
// session still open today, and Incomplete for an open session on a past day.
func ClassifyRecord(s *Session, today string) RecordStatus {
	if !s.IsOpen() {
		return StatusComplete
	}
	if s.Date == today {
		return StatusInProgress
	}
	return StatusIncomplete
}

// PeriodStats summarizes a user's sessions over a reporting period.
type PeriodStats struct {
	DaysPresent      int           // days with at least one session
	AverageDuration  time.Duration // over closed sessions only
	SessionsThisWeek int           // sessions dated in the current calendar week
}

// ComputePeriodStats aggregates already-fetched sessions. Open sessions are
// excluded from the average so in-progress time never biases it. The current
// week starts on Sunday in the office timezone, relative to now.
func ComputePeriodStats(sessions []*Session, now time.Time) PeriodStats {
	stats := PeriodStats{}

	days := make(map[string]struct{})
	var total time.Duration
	closed := 0

	weekStart := biztime.StartOfWeek(now)
	weekStartDay := weekStart.Format(biztime.DateLayout)
	today := biztime.DateString(now)

	for _, s := range sessions {
		days[s.Date] = struct{}{}

		if d, ok := s.RawDuration(); ok {
			if d < 0 {
				d = 0
			}
			total += d
			closed++
		}

		if s.Date >= weekStartDay && s.Date <= today {
			stats.SessionsThisWeek++
		}
	}

	stats.DaysPresent = len(days)
	if closed > 0 {
		stats.AverageDuration = total / time.Duration(closed)
	}
	return stats
}

// Row is one exportable line of the attendance report.
type Row struct {
	Username     string
	Email        string
	Date         string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Duration     time.Duration
	HasDuration  bool
	Status       RecordStatus
}

// Tabulate produces one row per session, joined with user identity. It is a
// pure derivation: anomalous data (negative durations) is clamped, not
// rejected, since this is a reporting path.
func Tabulate(records []*Record, today string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		s := rec.Session
		row := Row{
			Username:     rec.Username,
			Email:        rec.Email,
			Date:         s.Date,
			CheckInTime:  s.CheckInTime,
			CheckOutTime: s.CheckOutTime,
			Status:       ClassifyRecord(s, today),
		}
		if _, closed := s.RawDuration(); closed {
			row.Duration = s.Duration()
			row.HasDuration = true
		}
		rows = append(rows, row)
	}
	return rows
}
