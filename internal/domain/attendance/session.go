// Package attendance holds the session ledger: the per-user sequence of
// check-in/check-out cycles grouped by office-timezone calendar day.
package attendance

import (
	"fmt"
	"time"

	"punchcard/internal/shared/biztime"
)

// Session is one check-in/check-out cycle for a user on a given day.
// CheckOutTime is nil while the session is open; it is set exactly once and
// never cleared. A user may accumulate any number of sessions per day
// (lunch breaks, errands), but at most one of them may be open at a time.
type Session struct {
	ID           uint
	UserID       uint
	Date         string // office-timezone calendar day, YYYY-MM-DD
	CheckInTime  time.Time
	CheckOutTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSession opens a session for the given user at the given instant.
// The session's calendar day is derived from the office timezone, never the
// caller's locale.
func NewSession(userID uint, now time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	utcNow := now.UTC()
	return &Session{
		UserID:      userID,
		Date:        biztime.DateString(now),
		CheckInTime: utcNow,
		CreatedAt:   utcNow,
		UpdatedAt:   utcNow,
	}, nil
}

// IsOpen reports whether the session has no check-out yet.
func (s *Session) IsOpen() bool {
	return s.CheckOutTime == nil
}

// Close records the check-out instant. The close is append-only: a closed
// session can never be reopened or re-closed, and the check-out must be
// strictly later than the check-in.
func (s *Session) Close(now time.Time) error {
	if !s.IsOpen() {
		return fmt.Errorf("session %d is already closed", s.ID)
	}
	utcNow := now.UTC()
	if !utcNow.After(s.CheckInTime) {
		return fmt.Errorf("check-out time must be after check-in time")
	}
	s.CheckOutTime = &utcNow
	s.UpdatedAt = utcNow
	return nil
}

// Duration returns the closed session's length. Open sessions report zero:
// elapsed-so-far is a presentation concern, never stored or aggregated.
// A negative span from corrupted data clamps to zero.
func (s *Session) Duration() time.Duration {
	d, _ := s.RawDuration()
	if d < 0 {
		return 0
	}
	return d
}

// RawDuration returns the unclamped span and whether the session is closed.
// Callers that care about corrupted data can log when d < 0.
func (s *Session) RawDuration() (time.Duration, bool) {
	if s.CheckOutTime == nil {
		return 0, false
	}
	return s.CheckOutTime.Sub(s.CheckInTime), true
}
