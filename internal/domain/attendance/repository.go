package attendance

import (
	"context"

	"punchcard/internal/shared/query"
)

// Record is a session joined with the owning user's display identity, as
// returned by the admin report queries.
type Record struct {
	Session  *Session
	Username string
	Email    string
}

// Repository is the sole gateway to persisted sessions. The ledger use cases
// are its only writers; report use cases only read.
//
// Implementations must guarantee, at the storage layer, that two open
// sessions can never exist for the same (user, date); the use-case
// pre-check alone is not race-free.
type Repository interface {
	Create(ctx context.Context, s *Session) error

	// Close persists a session's check-out. The write must be conditional
	// on the stored row still being open: a stored check-out is never
	// altered, so a stale close gets a not-found error instead of
	// overwriting it.
	Close(ctx context.Context, s *Session) error

	// FindOpen returns the most recently opened session with no check-out
	// for the given user and day, or a not-found error.
	FindOpen(ctx context.Context, userID uint, date string) (*Session, error)

	// ListByUserAndDate returns all of a user's sessions for one day,
	// ordered by check-in ascending.
	ListByUserAndDate(ctx context.Context, userID uint, date string) ([]*Session, error)

	// ListByUser returns a user's sessions in the range, ordered by date
	// descending then check-in descending.
	ListByUser(ctx context.Context, userID uint, r query.DateRange) ([]*Session, error)

	// ListRecords returns sessions for all users (or one, when userID is
	// non-nil) joined with user identity, ordered by date descending then
	// check-in descending.
	ListRecords(ctx context.Context, r query.DateRange, userID *uint) ([]*Record, error)
}
