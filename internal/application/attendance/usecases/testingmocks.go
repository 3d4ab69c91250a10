package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/query"
)

type mockAttendanceRepository struct {
	mock.Mock
}

func (m *mockAttendanceRepository) Create(ctx context.Context, s *attendance.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockAttendanceRepository) Close(ctx context.Context, s *attendance.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockAttendanceRepository) FindOpen(ctx context.Context, userID uint, date string) (*attendance.Session, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Session), args.Error(1)
}

func (m *mockAttendanceRepository) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]*attendance.Session, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Session), args.Error(1)
}

func (m *mockAttendanceRepository) ListByUser(ctx context.Context, userID uint, r query.DateRange) ([]*attendance.Session, error) {
	args := m.Called(ctx, userID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Session), args.Error(1)
}

func (m *mockAttendanceRepository) ListRecords(ctx context.Context, r query.DateRange, userID *uint) ([]*attendance.Record, error) {
	args := m.Called(ctx, r, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Record), args.Error(1)
}

type mockQRValidator struct {
	mock.Mock
}

func (m *mockQRValidator) Validate(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}

// stubTransactor runs the function directly, without a database.
type stubTransactor struct{}

func (stubTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
