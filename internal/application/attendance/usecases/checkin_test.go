package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/errors"
)

func TestCheckIn_Success(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "good-token").Return(true)
	repo.On("FindOpen", mock.Anything, uint(1), mock.Anything).
		Return(nil, errors.NewNotFoundError("no open session found"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*attendance.Session")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*attendance.Session).ID = 42
		}).
		Return(nil)

	uc := NewCheckInUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, err := uc.Execute(context.Background(), CheckInCommand{UserID: 1, QRToken: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.Session.ID)
	assert.True(t, result.Session.IsOpen)
	assert.Equal(t, biztime.DateString(biztime.NowUTC()), result.Session.Date)
	repo.AssertExpectations(t)
	validator.AssertExpectations(t)
}

func TestCheckIn_InvalidQRToken(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "stale-token").Return(false)

	uc := NewCheckInUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, err := uc.Execute(context.Background(), CheckInCommand{UserID: 1, QRToken: "stale-token"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), constants.ErrMsgInvalidQRCode)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckIn_OpenSessionExists(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "good-token").Return(true)

	open, err := attendance.NewSession(1, biztime.NowUTC())
	require.NoError(t, err)
	repo.On("FindOpen", mock.Anything, uint(1), mock.Anything).Return(open, nil)

	uc := NewCheckInUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, execErr := uc.Execute(context.Background(), CheckInCommand{UserID: 1, QRToken: "good-token"})

	require.Error(t, execErr)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(execErr))
	assert.Contains(t, execErr.Error(), constants.ErrMsgOpenSessionExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckIn_RaceLostToConcurrentInsert(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "good-token").Return(true)
	repo.On("FindOpen", mock.Anything, uint(1), mock.Anything).
		Return(nil, errors.NewNotFoundError("no open session found"))
	// The unique index caught a concurrent check-in after the pre-check.
	repo.On("Create", mock.Anything, mock.AnythingOfType("*attendance.Session")).
		Return(errors.NewValidationError(constants.ErrMsgOpenSessionExists))

	uc := NewCheckInUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, err := uc.Execute(context.Background(), CheckInCommand{UserID: 1, QRToken: "good-token"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), constants.ErrMsgOpenSessionExists)
}

func TestCheckIn_MissingFields(t *testing.T) {
	uc := NewCheckInUseCase(new(mockAttendanceRepository), new(mockQRValidator), stubTransactor{}, noopLogger{})

	_, err := uc.Execute(context.Background(), CheckInCommand{QRToken: "good-token"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CheckInCommand{UserID: 1})
	assert.True(t, errors.IsValidationError(err))
}
