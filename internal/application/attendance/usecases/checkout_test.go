package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/errors"
)

func TestCheckOut_Success(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "good-token").Return(true)

	open, err := attendance.NewSession(1, biztime.NowUTC().Add(-2*time.Hour))
	require.NoError(t, err)
	open.ID = 7
	repo.On("FindOpen", mock.Anything, uint(1), mock.Anything).Return(open, nil)
	repo.On("Close", mock.Anything, open).Return(nil)

	uc := NewCheckOutUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, execErr := uc.Execute(context.Background(), CheckOutCommand{UserID: 1, QRToken: "good-token"})

	require.NoError(t, execErr)
	assert.Equal(t, uint(7), result.Session.ID)
	assert.False(t, result.Session.IsOpen)
	require.NotNil(t, result.Session.CheckOutTime)
	assert.InDelta(t, 120, result.Session.DurationMinutes, 1)
	repo.AssertExpectations(t)
}

func TestCheckOut_NoOpenSession(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "good-token").Return(true)
	repo.On("FindOpen", mock.Anything, uint(1), mock.Anything).
		Return(nil, errors.NewNotFoundError("no open session found"))

	uc := NewCheckOutUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, err := uc.Execute(context.Background(), CheckOutCommand{UserID: 1, QRToken: "good-token"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), constants.ErrMsgNoOpenSession)
	repo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
}

func TestCheckOut_RaceLostToConcurrentClose(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "good-token").Return(true)

	open, err := attendance.NewSession(1, biztime.NowUTC().Add(-2*time.Hour))
	require.NoError(t, err)
	open.ID = 7
	repo.On("FindOpen", mock.Anything, uint(1), mock.Anything).Return(open, nil)
	// The conditional close matched zero rows: another check-out already
	// closed the session after our snapshot read.
	repo.On("Close", mock.Anything, open).
		Return(errors.NewNotFoundError("no open session found"))

	uc := NewCheckOutUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, execErr := uc.Execute(context.Background(), CheckOutCommand{UserID: 1, QRToken: "good-token"})

	require.Error(t, execErr)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(execErr))
	assert.Contains(t, execErr.Error(), constants.ErrMsgNoOpenSession)
}

func TestCheckOut_InvalidQRToken(t *testing.T) {
	repo := new(mockAttendanceRepository)
	validator := new(mockQRValidator)

	validator.On("Validate", "stale-token").Return(false)

	uc := NewCheckOutUseCase(repo, validator, stubTransactor{}, noopLogger{})
	result, err := uc.Execute(context.Background(), CheckOutCommand{UserID: 1, QRToken: "stale-token"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), constants.ErrMsgInvalidQRCode)
	repo.AssertNotCalled(t, "FindOpen", mock.Anything, mock.Anything, mock.Anything)
}
