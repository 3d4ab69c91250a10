package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/query"
)

func TestHistory_OwnRecords(t *testing.T) {
	repo := new(mockAttendanceRepository)
	repo.On("ListByUser", mock.Anything, uint(1), query.AllDates()).
		Return([]*attendance.Session{}, nil)

	uc := NewHistoryUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), HistoryCommand{
		RequestorID:   1,
		RequestorRole: "user",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Sessions)
	repo.AssertExpectations(t)
}

func TestHistory_OtherUserForbidden(t *testing.T) {
	repo := new(mockAttendanceRepository)

	uc := NewHistoryUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), HistoryCommand{
		RequestorID:   1,
		RequestorRole: "user",
		UserID:        2,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestHistory_AdminReadsOtherUser(t *testing.T) {
	repo := new(mockAttendanceRepository)
	repo.On("ListByUser", mock.Anything, uint(2), query.AllDates()).
		Return([]*attendance.Session{}, nil)

	uc := NewHistoryUseCase(repo, noopLogger{})
	_, err := uc.Execute(context.Background(), HistoryCommand{
		RequestorID:   1,
		RequestorRole: "admin",
		UserID:        2,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
