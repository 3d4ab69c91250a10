package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	attdto "punchcard/internal/application/attendance/dto"
	"punchcard/internal/application/attendance/usecases"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/errors"
)

type mockCheckInExecutor struct {
	mock.Mock
}

func (m *mockCheckInExecutor) Execute(ctx context.Context, cmd usecases.CheckInCommand) (*usecases.CheckInResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.CheckInResult), args.Error(1)
}

type mockCheckOutExecutor struct {
	mock.Mock
}

func (m *mockCheckOutExecutor) Execute(ctx context.Context, cmd usecases.CheckOutCommand) (*usecases.CheckOutResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.CheckOutResult), args.Error(1)
}

type mockHistoryExecutor struct {
	mock.Mock
}

func (m *mockHistoryExecutor) Execute(ctx context.Context, cmd usecases.HistoryCommand) (*usecases.HistoryResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.HistoryResult), args.Error(1)
}

type mockTodayStatusExecutor struct {
	mock.Mock
}

func (m *mockTodayStatusExecutor) Execute(ctx context.Context, cmd usecases.TodayStatusCommand) (*usecases.TodayStatusResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.TodayStatusResult), args.Error(1)
}

func setupAttendanceRouter(h *AttendanceHandler, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, "user")
		c.Next()
	})
	router.POST("/api/attendance/check-in", h.CheckIn)
	router.POST("/api/attendance/check-out", h.CheckOut)
	router.GET("/api/attendance/history", h.History)
	router.GET("/api/attendance/today", h.Today)
	return router
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	checkIn := new(mockCheckInExecutor)
	checkIn.On("Execute", mock.Anything, usecases.CheckInCommand{UserID: 1, QRToken: "display-token"}).
		Return(&usecases.CheckInResult{Session: attdto.SessionDTO{ID: 42, Date: "2026-03-09", IsOpen: true}}, nil)

	h := NewAttendanceHandler(checkIn, new(mockCheckOutExecutor), new(mockHistoryExecutor), new(mockTodayStatusExecutor))
	router := setupAttendanceRouter(h, 1)

	body := bytes.NewBufferString(`{"qr_token":"display-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", body)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     uint `json:"id"`
			IsOpen bool `json:"is_open"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(42), resp.Data.ID)
	assert.True(t, resp.Data.IsOpen)
	checkIn.AssertExpectations(t)
}

func TestAttendanceHandler_CheckIn_MissingToken(t *testing.T) {
	checkIn := new(mockCheckInExecutor)
	h := NewAttendanceHandler(checkIn, new(mockCheckOutExecutor), new(mockHistoryExecutor), new(mockTodayStatusExecutor))
	router := setupAttendanceRouter(h, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewBufferString(`{}`))
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	checkIn.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAttendanceHandler_CheckIn_OpenSessionExists(t *testing.T) {
	checkIn := new(mockCheckInExecutor)
	checkIn.On("Execute", mock.Anything, mock.Anything).
		Return(nil, errors.NewValidationError(constants.ErrMsgOpenSessionExists))

	h := NewAttendanceHandler(checkIn, new(mockCheckOutExecutor), new(mockHistoryExecutor), new(mockTodayStatusExecutor))
	router := setupAttendanceRouter(h, 1)

	body := bytes.NewBufferString(`{"qr_token":"display-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", body)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.ErrMsgOpenSessionExists)
}

func TestAttendanceHandler_CheckOut_Success(t *testing.T) {
	checkOut := new(mockCheckOutExecutor)
	checkOut.On("Execute", mock.Anything, usecases.CheckOutCommand{UserID: 7, QRToken: "display-token"}).
		Return(&usecases.CheckOutResult{Session: attdto.SessionDTO{ID: 9, DurationMinutes: 480}}, nil)

	h := NewAttendanceHandler(new(mockCheckInExecutor), checkOut, new(mockHistoryExecutor), new(mockTodayStatusExecutor))
	router := setupAttendanceRouter(h, 7)

	body := bytes.NewBufferString(`{"qr_token":"display-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-out", body)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	checkOut.AssertExpectations(t)
}

func TestAttendanceHandler_History_PassesDateRange(t *testing.T) {
	history := new(mockHistoryExecutor)
	history.On("Execute", mock.Anything, usecases.HistoryCommand{
		RequestorID:   1,
		RequestorRole: "user",
		StartDate:     "2026-03-01",
		EndDate:       "2026-03-31",
	}).Return(&usecases.HistoryResult{}, nil)

	h := NewAttendanceHandler(new(mockCheckInExecutor), new(mockCheckOutExecutor), history, new(mockTodayStatusExecutor))
	router := setupAttendanceRouter(h, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/history?start_date=2026-03-01&end_date=2026-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	history.AssertExpectations(t)
}

func TestAttendanceHandler_History_PassesTargetUser(t *testing.T) {
	history := new(mockHistoryExecutor)
	history.On("Execute", mock.Anything, usecases.HistoryCommand{
		RequestorID:   1,
		RequestorRole: "user",
		UserID:        2,
	}).Return(&usecases.HistoryResult{}, nil)

	h := NewAttendanceHandler(new(mockCheckInExecutor), new(mockCheckOutExecutor), history, new(mockTodayStatusExecutor))
	router := setupAttendanceRouter(h, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/history?user_id=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	history.AssertExpectations(t)
}

func TestAttendanceHandler_Today_Success(t *testing.T) {
	today := new(mockTodayStatusExecutor)
	today.On("Execute", mock.Anything, usecases.TodayStatusCommand{UserID: 1}).
		Return(&usecases.TodayStatusResult{Today: attdto.TodayStatusDTO{
			Date:   "2026-03-09",
			Status: "has_open_session",
		}}, nil)

	h := NewAttendanceHandler(new(mockCheckInExecutor), new(mockCheckOutExecutor), new(mockHistoryExecutor), today)
	router := setupAttendanceRouter(h, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "has_open_session")
	today.AssertExpectations(t)
}
