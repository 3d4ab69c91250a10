package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"punchcard/internal/application/attendance/usecases"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/utils"
)

type PunchRequest struct {
	QRToken string `json:"qr_token" binding:"required"`
}

// AttendanceHandler handles employee-facing attendance HTTP requests
type AttendanceHandler struct {
	checkInUseCase  usecases.CheckInExecutor
	checkOutUseCase usecases.CheckOutExecutor
	historyUseCase  usecases.HistoryExecutor
	todayUseCase    usecases.TodayStatusExecutor
	logger          logger.Interface
}

func NewAttendanceHandler(
	checkInUseCase usecases.CheckInExecutor,
	checkOutUseCase usecases.CheckOutExecutor,
	historyUseCase usecases.HistoryExecutor,
	todayUseCase usecases.TodayStatusExecutor,
) *AttendanceHandler {
	return &AttendanceHandler{
		checkInUseCase:  checkInUseCase,
		checkOutUseCase: checkOutUseCase,
		historyUseCase:  historyUseCase,
		todayUseCase:    todayUseCase,
		logger:          logger.NewLogger(),
	}
}

// CheckIn handles POST /api/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid check-in request body", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "qr_token is required")
		return
	}

	result, err := h.checkInUseCase.Execute(c.Request.Context(), usecases.CheckInCommand{
		UserID:  userID,
		QRToken: req.QRToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "checked in successfully", result.Session)
}

// CheckOut handles POST /api/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid check-out request body", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "qr_token is required")
		return
	}

	result, err := h.checkOutUseCase.Execute(c.Request.Context(), usecases.CheckOutCommand{
		UserID:  userID,
		QRToken: req.QRToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checked out successfully", result.Session)
}

// History handles GET /api/attendance/history. The optional user_id query
// lets an admin read another user's records; everyone else gets their own.
func (h *AttendanceHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	target, ok := optionalUserIDParam(c)
	if !ok {
		return
	}

	cmd := usecases.HistoryCommand{
		RequestorID:   userID,
		RequestorRole: c.GetString(constants.ContextKeyUserRole),
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
	}
	if target != nil {
		cmd.UserID = *target
	}

	result, err := h.historyUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"sessions": result.Sessions,
		"stats":    result.Stats,
	})
}

// Today handles GET /api/attendance/today
func (h *AttendanceHandler) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.todayUseCase.Execute(c.Request.Context(), usecases.TodayStatusCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Today)
}
