package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"punchcard/internal/application/attendance/usecases"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/utils"
)

// ReportHandler handles the admin reporting HTTP requests
type ReportHandler struct {
	reportUseCase usecases.AdminReportExecutor
	exportUseCase usecases.ExportExecutor
	statsUseCase  usecases.AdminStatsExecutor
	logger        logger.Interface
}

func NewReportHandler(
	reportUseCase usecases.AdminReportExecutor,
	exportUseCase usecases.ExportExecutor,
	statsUseCase usecases.AdminStatsExecutor,
) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		exportUseCase: exportUseCase,
		statsUseCase:  statsUseCase,
		logger:        logger.NewLogger(),
	}
}

// ListAttendance handles GET /api/admin/attendance
func (h *ReportHandler) ListAttendance(c *gin.Context) {
	userID, ok := optionalUserIDParam(c)
	if !ok {
		return
	}

	result, err := h.reportUseCase.Execute(c.Request.Context(), usecases.AdminReportCommand{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		UserID:    userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Records)
}

// Export handles GET /api/admin/export
func (h *ReportHandler) Export(c *gin.Context) {
	userID, ok := optionalUserIDParam(c)
	if !ok {
		return
	}

	// Buffer the workbook so failures still produce a clean JSON error
	// instead of a truncated download.
	var buf bytes.Buffer
	result, err := h.exportUseCase.Execute(c.Request.Context(), usecases.ExportCommand{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		UserID:    userID,
	}, &buf)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("serving attendance export", "file", result.FileName, "rows", result.RowCount)

	c.Header(constants.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, buf.Bytes())
}

// Stats handles GET /api/admin/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	result, err := h.statsUseCase.Execute(c.Request.Context(), usecases.AdminStatsCommand{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func optionalUserIDParam(c *gin.Context) (*uint, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user_id")
		return nil, false
	}
	parsed := uint(id)
	return &parsed, true
}
