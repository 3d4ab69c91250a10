package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/utils"
)

// TokenIssuer issues a fresh display token for the office QR screen.
type TokenIssuer interface {
	Issue() (string, error)
}

// TokenChecker reports whether a scanned display token is currently valid.
type TokenChecker interface {
	Validate(token string) bool
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// QRHandler serves the kiosk display: admins fetch a fresh token to render
// as a QR code, and the display can probe whether its current token is still
// inside the validity window.
type QRHandler struct {
	issuer        TokenIssuer
	checker       TokenChecker
	validityHours int
	logger        logger.Interface
}

func NewQRHandler(issuer TokenIssuer, checker TokenChecker, validityHours int) *QRHandler {
	return &QRHandler{
		issuer:        issuer,
		checker:       checker,
		validityHours: validityHours,
		logger:        logger.NewLogger(),
	}
}

// Generate handles GET /api/qr/generate
func (h *QRHandler) Generate(c *gin.Context) {
	token, err := h.issuer.Issue()
	if err != nil {
		h.logger.Errorw("failed to issue QR token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	h.logger.Infow("QR display token issued", "validity_hours", h.validityHours)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":          token,
		"validity_hours": h.validityHours,
	})
}

// Validate handles POST /api/qr/validate
func (h *QRHandler) Validate(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "token is required")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"valid": h.checker.Validate(req.Token),
	})
}
