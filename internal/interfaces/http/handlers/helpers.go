package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/utils"
)

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. It aborts with 401 when missing.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}

	userID, ok := value.(uint)
	if !ok {
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return 0, false
	}
	return userID, true
}
