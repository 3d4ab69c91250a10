package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"punchcard/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": constants.ErrMsgForbidden,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CanAccessRecordsOf(userID uint, userRole UserRole, ownerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == ownerID
}
