package routes

import (
	"github.com/gin-gonic/gin"

	"punchcard/internal/interfaces/http/handlers"
	"punchcard/internal/interfaces/http/middleware"
	"punchcard/internal/shared/authorization"
)

type QRRouteConfig struct {
	QRHandler      *handlers.QRHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupQRRoutes(engine *gin.Engine, config *QRRouteConfig) {
	qr := engine.Group("/api/qr")
	{
		// Only admins mint display tokens; the kiosk validate probe is
		// unauthenticated so the display works without a login session.
		qr.GET("/generate",
			config.AuthMiddleware.RequireAuth(),
			authorization.RequireAdmin(),
			config.QRHandler.Generate)
		qr.POST("/validate", config.QRHandler.Validate)
	}
}
