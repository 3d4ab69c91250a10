package routes

import (
	"github.com/gin-gonic/gin"

	"punchcard/internal/infrastructure/ratelimit"
	"punchcard/internal/interfaces/http/handlers"
	"punchcard/internal/interfaces/http/middleware"
)

type AttendanceRouteConfig struct {
	AttendanceHandler *handlers.AttendanceHandler
	ProfileHandler    *handlers.ProfileHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       ratelimit.RateLimiter
	PunchRateLimits   ratelimit.RateLimitConfig
}

func SetupAttendanceRoutes(engine *gin.Engine, config *AttendanceRouteConfig) {
	engine.GET("/api/profile",
		config.AuthMiddleware.RequireAuth(),
		config.ProfileHandler.GetProfile)

	attendance := engine.Group("/api/attendance")
	attendance.Use(config.AuthMiddleware.RequireAuth())
	{
		attendance.POST("/check-in",
			middleware.RateLimit(config.RateLimiter, "punch", config.PunchRateLimits),
			config.AttendanceHandler.CheckIn)
		attendance.POST("/check-out",
			middleware.RateLimit(config.RateLimiter, "punch", config.PunchRateLimits),
			config.AttendanceHandler.CheckOut)
		attendance.GET("/history", config.AttendanceHandler.History)
		attendance.GET("/today", config.AttendanceHandler.Today)
	}
}
