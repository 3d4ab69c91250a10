package routes

import (
	"github.com/gin-gonic/gin"

	"punchcard/internal/infrastructure/ratelimit"
	"punchcard/internal/interfaces/http/handlers"
	"punchcard/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	RateLimiter     ratelimit.RateLimiter
	LoginRateLimits ratelimit.RateLimitConfig
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login",
			middleware.RateLimit(config.RateLimiter, "login", config.LoginRateLimits),
			config.AuthHandler.Login)
		auth.POST("/register",
			middleware.RateLimit(config.RateLimiter, "register", config.LoginRateLimits),
			config.AuthHandler.Register)
	}
}
