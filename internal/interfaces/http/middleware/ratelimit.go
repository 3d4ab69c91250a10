package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"punchcard/internal/infrastructure/ratelimit"
	"punchcard/internal/shared/utils"
)

// RateLimit enforces per-IP limits on abuse-prone endpoints. A nil limiter
// disables limiting entirely, and Redis failures let requests through so an
// unavailable Redis never blocks all traffic.
func RateLimit(limiter ratelimit.RateLimiter, scope string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())
		allowed, err := limiter.Allow(key, config)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
