package middleware

import (
	"math"
	"net/http"
	"strconv"

	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/logger"
	"guardops-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects callers that exceed the limiter's window. Callers are
// identified by user id when authenticated, otherwise by client IP. When
// Redis is unavailable the request is let through.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		result, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.WithContext(c).WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(result.RetryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apperrors.ErrRateLimitExceeded.Error()})
			return
		}

		c.Next()
	}
}
