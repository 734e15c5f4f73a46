package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/northcoast-bjj/academy-api/internal/ratelimit"
	"github.com/northcoast-bjj/academy-api/internal/service"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
	"github.com/northcoast-bjj/academy-api/pkg/response"
)

// RateLimit guards the public form endpoints with the submission limiter,
// answering 429 once a client exhausts its window.
func RateLimit(limiter *ratelimit.Limiter, metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(ClientKey(c)) {
			if metrics != nil {
				metrics.RecordLeadThrottled()
			}
			response.Error(c, appErrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClientKey derives the limiter key from the request: the first
// forwarded-for hop, then X-Real-IP, then the "unknown" sentinel.
func ClientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0]); first != "" {
			return first
		}
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}
