package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"motorserve/internal/infrastructure/ratelimit"
	"motorserve/pkg/errors"
	"motorserve/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the given action per authenticated user, falling back to
// the client IP for anonymous requests.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				key = uid
			}

			allowed, wait := m.limiter.Allow(key, action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Rate limit exceeded, retry in %s", wait.Round(time.Second)),
				))
			}

			return next(c)
		}
	}
}
