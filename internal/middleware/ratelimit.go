package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/trendpilot/api/pkg/response"
)

// NewRateLimiter creates a per-IP fixed-window rate limiter for the API
// routes. State is in-process; this service runs as a single instance.
func NewRateLimiter(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return response.RateLimited(c)
		},
	})
}
