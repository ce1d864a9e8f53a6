package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-api/internal/api/metrics"
)

// HitCounter abstracts the window counter store (Redis in production).
type HitCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit rejects requests with 429 once a client IP exceeds limit hits
// within the window. On counter-store failure the request is let through:
// the limiter protects against abuse, it must not take the API down with it.
func RateLimit(counter HitCounter, limit int64, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := counter.Incr(c.Request().Context(), c.RealIP(), window)
			if err != nil {
				return next(c)
			}
			if count > limit {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
