package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/codexiq/review-api/internal/api/metrics"
	"github.com/codexiq/review-api/internal/core/domain"
)

// ReviewLimiter abstracts the fixed-window counter (Redis in production).
type ReviewLimiter interface {
	Allow(ctx context.Context, userID string) (bool, error)
}

// RateLimit caps how many reviews a user may request per window. Runs after
// Auth, keyed on the authenticated subject. Fails open when the limiter
// backend is unavailable: review traffic should not stop because the counter
// store is down.
func RateLimit(limiter ReviewLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" {
				// Auth middleware did not run; treat as unauthenticated.
				return echo.NewHTTPError(http.StatusUnauthorized, clientAuthMessage)
			}

			allowed, err := limiter.Allow(c.Request().Context(), userID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return domain.RateLimitedError("review rate limit exceeded; try again shortly")
			}

			return next(c)
		}
	}
}
