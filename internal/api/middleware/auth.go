package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ContextUserID is the echo context key carrying the authenticated subject.
const ContextUserID = "user_id"

// clientAuthMessage is the single message returned for every auth failure.
// The specific reason (missing/invalid/expired) is logged server-side only,
// so responses never help a caller probe token handling.
const clientAuthMessage = "authentication required"

// Auth verifies the bearer token's signature and expiry and injects the
// subject into the request context. Verification is a pure function of
// (token, current time, secret) — no I/O.
func Auth(jwtSecret string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Debug().Str("path", c.Path()).Msg("auth rejected: missing authorization header")
				return echo.NewHTTPError(http.StatusUnauthorized, clientAuthMessage)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Debug().Str("path", c.Path()).Msg("auth rejected: malformed authorization header")
				return echo.NewHTTPError(http.StatusUnauthorized, clientAuthMessage)
			}

			claims := &jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				reason := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					reason = "expired token"
				}
				log.Debug().Str("path", c.Path()).Err(err).Msgf("auth rejected: %s", reason)
				return echo.NewHTTPError(http.StatusUnauthorized, clientAuthMessage)
			}
			if claims.Subject == "" {
				log.Debug().Str("path", c.Path()).Msg("auth rejected: token missing subject")
				return echo.NewHTTPError(http.StatusUnauthorized, clientAuthMessage)
			}

			c.Set(ContextUserID, claims.Subject)
			return next(c)
		}
	}
}
