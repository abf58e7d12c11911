package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/codexiq/review-api/internal/core/domain"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/review/code", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestResolveError_TaxonomyMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        domain.ValidationError("programming language must be specified"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "programming language must be specified",
		},
		{
			name:       "conflict",
			err:        domain.ErrEmailExists,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "user with this email already exists",
		},
		{
			name:       "invalid credentials",
			err:        domain.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid credentials",
		},
		{
			name:       "unauthorized",
			err:        domain.UnauthorizedError("completion provider API key unauthorized or invalid"),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "completion provider API key unauthorized or invalid",
		},
		{
			name:       "not found",
			err:        domain.NotFoundError("GitHub file not found; check the URL and file path"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "GitHub file not found; check the URL and file path",
		},
		{
			name:       "access denied",
			err:        domain.AccessDeniedError("access denied to GitHub repository"),
			wantStatus: http.StatusForbidden,
			wantMsg:    "access denied to GitHub repository",
		},
		{
			name:       "rate limited",
			err:        domain.RateLimitedError("review rate limit exceeded"),
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "review rate limit exceeded",
		},
		{
			name:       "upstream mirrors status",
			err:        domain.UpstreamError("completion provider error: model overloaded", http.StatusBadGateway),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "completion provider error: model overloaded",
		},
		{
			name:       "upstream without status defaults to 500",
			err:        domain.UpstreamError("failed to reach completion provider", 0),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "failed to reach completion provider",
		},
		{
			name:       "server config hides specifics",
			err:        domain.ServerConfigError("server configuration error: JWT secret missing"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
		{
			name:       "unexpected error stays generic",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
		{
			name:       "echo error passthrough",
			err:        echo.NewHTTPError(http.StatusUnauthorized, "authentication required"),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := resolveError(tt.err, zerolog.Nop(), newTestContext())
			if status != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, status)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}
