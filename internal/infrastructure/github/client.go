// Package github provides the production ContentHost implementation: a
// single-shot fetch of a file's raw content from GitHub.
package github

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/codexiq/review-api/internal/core/domain"
)

const (
	userAgent      = "CodexIQ-Code-Reviewer"
	defaultTimeout = 30 * time.Second

	// maxResponseBytes bounds how much of any response is read into memory:
	// one byte past the largest reviewable file, so an oversized fetch still
	// surfaces as a size violation instead of silent truncation.
	maxResponseBytes = 1<<20 + 1

	// maxLoggedBodyBytes caps how much of an unexpected response body lands
	// in the server logs.
	maxLoggedBodyBytes = 2 << 10
)

// Client fetches raw file content over HTTP. A personal access token is
// optional; when configured it is attached for elevated rate limits and
// private-repository access.
type Client struct {
	token  string
	http   *resty.Client
	logger zerolog.Logger
}

// NewClient builds a Client. An empty token means unauthenticated fetches.
func NewClient(token string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		token:  token,
		http:   resty.New().SetTimeout(timeout).SetDoNotParseResponse(true),
		logger: logger,
	}
}

// FetchRaw issues one GET against the raw-content URL. No retries are
// attempted; the outcome is mapped into the shared error taxonomy here, and
// response bodies on error paths are logged server-side only, never carried
// in the returned error.
func (c *Client) FetchRaw(ctx context.Context, url string) ([]byte, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", userAgent)
	if c.token != "" {
		req.SetHeader("Authorization", "token "+c.token)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, domain.UpstreamError(fmt.Sprintf("failed to fetch content from GitHub: %v", err), 0)
	}
	raw := resp.RawBody()
	defer raw.Close()

	body, err := io.ReadAll(io.LimitReader(raw, maxResponseBytes))
	if err != nil {
		return nil, domain.UpstreamError("reading GitHub response failed", 0)
	}

	switch code := resp.StatusCode(); {
	case code == 404:
		return nil, domain.NotFoundError("GitHub file not found; check the URL and file path")
	case code == 401 || code == 403:
		return nil, domain.AccessDeniedError("access denied to GitHub repository; check token permissions or repository visibility")
	case code >= 300:
		c.logger.Warn().
			Int("status", code).
			Str("url", url).
			Bytes("body", logBody(body)).
			Msg("unexpected GitHub response")
		return nil, domain.UpstreamError(fmt.Sprintf("GitHub returned status %d fetching the source file", code), code)
	}

	return body, nil
}

func logBody(b []byte) []byte {
	if len(b) > maxLoggedBodyBytes {
		return b[:maxLoggedBodyBytes]
	}
	return b
}
