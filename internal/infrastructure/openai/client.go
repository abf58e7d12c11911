// Package openai implements the CompletionProvider port against OpenAI's
// chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/codexiq/review-api/internal/core/domain"
	"github.com/codexiq/review-api/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-3.5-turbo"
	defaultTimeout = 120 * time.Second

	// maxLoggedBodyBytes caps how much of an unrecognized error body lands in
	// the server logs.
	maxLoggedBodyBytes = 2 << 10
)

// Client calls the chat completions endpoint. One request per Complete call,
// no retries; failures are re-kinded into domain errors at this boundary.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// Config holds the provider credentials and tunables, passed in explicitly
// at construction.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger,
	}
}

func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", domain.UpstreamError(fmt.Sprintf("failed to reach completion provider: %v", err), 0)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", domain.UpstreamError(fmt.Sprintf("reading provider response: %v", err), 0)
	}

	if err := c.triageStatus(httpResp.StatusCode, respBody); err != nil {
		return "", err
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", domain.UpstreamError("completion provider returned an unparseable response", httpResp.StatusCode)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", domain.UpstreamError("completion provider returned no content", httpResp.StatusCode)
	}

	return result.Choices[0].Message.Content, nil
}

// triageStatus maps provider status codes into the shared taxonomy. 401/403
// become Unauthorized, a credential failure distinct in message but not in
// kind from a rejected session token. Bodies without a structured error
// message are logged server-side only; the client sees just the status.
func (c *Client) triageStatus(code int, body []byte) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return domain.UnauthorizedError("completion provider API key unauthorized or invalid")
	case code == http.StatusTooManyRequests:
		return domain.RateLimitedError("completion provider rate limit exceeded or out of credits")
	default:
		if msg, ok := upstreamMessage(body); ok {
			return domain.UpstreamError(fmt.Sprintf("completion provider error: %s", msg), code)
		}
		c.logger.Warn().
			Int("status", code).
			Bytes("body", logBody(body)).
			Msg("completion provider returned an unrecognized error body")
		return domain.UpstreamError(fmt.Sprintf("completion provider returned status %d", code), code)
	}
}

// upstreamMessage extracts the provider's structured error message. Raw
// bodies are never used as messages; they can carry upstream internals.
func upstreamMessage(body []byte) (string, bool) {
	var e chatErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message, true
	}
	return "", false
}

func logBody(b []byte) []byte {
	if len(b) > maxLoggedBodyBytes {
		return b[:maxLoggedBodyBytes]
	}
	return b
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
