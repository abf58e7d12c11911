package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/codexiq/review-api/internal/api/middleware"
	"github.com/codexiq/review-api/internal/core/domain"
)

type stubReviewService struct {
	gotInput domain.ReviewInput
	called   bool
	review   string
	err      error
}

func (s *stubReviewService) Review(_ context.Context, in domain.ReviewInput) (string, error) {
	s.called = true
	s.gotInput = in
	return s.review, s.err
}

func newReviewContext(t *testing.T, body string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set(middleware.ContextUserID, "user-1")
	}
	return c, rec
}

func TestReviewHandler_Code_Success(t *testing.T) {
	stub := &stubReviewService{review: "1. [Style] Line 1: looks fine."}
	h := NewReviewHandler(stub)

	c, rec := newReviewContext(t, `{"code":"x := 1","language":"go"}`, true)
	if err := h.ReviewCode(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if stub.gotInput.Code != "x := 1" || stub.gotInput.Language != "go" || stub.gotInput.SourceURL != "" {
		t.Fatalf("unexpected input: %+v", stub.gotInput)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["review"] != stub.review {
		t.Fatalf("expected review payload, got %+v", resp)
	}
}

func TestReviewHandler_Code_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty code", `{"code":"","language":"go"}`},
		{"empty language", `{"code":"x := 1","language":""}`},
		{"both empty", `{"code":"","language":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubReviewService{}
			h := NewReviewHandler(stub)

			c, _ := newReviewContext(t, tt.body, true)
			err := h.ReviewCode(c)

			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
			if stub.called {
				t.Fatalf("service must not run for invalid input")
			}
		})
	}
}

func TestReviewHandler_Remote_Success(t *testing.T) {
	stub := &stubReviewService{review: "looks good"}
	h := NewReviewHandler(stub)

	c, rec := newReviewContext(t, `{"source_url":"https://github.com/a/b/blob/main/c.go","language":"go"}`, true)
	if err := h.ReviewRemote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotInput.SourceURL == "" || stub.gotInput.Code != "" {
		t.Fatalf("unexpected input: %+v", stub.gotInput)
	}
}

func TestReviewHandler_Remote_InvalidURL(t *testing.T) {
	stub := &stubReviewService{}
	h := NewReviewHandler(stub)

	c, _ := newReviewContext(t, `{"source_url":"not a url","language":"go"}`, true)
	err := h.ReviewRemote(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if stub.called {
		t.Fatalf("service must not run for invalid input")
	}
}

func TestReviewHandler_ServiceErrorsPropagate(t *testing.T) {
	stub := &stubReviewService{err: domain.RateLimitedError("review rate limit exceeded")}
	h := NewReviewHandler(stub)

	c, _ := newReviewContext(t, `{"code":"x","language":"go"}`, true)
	err := h.ReviewCode(c)

	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindRateLimited {
		t.Fatalf("expected rate limited error to propagate, got %v", err)
	}
}

func TestReviewHandler_RequiresAuthContext(t *testing.T) {
	stub := &stubReviewService{}
	h := NewReviewHandler(stub)

	c, _ := newReviewContext(t, `{"code":"x","language":"go"}`, false)
	err := h.ReviewCode(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth context, got %v", err)
	}
	if stub.called {
		t.Fatalf("service must not run without an authenticated subject")
	}
}
