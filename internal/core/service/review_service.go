package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/codexiq/review-api/internal/core/domain"
	"github.com/codexiq/review-api/internal/core/ports"
)

const (
	defaultMaxTokens   = 1500
	defaultTemperature = 0.1
)

// ReviewOptions tunes the single completion call per review. A nil
// Temperature selects the default; an explicit zero is a valid, fully
// deterministic setting.
type ReviewOptions struct {
	MaxTokens   int
	Temperature *float64
}

// ReviewService orchestrates a review request: validate, resolve source,
// build the prompt, invoke the completion provider exactly once, and return
// its output verbatim. Requests are independent; nothing is cached or
// shared between them.
type ReviewService struct {
	resolver ports.ContentResolver
	provider ports.CompletionProvider
	opts     ReviewOptions
	logger   zerolog.Logger
}

func NewReviewService(resolver ports.ContentResolver, provider ports.CompletionProvider, opts ReviewOptions, logger zerolog.Logger) *ReviewService {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Temperature == nil {
		t := defaultTemperature
		opts.Temperature = &t
	}
	return &ReviewService{resolver: resolver, provider: provider, opts: opts, logger: logger}
}

// Review produces a review for the request, or a domain error. Validation
// failures are reported before any upstream call is attempted. The provider
// output is returned unmodified and unparsed; any structure guarantees come
// from the prompt alone.
func (s *ReviewService) Review(ctx context.Context, in domain.ReviewInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	code, err := s.resolver.Resolve(ctx, in)
	if err != nil {
		return "", err
	}

	start := time.Now()
	review, err := s.provider.Complete(ctx, ports.CompletionRequest{
		SystemPrompt: SystemPrompt(in.Language),
		UserPrompt:   BuildUserPrompt(in.Language, code),
		MaxTokens:    s.opts.MaxTokens,
		Temperature:  *s.opts.Temperature,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("language", in.Language).Msg("completion provider call failed")
		return "", err
	}

	s.logger.Info().
		Str("language", in.Language).
		Int("review_bytes", len(review)).
		Dur("provider_latency", time.Since(start)).
		Msg("review completed")
	return review, nil
}
