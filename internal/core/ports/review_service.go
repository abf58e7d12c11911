package ports

import (
	"context"

	"github.com/codexiq/review-api/internal/core/domain"
)

// ReviewService produces a review for a single request. The returned text is
// the completion provider's output verbatim; no post-processing is applied.
type ReviewService interface {
	Review(ctx context.Context, in domain.ReviewInput) (string, error)
}

// ContentResolver turns a review request into a single source-code string:
// a passthrough for inline code, a fetch-and-translate for a remote
// reference.
type ContentResolver interface {
	Resolve(ctx context.Context, in domain.ReviewInput) (string, error)
}
