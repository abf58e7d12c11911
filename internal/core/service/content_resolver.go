package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codexiq/review-api/internal/core/domain"
	"github.com/codexiq/review-api/internal/core/ports"
)

const (
	// maxInlineBytes caps pasted code; maxFetchBytes caps remote files. Both
	// exist to bound prompt size and memory per request.
	maxInlineBytes = 256 << 10
	maxFetchBytes  = 1 << 20
)

// ContentResolver produces the source text for a review request: inline code
// is passed through unchanged, a remote reference is rewritten to its
// raw-content form and fetched once via the content host.
type ContentResolver struct {
	host   ports.ContentHost
	logger zerolog.Logger
}

func NewContentResolver(host ports.ContentHost, logger zerolog.Logger) *ContentResolver {
	return &ContentResolver{host: host, logger: logger}
}

// Resolve returns the normalized source string for the request. It assumes
// the one-channel invariant has already been validated.
func (r *ContentResolver) Resolve(ctx context.Context, in domain.ReviewInput) (string, error) {
	if in.Code != "" {
		if len(in.Code) > maxInlineBytes {
			return "", domain.ValidationError("inline code exceeds the maximum reviewable size")
		}
		return in.Code, nil
	}

	rawURL, err := RawContentURL(in.SourceURL)
	if err != nil {
		return "", err
	}

	body, err := r.host.FetchRaw(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", domain.ValidationError("could not retrieve code from the provided source URL")
	}
	if len(body) > maxFetchBytes {
		return "", domain.ValidationError("remote file exceeds the maximum reviewable size")
	}

	r.logger.Debug().Str("url", rawURL).Int("bytes", len(body)).Msg("remote source fetched")
	return string(body), nil
}

// RawContentURL rewrites a browsable GitHub file URL into its raw-content
// equivalent. The transformation is deterministic and reversible: /blob/
// becomes /raw/, anything already in raw form passes through unchanged, and
// directory (/tree/) URLs are rejected before any network call.
func RawContentURL(url string) (string, error) {
	if strings.Contains(url, "/tree/") {
		return "", domain.ValidationError("directory references are not reviewable; supply a single-file reference")
	}
	if strings.Contains(url, "/blob/") {
		return strings.Replace(url, "/blob/", "/raw/", 1), nil
	}
	return url, nil
}
