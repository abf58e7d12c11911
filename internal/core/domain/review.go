package domain

// ReviewInput carries a single review request through the pipeline. Exactly
// one of Code or SourceURL must be set; Language is mandatory and frames the
// review prompt. Requests are never persisted.
type ReviewInput struct {
	Code      string
	SourceURL string
	Language  string
}

// Validate enforces the one-channel invariant before any network call.
func (in ReviewInput) Validate() error {
	if in.Language == "" {
		return ValidationError("programming language must be specified")
	}
	if in.Code == "" && in.SourceURL == "" {
		return ValidationError("either code or a source URL is required for review")
	}
	if in.Code != "" && in.SourceURL != "" {
		return ValidationError("supply code or a source URL, not both")
	}
	return nil
}
