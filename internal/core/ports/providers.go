package ports

import "context"

// CompletionRequest is the provider-neutral shape of a single completion
// call. MaxTokens bounds the output length; Temperature is the resolved
// sampling temperature, where zero is valid and fully deterministic.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// CompletionProvider is the external language-model service producing review
// text. Implementations issue exactly one synchronous call per request, with
// no retries and no caching, and translate provider failures into domain
// errors at the call boundary.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ContentHost fetches a file's literal byte content from a raw-content URL.
// One production implementation (GitHub) and deterministic test doubles
// satisfy it.
type ContentHost interface {
	FetchRaw(ctx context.Context, url string) ([]byte, error)
}
