package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type reviewCodeRequest struct {
	Code     string `json:"code"     validate:"required"`
	Language string `json:"language" validate:"required"`
}

type reviewRemoteRequest struct {
	SourceURL string `json:"source_url" validate:"required,url"`
	Language  string `json:"language"   validate:"required"`
}

type reviewResponse struct {
	Review string `json:"review"`
}
