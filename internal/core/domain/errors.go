package domain

import "net/http"

// ErrorKind classifies every failure the API can surface. Upstream failures
// are re-kinded at the call boundary; raw provider shapes never leave the
// infrastructure layer.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindConflict           ErrorKind = "conflict"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindNotFound           ErrorKind = "not_found"
	KindAccessDenied       ErrorKind = "access_denied"
	KindRateLimited        ErrorKind = "rate_limited"
	KindUpstream           ErrorKind = "upstream"
	KindServerConfig       ErrorKind = "server_config"
)

// Error is the single error type crossing service boundaries. Status is only
// set for upstream errors that should mirror the third party's status code.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// Is lets errors.Is match domain errors through wrapping. A target with a
// message matches exactly (sentinel comparison); a target with only a kind
// matches any error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// HTTPStatus maps the error kind to its response status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindConflict, KindInvalidCredentials:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindAccessDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUpstream:
		if e.Status >= 400 {
			return e.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Constructors for the common kinds.

func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func ConflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func UnauthorizedError(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func AccessDeniedError(msg string) *Error {
	return &Error{Kind: KindAccessDenied, Message: msg}
}

func RateLimitedError(msg string) *Error {
	return &Error{Kind: KindRateLimited, Message: msg}
}

// UpstreamError wraps a third-party failure. status may be zero when the
// failure was transport-level and no response was received.
func UpstreamError(msg string, status int) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Status: status}
}

func ServerConfigError(msg string) *Error {
	return &Error{Kind: KindServerConfig, Message: msg}
}

// Sentinels shared across the auth flow. Invalid credentials deliberately
// carries one fixed message for both unknown email and wrong password so the
// response never reveals whether an account exists.
var (
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrEmailExists        = &Error{Kind: KindConflict, Message: "user with this email already exists"}
	ErrUsernameExists     = &Error{Kind: KindConflict, Message: "user with this username already exists"}
)
