package backend

import "errors"

// Errors mapped from backend HTTP status codes by mapHTTPError.
var (
	ErrBadRequest   = errors.New("backend bad request")
	ErrUnauthorized = errors.New("backend unauthorized")
	ErrForbidden    = errors.New("backend forbidden")
	ErrNotFound     = errors.New("backend resource not found")
	ErrServerError  = errors.New("backend server error")
)

// ErrDecode is returned when a successful response body does not match the
// destination type.
var ErrDecode = errors.New("backend response decode failed")

// Construction and auth errors.
var (
	ErrInvalidURL               = errors.New("invalid backend url")
	ErrInvalidAnonKey           = errors.New("invalid anon key")
	ErrNoSession                = errors.New("no active session")
	ErrNoRefreshToken           = errors.New("session has no refresh token")
	ErrSessionDetectionDisabled = errors.New("session detection from url is disabled")
	ErrRealtimeDisabled         = errors.New("realtime subscriptions are disabled")
)
