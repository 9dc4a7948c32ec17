package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the user identity is empty.
var ErrInvalidInput = errors.New("user identity cannot be empty")

// ErrorKind classifies an APIError.
type ErrorKind int

const (
	NotFound ErrorKind = iota + 1
	RateLimited
)

// Sentinels for errors.Is matching against an *APIError of the same kind.
var (
	ErrNotFound    = &APIError{Kind: NotFound}
	ErrRateLimited = &APIError{Kind: RateLimited}
)

// APIError is a fatal error status returned by the repository listing endpoint.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Identity   string
}

func (e *APIError) Error() string {
	switch e.Kind {
	case NotFound:
		return fmt.Sprintf("%d: user %q not found", e.StatusCode, e.Identity)
	case RateLimited:
		return fmt.Sprintf("%d: rate limit exceeded for user %q", e.StatusCode, e.Identity)
	default:
		return fmt.Sprintf("%d: unexpected API error for user %q", e.StatusCode, e.Identity)
	}
}

// Is reports whether target is an *APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}
