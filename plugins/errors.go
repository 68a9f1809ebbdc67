package plugins

import (
	"errors"
	"fmt"
)

// UpstreamError is a genuine provider failure (non-2xx, network error,
// malformed payload) carrying the upstream message. It surfaces as a soft
// error on the failing call and never crashes the process.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s provider error (status %d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

// Upstreamf builds an UpstreamError without an HTTP status
func Upstreamf(provider, format string, args ...interface{}) error {
	return &UpstreamError{Provider: provider, Message: fmt.Sprintf(format, args...)}
}

// IsUpstream reports whether err is (or wraps) an UpstreamError
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
