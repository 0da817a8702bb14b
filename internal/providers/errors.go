package providers

import (
	"errors"
	"fmt"
)

// UpstreamError indicates the schedule/detail API returned a non-success
// status or a malformed payload. Always recoverable: callers skip the cycle
// and retry on the next one.
type UpstreamError struct {
	Provider   string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Endpoint, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s unavailable", e.Provider, e.Endpoint)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
