package generator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable covers transport failures, timeouts, rate limits and non-2xx replies.
	ErrUnavailable = errors.New("generator unavailable")
	// ErrMalformedResponse covers empty, unparseable or schema-invalid replies.
	ErrMalformedResponse = errors.New("generator response malformed")
)

// HTTPError is a non-2xx reply from an HTTP backend.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("generator http %d: %s", e.StatusCode, e.Body)
}

// classify makes sure err carries one of the two error kinds.
// Errors that carry neither are treated as unavailability.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrMalformedResponse) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

func isRateLimited(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == 429 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
