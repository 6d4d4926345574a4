package llm

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrRateLimit is returned when the backend answers 429. RetryAfter is
// zero unless the backend said how long to wait.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("mentor backend rate limited, retry in %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("mentor backend rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrRequestRejected covers 4xx answers other than 429: a bad key, an
// unknown model, a malformed request. Sending it again gives the same answer.
type ErrRequestRejected struct {
	Status int
	Err    error
}

func (e *ErrRequestRejected) Error() string {
	return fmt.Sprintf("mentor backend rejected request (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrRequestRejected) Unwrap() error { return e.Err }

// ErrInvalidResponse means the backend answered but returned no prose.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("mentor backend returned no text: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable means the backend could not be reached or failed
// on its side.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "mentor backend unavailable"
	}
	return fmt.Sprintf("mentor backend unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded carries the partial prose of a response that ran
// into the token limit. The mentor still shows it.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("mentor response cut at token limit after %d bytes", len(e.Text))
}

// classifyStatus turns an SDK failure carrying an HTTP status into one of
// the errors above. Status 0 means no answer arrived at all.
func classifyStatus(status int, retryAfter time.Duration, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{RetryAfter: retryAfter, Err: err}
	case status >= 400 && status < 500:
		return &ErrRequestRejected{Status: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// parseRetryAfter reads a Retry-After header given in seconds. HTTP dates
// and garbage yield zero.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(h.Get("Retry-After")))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
