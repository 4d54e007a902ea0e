package source

import (
	"errors"
	"fmt"
	"net/http"
)

// Outcome kinds for a single term fetch. Adapters map provider responses to
// these; the orchestrator and adapters key their recovery on errors.Is.
var (
	// ErrRateLimited means the provider signalled quota exhaustion. The
	// adapter trips its breaker and aborts the remaining tuples.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnsupportedCountry means the provider rejected the country. The
	// country is skipped for this source only, without penalty.
	ErrUnsupportedCountry = errors.New("unsupported country")

	// ErrTimeout means the connect or read deadline elapsed. The term is
	// skipped; the source stays healthy.
	ErrTimeout = errors.New("timeout")

	// ErrTransient means a 5xx response. One cheap retry is allowed.
	ErrTransient = errors.New("transient server error")

	// ErrProtocol means an unexpected non-200 response.
	ErrProtocol = errors.New("protocol error")
)

// StatusError maps an HTTP status outside 200 to the matching error kind.
// The status stays on the error so adapters can refine the generic kinds
// into provider-specific outcomes.
func StatusError(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusTooManyRequests:
		return &statusError{status, ErrRateLimited}
	case status >= 500:
		return &statusError{status, ErrTransient}
	default:
		return &statusError{status, ErrProtocol}
	}
}

type statusError struct {
	status int
	kind   error
}

func (e *statusError) Error() string { return fmt.Sprintf("status %d: %v", e.status, e.kind) }
func (e *statusError) Unwrap() error { return e.kind }

// HTTPStatus extracts the response status carried by a StatusError, or 0
// when the error did not come from a status mapping.
func HTTPStatus(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	return 0
}
