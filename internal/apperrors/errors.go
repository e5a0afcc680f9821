package apperrors

import (
	"errors"
	"fmt"
)

// ErrNetwork indicates a connection-level failure (DNS resolution, connection
// reset, request timeout) where no HTTP response was received.
var ErrNetwork = errors.New("network error")

// ErrRateLookup indicates that a rate table could not be obtained for a date.
var ErrRateLookup = errors.New("rate lookup failed")

// ErrMissingRate indicates that the target currency is absent from an
// otherwise valid rate table.
var ErrMissingRate = errors.New("missing exchange rate")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// HTTPError is returned when the remote service answered with a non-2xx
// status. It carries the response body so callers can distinguish an
// application-reported failure from an infrastructure one.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d: %s", e.StatusCode, e.Body)
}

// SubmissionError is returned when the transaction service accepted the POST
// but reported that it failed to process some of the submitted transactions.
type SubmissionError struct {
	Failed int
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("transaction service failed to process %d transactions", e.Failed)
}
