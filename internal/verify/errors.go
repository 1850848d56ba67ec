package verify

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures detected before any document processing.
var (
	ErrInvalidRequest       = errors.New("both claimed names are required")
	ErrUnsupportedMediaType = errors.New("unsupported media type for lease verification")
	ErrStorageUnavailable   = errors.New("transient document storage unavailable")
)

// ExtractionError indicates a supported document could not be parsed. The
// underlying parser error is preserved for diagnostics.
type ExtractionError struct {
	MediaType string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %s document: %v", e.MediaType, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// TransportError indicates the understanding service could not be reached:
// connection, DNS, or timeout failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("understanding service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError indicates the understanding service replied with a non-success
// status. The response body is kept for diagnostics but not interpreted.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("understanding service error (status %d): %s", e.StatusCode, truncate(e.Body, 500))
}

// MalformedAssessmentError indicates the service reply did not contain a
// decodable assessment record. Raw carries the reply for debugging; the
// pipeline never substitutes defaults for missing fields.
type MalformedAssessmentError struct {
	Raw string
	Err error
}

func (e *MalformedAssessmentError) Error() string {
	return fmt.Sprintf("malformed assessment: %v (raw: %s)", e.Err, truncate(e.Raw, 500))
}

func (e *MalformedAssessmentError) Unwrap() error {
	return e.Err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
