package api

import (
	"encoding/json"
	"fmt"
)

// StatusError indicates the server answered with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// ErrInvalidPayload indicates a response body that does not conform to the
// endpoint's schema. Malformed payloads are rejected here, at the boundary,
// instead of flowing inward as loose maps.
type ErrInvalidPayload struct {
	Endpoint string
	Content  json.RawMessage
	Err      error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Endpoint, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
