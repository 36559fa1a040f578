package entity

import (
	"fmt"
	"net/http"
)

// MissingFieldError reports a required trip field that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%q is a required field", e.Field)
}

type InvalidFieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// MalformedResponseError means the provider payload could not be decoded or
// did not have the expected shape. No partial results accompany it.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return "malformed provider response: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed provider response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

type LookupError struct {
	Code string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("airport %q not found", e.Code)
}

type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}
