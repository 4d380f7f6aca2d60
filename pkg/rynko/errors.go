package rynko

import (
	"fmt"
	"time"
)

// APIError is a structured error returned by the Rynko API for a non-2xx
// response. Code is empty when the server did not supply one.
type APIError struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("rynko: %s (code=%s, status=%d)", e.Message, e.Code, e.StatusCode)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("rynko: %s (status=%d)", e.Message, e.StatusCode)
	}
	return "rynko: " + e.Message
}

// TransportError wraps a network-level failure (connection reset, DNS,
// timeout) that produced no HTTP status. Transport errors are never
// retried; only status-code-driven retries are supported.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "rynko: request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PollTimeoutError is raised when a job or batch does not reach a terminal
// status before the poll deadline elapses. It is distinct from an APIError:
// a mid-poll fetch failure propagates as-is and never converts into one of
// these.
type PollTimeoutError struct {
	// Kind is "job" or "batch".
	Kind string

	// ID identifies the unit of work that timed out.
	ID string

	// Timeout is the wall-clock deadline that was exceeded.
	Timeout time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("rynko: timeout waiting for %s %s to complete after %s", e.Kind, e.ID, e.Timeout)
}
