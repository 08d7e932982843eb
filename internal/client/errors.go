package client

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/bissquit/incident-desk/internal/incidents"
)

// unreachableMessage is the generic warning shown for any transport failure.
// Transport problems are never reported as field errors.
const unreachableMessage = "Unable to reach the server. Please try again."

// ValidationError is returned when the local validation gate rejects input
// before any request is made.
type ValidationError struct {
	Violations incidents.Violations
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Violations))
	for k := range e.Violations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Violations[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// APIError is a failure reported by the server through the response envelope.
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// TransportError means the server could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return unreachableMessage
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
