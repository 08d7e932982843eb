// Package httputil provides the response envelope and HTTP middleware shared
// by all API handlers.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response wrapper used by every API endpoint.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes {"success": true, "data": ...}.
func Success(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, Envelope{Success: true, Data: data})
}

// SuccessMessage writes {"success": true, "message": ..., "data": ...}.
func SuccessMessage(w http.ResponseWriter, status int, message string, data any) {
	writeEnvelope(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Failure writes {"success": false, "message": ...}.
func Failure(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, Envelope{Success: false, Message: message})
}

// ValidationFailure writes a 400 response carrying the accumulated
// field -> message violations.
func ValidationFailure(w http.ResponseWriter, violations map[string]string) {
	writeEnvelope(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation errors",
		Errors:  violations,
	})
}

// Text writes a plain text response.
func Text(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// JSON writes a raw JSON response without envelope. Used for endpoints
// outside the API surface (version, docs).
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}
