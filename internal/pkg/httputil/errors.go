package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/bissquit/incident-desk/internal/pkg/ctxlog"
)

// ErrorMapping defines how a domain error maps to an HTTP response.
type ErrorMapping struct {
	Error   error
	Status  int
	Message string
}

// HandleError maps a domain error to an envelope response using the provided
// mappings. Unmapped errors are logged and answered with the fallback status
// and message so internals never leak to clients.
func HandleError(ctx context.Context, w http.ResponseWriter, err error, fallbackStatus int, fallbackMessage string, mappings ...ErrorMapping) {
	for _, m := range mappings {
		if errors.Is(err, m.Error) {
			Failure(w, m.Status, m.Message)
			return
		}
	}
	ctxlog.FromContext(ctx).Error("request failed", "error", err)
	Failure(w, fallbackStatus, fallbackMessage)
}
