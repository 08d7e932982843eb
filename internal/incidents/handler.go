package incidents

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bissquit/incident-desk/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the incidents module.
type Handler struct {
	service *Service
}

// NewHandler creates a new incidents handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all incident routes. PUT and PATCH share the same
// update handler; the partial semantics come from which fields the body
// carries, not from the method.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.Update)
	r.Patch("/{id}/close", h.Close)
}

// CloseIncidentRequest represents the optional body of a close request.
type CloseIncidentRequest struct {
	IncidentEndDate *DateTime `json:"incidentEndDate"`
}

// Create handles POST / requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIncidentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Failure(w, http.StatusBadRequest, "Failed to create incident")
		return
	}

	if violations := ValidateCreate(req); len(violations) > 0 {
		httputil.ValidationFailure(w, violations)
		return
	}

	incident, err := h.service.Create(r.Context(), req)
	if err != nil {
		httputil.HandleError(r.Context(), w, err,
			http.StatusBadRequest, "Failed to create incident")
		return
	}

	httputil.Success(w, http.StatusCreated, incident)
}

// List handles GET / requests. An empty store is a success with an empty
// list, not an error.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.service.List(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err,
			http.StatusInternalServerError, "Failed to fetch incidents")
		return
	}

	httputil.Success(w, http.StatusOK, incidents)
}

// Get handles GET /{id} requests.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	incident, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err,
			http.StatusInternalServerError, "Failed to fetch incident",
			notFoundMapping)
		return
	}

	httputil.Success(w, http.StatusOK, incident)
}

// Update handles PUT /{id} and PATCH /{id} requests. Only fields present in
// the body are validated and applied.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateIncidentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Failure(w, http.StatusBadRequest, "Failed to update incident")
		return
	}

	if violations := ValidateUpdate(req); len(violations) > 0 {
		httputil.ValidationFailure(w, violations)
		return
	}

	incident, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httputil.HandleError(r.Context(), w, err,
			http.StatusBadRequest, "Failed to update incident",
			notFoundMapping)
		return
	}

	httputil.SuccessMessage(w, http.StatusOK, "Incident updated", incident)
}

// Close handles PATCH /{id}/close requests. The body is optional; when it
// carries an end date that value is used, otherwise the close time is now.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CloseIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.Failure(w, http.StatusBadRequest, "Failed to close incident")
		return
	}

	var endDate *time.Time
	if req.IncidentEndDate != nil {
		endDate = &req.IncidentEndDate.Time
	}

	incident, err := h.service.Close(r.Context(), id, endDate)
	if err != nil {
		httputil.HandleError(r.Context(), w, err,
			http.StatusBadRequest, "Failed to close incident",
			notFoundMapping)
		return
	}

	httputil.SuccessMessage(w, http.StatusOK, "Incident closed", incident)
}

var notFoundMapping = httputil.ErrorMapping{
	Error:   ErrNotFound,
	Status:  http.StatusNotFound,
	Message: "Incident not found",
}
