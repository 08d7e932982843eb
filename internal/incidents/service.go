package incidents

import (
	"context"
	"fmt"
	"time"

	"github.com/bissquit/incident-desk/internal/domain"
	"github.com/bissquit/incident-desk/internal/pkg/metrics"
)

// Service implements incident business logic.
type Service struct {
	repo Repository
}

// NewService creates a new incident service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateIncidentInput holds data for creating an incident. Start and end
// dates are pointers so the validation gate can distinguish absent fields.
type CreateIncidentInput struct {
	Type              string    `json:"type"`
	IncidentStartDate *DateTime `json:"incidentStartDate"`
	IncidentEndDate   *DateTime `json:"incidentEndDate"`
	Description       string    `json:"description"`
	Remarks           string    `json:"remarks"`
}

// UpdateIncidentInput holds data for a full or partial update. Only non-nil
// fields are applied to the record; everything else stays untouched.
type UpdateIncidentInput struct {
	Type              *string                `json:"type"`
	IncidentStartDate *DateTime              `json:"incidentStartDate"`
	IncidentEndDate   *DateTime              `json:"incidentEndDate"`
	Description       *string                `json:"description"`
	Remarks           *string                `json:"remarks"`
	Status            *domain.IncidentStatus `json:"status"`
}

// Create persists a new incident with defaults applied: status is always
// open, timestamps are assigned by the store.
func (s *Service) Create(ctx context.Context, input CreateIncidentInput) (*domain.Incident, error) {
	incident := &domain.Incident{
		Type:              input.Type,
		IncidentStartDate: input.IncidentStartDate.Time,
		Description:       input.Description,
		Remarks:           input.Remarks,
		Status:            domain.IncidentStatusOpen,
	}
	if input.IncidentEndDate != nil {
		end := input.IncidentEndDate.Time
		incident.IncidentEndDate = &end
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("create incident: %w", err)
	}

	metrics.IncidentOperations.WithLabelValues("create").Inc()
	return incident, nil
}

// List returns all incidents, newest first. An empty store yields an empty
// slice, not an error.
func (s *Service) List(ctx context.Context) ([]domain.Incident, error) {
	incidents, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return incidents, nil
}

// Get returns a single incident by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Incident, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the provided fields to an existing incident and persists it.
// Fields absent from the input are left as they are. Updating a closed
// incident is allowed; concurrent writers are last-write-wins.
func (s *Service) Update(ctx context.Context, id string, input UpdateIncidentInput) (*domain.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		incident.Type = *input.Type
	}
	if input.IncidentStartDate != nil {
		incident.IncidentStartDate = input.IncidentStartDate.Time
	}
	if input.IncidentEndDate != nil {
		end := input.IncidentEndDate.Time
		incident.IncidentEndDate = &end
	}
	if input.Description != nil {
		incident.Description = *input.Description
	}
	if input.Remarks != nil {
		incident.Remarks = *input.Remarks
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *input.Status)
		}
		incident.Status = *input.Status
	}

	if err := s.repo.Update(ctx, incident); err != nil {
		return nil, fmt.Errorf("update incident: %w", err)
	}

	metrics.IncidentOperations.WithLabelValues("update").Inc()
	return incident, nil
}

// Close marks an incident as closed. The end date is taken from the caller
// when provided, otherwise the current time. No field validation applies
// beyond the id existing; closing an already-closed incident simply
// overwrites the end date.
func (s *Service) Close(ctx context.Context, id string, endDate *time.Time) (*domain.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	end := time.Now().UTC()
	if endDate != nil {
		end = *endDate
	}

	incident.Status = domain.IncidentStatusClosed
	incident.IncidentEndDate = &end

	if err := s.repo.Update(ctx, incident); err != nil {
		return nil, fmt.Errorf("close incident: %w", err)
	}

	metrics.IncidentOperations.WithLabelValues("close").Inc()
	return incident, nil
}
