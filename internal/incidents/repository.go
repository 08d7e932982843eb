// Package incidents provides HTTP handlers and business logic for the
// incident lifecycle: create, read, update, close.
package incidents

import (
	"context"

	"github.com/bissquit/incident-desk/internal/domain"
)

// Repository defines the interface for incident storage.
// There is no delete: incidents are never removed.
type Repository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	List(ctx context.Context) ([]domain.Incident, error)
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	// Update persists all fields of the incident and refreshes its
	// updated_at timestamp.
	Update(ctx context.Context, incident *domain.Incident) error
}
