// Package postgres provides the PostgreSQL implementation of the incidents
// repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bissquit/incident-desk/internal/domain"
	"github.com/bissquit/incident-desk/internal/incidents"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements incidents.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new incident. The id is assigned here; created_at and
// updated_at come from the database clock.
func (r *Repository) Create(ctx context.Context, incident *domain.Incident) error {
	incident.ID = uuid.NewString()

	query := `
		INSERT INTO incidents (id, type, incident_start_date, incident_end_date, description, remarks, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		incident.ID,
		incident.Type,
		incident.IncidentStartDate,
		incident.IncidentEndDate,
		incident.Description,
		incident.Remarks,
		incident.Status,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create incident: %w", err)
	}
	return nil
}

// List returns all incidents sorted newest first by created_at. The id
// tiebreak keeps the order deterministic for equal timestamps.
func (r *Repository) List(ctx context.Context) ([]domain.Incident, error) {
	query := `
		SELECT id, type, incident_start_date, incident_end_date, description, remarks, status, created_at, updated_at
		FROM incidents
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Incident, 0)
	for rows.Next() {
		var incident domain.Incident
		if err := rows.Scan(
			&incident.ID,
			&incident.Type,
			&incident.IncidentStartDate,
			&incident.IncidentEndDate,
			&incident.Description,
			&incident.Remarks,
			&incident.Status,
			&incident.CreatedAt,
			&incident.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		result = append(result, incident)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incidents: %w", err)
	}
	return result, nil
}

// GetByID retrieves a single incident by its id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	query := `
		SELECT id, type, incident_start_date, incident_end_date, description, remarks, status, created_at, updated_at
		FROM incidents
		WHERE id = $1
	`
	var incident domain.Incident
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Type,
		&incident.IncidentStartDate,
		&incident.IncidentEndDate,
		&incident.Description,
		&incident.Remarks,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, incidents.ErrNotFound
		}
		return nil, fmt.Errorf("get incident by id: %w", err)
	}
	return &incident, nil
}

// Update persists all fields of the incident. updated_at is refreshed from
// the database clock and scanned back into the record.
func (r *Repository) Update(ctx context.Context, incident *domain.Incident) error {
	query := `
		UPDATE incidents
		SET type = $2,
		    incident_start_date = $3,
		    incident_end_date = $4,
		    description = $5,
		    remarks = $6,
		    status = $7,
		    updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		incident.ID,
		incident.Type,
		incident.IncidentStartDate,
		incident.IncidentEndDate,
		incident.Description,
		incident.Remarks,
		incident.Status,
	).Scan(&incident.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return incidents.ErrNotFound
		}
		return fmt.Errorf("update incident: %w", err)
	}
	return nil
}
