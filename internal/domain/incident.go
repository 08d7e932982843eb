package domain

import "time"

// IncidentStatus represents the lifecycle state of an incident.
type IncidentStatus string

// Incident statuses. The only transition is open -> closed.
const (
	IncidentStatusOpen   IncidentStatus = "open"
	IncidentStatusClosed IncidentStatus = "closed"
)

// IsValid checks if the incident status is valid.
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusClosed:
		return true
	}
	return false
}

// Incident represents a tracked operational event.
// JSON field names follow the public API contract (camelCase).
type Incident struct {
	ID                string         `json:"id"`
	Type              string         `json:"type"`
	IncidentStartDate time.Time      `json:"incidentStartDate"`
	IncidentEndDate   *time.Time     `json:"incidentEndDate,omitempty"`
	Description       string         `json:"description"`
	Remarks           string         `json:"remarks,omitempty"`
	Status            IncidentStatus `json:"status"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// IsClosed returns true if the incident has been closed.
func (i *Incident) IsClosed() bool {
	return i.Status == IncidentStatusClosed
}
