package incidents

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bissquit/incident-desk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	incidents map[string]*domain.Incident
	order     []string
	createErr error
	listErr   error
	updateErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		incidents: make(map[string]*domain.Incident),
	}
}

func (m *mockRepository) Create(_ context.Context, incident *domain.Incident) error {
	if m.createErr != nil {
		return m.createErr
	}
	incident.ID = fmt.Sprintf("inc-%d", len(m.order)+1)
	now := time.Now().UTC()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	copied := *incident
	m.incidents[incident.ID] = &copied
	m.order = append(m.order, incident.ID)
	return nil
}

func (m *mockRepository) List(_ context.Context) ([]domain.Incident, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	// Newest first, like the real store.
	result := make([]domain.Incident, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		result = append(result, *m.incidents[m.order[i]])
	}
	return result, nil
}

func (m *mockRepository) GetByID(_ context.Context, id string) (*domain.Incident, error) {
	incident, ok := m.incidents[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *incident
	return &copied, nil
}

func (m *mockRepository) Update(_ context.Context, incident *domain.Incident) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.incidents[incident.ID]; !ok {
		return ErrNotFound
	}
	incident.UpdatedAt = time.Now().UTC()
	copied := *incident
	m.incidents[incident.ID] = &copied
	return nil
}

func seedIncident(t *testing.T, repo *mockRepository) *domain.Incident {
	t.Helper()
	incident := &domain.Incident{
		Type:              "outage",
		IncidentStartDate: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Description:       "api down",
		Status:            domain.IncidentStatusOpen,
	}
	require.NoError(t, repo.Create(context.Background(), incident))
	return incident
}

func TestCreate_StatusIsAlwaysOpen(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	incident, err := service.Create(context.Background(), CreateIncidentInput{
		Type:              "outage",
		IncidentStartDate: dt(t, "2025-01-15T10:00:00Z"),
		Description:       "api down",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.IncidentStatusOpen, incident.Status)
	assert.NotEmpty(t, incident.ID)
	assert.False(t, incident.CreatedAt.IsZero())
}

func TestCreate_CarriesOptionalFields(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	incident, err := service.Create(context.Background(), CreateIncidentInput{
		Type:              "maintenance",
		IncidentStartDate: dt(t, "2025-01-15T10:00:00Z"),
		IncidentEndDate:   dt(t, "2025-01-15T12:00:00Z"),
		Description:       "planned window",
		Remarks:           "approved by ops",
	})

	require.NoError(t, err)
	require.NotNil(t, incident.IncidentEndDate)
	assert.Equal(t, time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), *incident.IncidentEndDate)
	assert.Equal(t, "approved by ops", incident.Remarks)
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := newMockRepository()
	repo.createErr = errors.New("database error")
	service := NewService(repo)

	incident, err := service.Create(context.Background(), CreateIncidentInput{
		Type:              "outage",
		IncidentStartDate: dt(t, "2025-01-15"),
		Description:       "api down",
	})

	assert.Nil(t, incident)
	assert.Error(t, err)
}

func TestList_NewestFirst(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	first := seedIncident(t, repo)
	second := seedIncident(t, repo)

	incidents, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, second.ID, incidents[0].ID)
	assert.Equal(t, first.ID, incidents[1].ID)
}

func TestList_EmptyStore(t *testing.T) {
	service := NewService(newMockRepository())

	incidents, err := service.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, incidents)
	assert.Empty(t, incidents)
}

func TestGet_NotFound(t *testing.T) {
	service := NewService(newMockRepository())

	incident, err := service.Get(context.Background(), "missing")

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_OnlyProvidedFieldsChange(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	seeded := seedIncident(t, repo)

	updated, err := service.Update(context.Background(), seeded.ID, UpdateIncidentInput{
		Remarks: strPtr("root cause identified"),
	})

	require.NoError(t, err)
	assert.Equal(t, "root cause identified", updated.Remarks)
	// Everything else survives the partial update.
	assert.Equal(t, seeded.Type, updated.Type)
	assert.Equal(t, seeded.Description, updated.Description)
	assert.Equal(t, seeded.IncidentStartDate, updated.IncidentStartDate)
	assert.Equal(t, seeded.Status, updated.Status)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	seeded := seedIncident(t, repo)

	bad := domain.IncidentStatus("resolved")
	updated, err := service.Update(context.Background(), seeded.ID, UpdateIncidentInput{
		Status: &bad,
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate_NotFound(t *testing.T) {
	service := NewService(newMockRepository())

	updated, err := service.Update(context.Background(), "missing", UpdateIncidentInput{
		Remarks: strPtr("x"),
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_ClosedIncidentIsStillWritable(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	seeded := seedIncident(t, repo)
	_, err := service.Close(context.Background(), seeded.ID, nil)
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), seeded.ID, UpdateIncidentInput{
		Description: strPtr("postmortem written"),
	})

	require.NoError(t, err)
	assert.Equal(t, "postmortem written", updated.Description)
	assert.Equal(t, domain.IncidentStatusClosed, updated.Status)
}

func TestClose_DefaultsEndDateToNow(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	seeded := seedIncident(t, repo)

	before := time.Now().UTC()
	closed, err := service.Close(context.Background(), seeded.ID, nil)
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.Equal(t, domain.IncidentStatusClosed, closed.Status)
	require.NotNil(t, closed.IncidentEndDate)
	assert.False(t, closed.IncidentEndDate.Before(before))
	assert.False(t, closed.IncidentEndDate.After(after))
}

func TestClose_UsesCallerEndDate(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	seeded := seedIncident(t, repo)

	end := time.Date(2025, 1, 16, 8, 0, 0, 0, time.UTC)
	closed, err := service.Close(context.Background(), seeded.ID, &end)

	require.NoError(t, err)
	require.NotNil(t, closed.IncidentEndDate)
	assert.Equal(t, end, *closed.IncidentEndDate)
}

func TestClose_ReCloseOverwritesEndDate(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	seeded := seedIncident(t, repo)

	first := time.Date(2025, 1, 16, 8, 0, 0, 0, time.UTC)
	_, err := service.Close(context.Background(), seeded.ID, &first)
	require.NoError(t, err)

	second := time.Date(2025, 1, 17, 8, 0, 0, 0, time.UTC)
	closed, err := service.Close(context.Background(), seeded.ID, &second)

	require.NoError(t, err)
	require.NotNil(t, closed.IncidentEndDate)
	assert.Equal(t, second, *closed.IncidentEndDate)
	assert.Equal(t, domain.IncidentStatusClosed, closed.Status)
}

func TestClose_NotFound(t *testing.T) {
	service := NewService(newMockRepository())

	closed, err := service.Close(context.Background(), "missing", nil)

	assert.Nil(t, closed)
	assert.ErrorIs(t, err, ErrNotFound)
}
