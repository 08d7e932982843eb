package client

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bissquit/incident-desk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIncidents() []domain.Incident {
	end := time.Date(2025, 1, 14, 18, 0, 0, 0, time.UTC)
	return []domain.Incident{
		{ID: "inc-3", Type: "outage", Status: domain.IncidentStatusOpen, Description: "api down"},
		{ID: "inc-2", Type: "degradation", Status: domain.IncidentStatusClosed, IncidentEndDate: &end, Description: "slow queries"},
		{ID: "inc-1", Type: "outage", Status: domain.IncidentStatusOpen, Description: "dns flap"},
	}
}

func TestRun_BusyStateCoversTheRequest(t *testing.T) {
	view := NewView()

	var busyDuring, disabledDuring bool
	err := view.Run(func() error {
		busyDuring = view.Busy
		disabledDuring = view.ControlsDisabled
		return nil
	})

	require.NoError(t, err)
	assert.True(t, busyDuring, "busy must be set while the request runs")
	assert.True(t, disabledDuring, "controls must be locked while the request runs")
	assert.False(t, view.Busy)
	assert.False(t, view.ControlsDisabled)
}

func TestRun_RestoresStateOnError(t *testing.T) {
	view := NewView()

	err := view.Run(func() error {
		return errors.New("boom")
	})

	assert.Error(t, err)
	assert.False(t, view.Busy)
	assert.False(t, view.ControlsDisabled)
}

func TestRun_RestoresStateOnPanic(t *testing.T) {
	view := NewView()

	assert.Panics(t, func() {
		_ = view.Run(func() error { panic("boom") })
	})
	assert.False(t, view.Busy)
	assert.False(t, view.ControlsDisabled)
}

func TestRun_TransportErrorSetsWarning(t *testing.T) {
	view := NewView()

	err := view.Run(func() error {
		return &TransportError{Err: errors.New("connection refused")}
	})

	assert.Error(t, err)
	assert.Equal(t, "Unable to reach the server. Please try again.", view.Warning)
}

func TestRun_ServerErrorLeavesWarningEmpty(t *testing.T) {
	view := NewView()

	err := view.Run(func() error {
		return &APIError{StatusCode: 404, Message: "Incident not found"}
	})

	assert.Error(t, err)
	assert.Empty(t, view.Warning, "server-reported failures are not transport warnings")
}

func TestRun_ClearsPreviousWarning(t *testing.T) {
	view := NewView()
	view.Warning = "Unable to reach the server. Please try again."

	err := view.Run(func() error { return nil })

	require.NoError(t, err)
	assert.Empty(t, view.Warning)
}

func TestStatusFilter_IsValid(t *testing.T) {
	assert.True(t, FilterAll.IsValid())
	assert.True(t, FilterOpen.IsValid())
	assert.True(t, FilterClosed.IsValid())
	assert.False(t, StatusFilter("resolved").IsValid())
}

func TestStatusFilter_ApplyPreservesOrder(t *testing.T) {
	open := FilterOpen.Apply(sampleIncidents())

	require.Len(t, open, 2)
	assert.Equal(t, "inc-3", open[0].ID)
	assert.Equal(t, "inc-1", open[1].ID)
}

func TestStatusFilter_AllAndEmptyPassThrough(t *testing.T) {
	list := sampleIncidents()

	assert.Len(t, FilterAll.Apply(list), 3)
	assert.Len(t, StatusFilter("").Apply(list), 3)
	assert.Len(t, FilterClosed.Apply(list), 1)
}

func TestView_VisibleFollowsFilter(t *testing.T) {
	view := NewView()
	view.Incidents = sampleIncidents()

	assert.Len(t, view.Visible(), 3)

	view.Filter = FilterClosed
	visible := view.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "inc-2", visible[0].ID)
}

func TestRenderTable_ShowsFilteredRows(t *testing.T) {
	view := NewView()
	view.Incidents = sampleIncidents()
	view.Filter = FilterOpen

	var sb strings.Builder
	view.RenderTable(&sb)
	out := sb.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "inc-3")
	assert.Contains(t, out, "inc-1")
	assert.NotContains(t, out, "inc-2")
}

func TestNewDetailForm_FormatsDates(t *testing.T) {
	end := time.Date(2025, 1, 16, 8, 30, 0, 0, time.UTC)
	incident := &domain.Incident{
		ID:                "inc-1",
		Type:              "outage",
		IncidentStartDate: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		IncidentEndDate:   &end,
		Description:       "api down",
		Status:            domain.IncidentStatusClosed,
	}

	form := NewDetailForm(incident)

	assert.Equal(t, "inc-1", form.ID)
	assert.Equal(t, "closed", form.Status)
	assert.NotEqual(t, "-", form.StartDate)
	assert.NotEqual(t, "-", form.EndDate)
}

func TestNewDetailForm_MissingEndDateRendersDash(t *testing.T) {
	incident := &domain.Incident{
		ID:                "inc-1",
		IncidentStartDate: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Status:            domain.IncidentStatusOpen,
	}

	form := NewDetailForm(incident)

	assert.Equal(t, "-", form.EndDate)
}
