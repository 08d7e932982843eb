package client

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/bissquit/incident-desk/internal/domain"
)

// StatusFilter selects which incidents the list view shows.
type StatusFilter string

// Available list filters.
const (
	FilterAll    StatusFilter = "all"
	FilterOpen   StatusFilter = "open"
	FilterClosed StatusFilter = "closed"
)

// IsValid checks if the filter is one of the known values.
func (f StatusFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterOpen, FilterClosed:
		return true
	}
	return false
}

// Apply returns the incidents matching the filter, preserving the incoming
// (newest-first) order.
func (f StatusFilter) Apply(list []domain.Incident) []domain.Incident {
	if f == FilterAll || f == "" {
		return list
	}
	filtered := make([]domain.Incident, 0, len(list))
	for _, incident := range list {
		if string(incident.Status) == string(f) {
			filtered = append(filtered, incident)
		}
	}
	return filtered
}

// View is the explicit view model the frontend renders from. One shared busy
// state covers all in-flight requests: the controls stay disabled for the
// outer duration of every request.
type View struct {
	Busy             bool
	ControlsDisabled bool
	Warning          string
	Filter           StatusFilter
	Incidents        []domain.Incident
	Form             DetailForm
}

// NewView creates a view model with the default filter.
func NewView() *View {
	return &View{Filter: FilterAll}
}

// Run executes a request behind the shared busy state: the busy indicator and
// control lockout are set before the request and restored on every exit path,
// including panics. A transport failure records the generic unreachable
// warning; server-reported failures pass through untouched.
func (v *View) Run(fn func() error) error {
	v.Busy = true
	v.ControlsDisabled = true
	v.Warning = ""
	defer func() {
		v.Busy = false
		v.ControlsDisabled = false
	}()

	err := fn()

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		v.Warning = unreachableMessage
	}
	return err
}

// Visible returns the incident list with the current filter applied.
func (v *View) Visible() []domain.Incident {
	return v.Filter.Apply(v.Incidents)
}

// RenderTable writes the filtered incident list as an aligned table.
func (v *View) RenderTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tSTART\tEND\tDESCRIPTION")
	for _, incident := range v.Visible() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			incident.ID,
			incident.Type,
			incident.Status,
			formatDate(&incident.IncidentStartDate),
			formatDate(incident.IncidentEndDate),
			incident.Description,
		)
	}
	_ = tw.Flush()
}

// DetailForm is the edit form state, pre-filled from a fetched record.
type DetailForm struct {
	ID          string
	Type        string
	StartDate   string
	EndDate     string
	Description string
	Remarks     string
	Status      string
}

// NewDetailForm builds a form pre-filled from an incident.
func NewDetailForm(incident *domain.Incident) DetailForm {
	return DetailForm{
		ID:          incident.ID,
		Type:        incident.Type,
		StartDate:   formatDate(&incident.IncidentStartDate),
		EndDate:     formatDate(incident.IncidentEndDate),
		Description: incident.Description,
		Remarks:     incident.Remarks,
		Status:      string(incident.Status),
	}
}

// Render writes the detail form fields.
func (f DetailForm) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", f.ID)
	fmt.Fprintf(tw, "Type:\t%s\n", f.Type)
	fmt.Fprintf(tw, "Status:\t%s\n", f.Status)
	fmt.Fprintf(tw, "Start date:\t%s\n", f.StartDate)
	fmt.Fprintf(tw, "End date:\t%s\n", f.EndDate)
	fmt.Fprintf(tw, "Description:\t%s\n", f.Description)
	fmt.Fprintf(tw, "Remarks:\t%s\n", f.Remarks)
	_ = tw.Flush()
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
