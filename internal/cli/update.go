package cli

import (
	"fmt"

	"github.com/bissquit/incident-desk/internal/client"
	"github.com/bissquit/incident-desk/internal/domain"
	"github.com/bissquit/incident-desk/internal/incidents"
	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command. Only flags explicitly set
// on the command line are sent to the server, so an update touching a
// single field leaves everything else untouched.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		incidentType string
		description  string
		startDate    string
		endDate      string
		remarks      string
		status       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input incidents.UpdateIncidentInput

			if cmd.Flags().Changed("type") {
				input.Type = &incidentType
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("remarks") {
				input.Remarks = &remarks
			}
			if cmd.Flags().Changed("status") {
				s := domain.IncidentStatus(status)
				if !s.IsValid() {
					return fmt.Errorf("invalid status %q: must be %q or %q", status, domain.IncidentStatusOpen, domain.IncidentStatusClosed)
				}
				input.Status = &s
			}
			if cmd.Flags().Changed("start") {
				d, err := incidents.ParseDate(startDate)
				if err != nil {
					return err
				}
				input.IncidentStartDate = &d
			}
			if cmd.Flags().Changed("end") {
				d, err := incidents.ParseDate(endDate)
				if err != nil {
					return err
				}
				input.IncidentEndDate = &d
			}

			view := client.NewView()
			api := rootOpts.newClient()

			if err := runRequest(cmd, view, func() error {
				incident, err := api.Update(cmd.Context(), args[0], input)
				if err != nil {
					return err
				}
				view.Form = client.NewDetailForm(incident)
				return nil
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Incident updated")
			view.Form.Render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&incidentType, "type", "", "incident type")
	cmd.Flags().StringVar(&description, "description", "", "incident description")
	cmd.Flags().StringVar(&startDate, "start", "", "start date, RFC 3339 or YYYY-MM-DD")
	cmd.Flags().StringVar(&endDate, "end", "", "end date, RFC 3339 or YYYY-MM-DD")
	cmd.Flags().StringVar(&remarks, "remarks", "", "remarks")
	cmd.Flags().StringVar(&status, "status", "", "incident status (open or closed)")

	return cmd
}
