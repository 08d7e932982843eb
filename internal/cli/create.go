package cli

import (
	"fmt"

	"github.com/bissquit/incident-desk/internal/client"
	"github.com/bissquit/incident-desk/internal/incidents"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		incidentType string
		description  string
		startDate    string
		endDate      string
		remarks      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new incident",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := incidents.CreateIncidentInput{
				Type:        incidentType,
				Description: description,
				Remarks:     remarks,
			}

			if startDate != "" {
				d, err := incidents.ParseDate(startDate)
				if err != nil {
					return err
				}
				input.IncidentStartDate = &d
			}
			if endDate != "" {
				d, err := incidents.ParseDate(endDate)
				if err != nil {
					return err
				}
				input.IncidentEndDate = &d
			}

			view := client.NewView()
			api := rootOpts.newClient()

			if err := runRequest(cmd, view, func() error {
				incident, err := api.Create(cmd.Context(), input)
				if err != nil {
					return err
				}
				view.Form = client.NewDetailForm(incident)
				return nil
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Incident created")
			view.Form.Render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&incidentType, "type", "", "incident type (required)")
	cmd.Flags().StringVar(&description, "description", "", "incident description (required)")
	cmd.Flags().StringVar(&startDate, "start", "", "start date, RFC 3339 or YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date, RFC 3339 or YYYY-MM-DD")
	cmd.Flags().StringVar(&remarks, "remarks", "", "optional remarks")

	return cmd
}
