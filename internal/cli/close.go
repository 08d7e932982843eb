package cli

import (
	"fmt"
	"time"

	"github.com/bissquit/incident-desk/internal/client"
	"github.com/bissquit/incident-desk/internal/incidents"
	"github.com/spf13/cobra"
)

// NewCloseCommand creates the close command.
func NewCloseCommand(rootOpts *RootOptions) *cobra.Command {
	var endDate string

	cmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close an incident",
		Long:  "Close an incident. Without --end the server stamps the current time as the end date.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var end *time.Time
			if endDate != "" {
				d, err := incidents.ParseDate(endDate)
				if err != nil {
					return err
				}
				end = &d.Time
			}

			view := client.NewView()
			api := rootOpts.newClient()

			if err := runRequest(cmd, view, func() error {
				incident, err := api.Close(cmd.Context(), args[0], end)
				if err != nil {
					return err
				}
				view.Form = client.NewDetailForm(incident)
				return nil
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Incident closed")
			view.Form.Render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&endDate, "end", "", "end date, RFC 3339 or YYYY-MM-DD (defaults to now)")

	return cmd
}
