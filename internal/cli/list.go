package cli

import (
	"fmt"

	"github.com/bissquit/incident-desk/internal/client"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := client.StatusFilter(status)
			if !filter.IsValid() {
				return fmt.Errorf("invalid status filter %q: must be all, open or closed", status)
			}

			view := client.NewView()
			view.Filter = filter
			api := rootOpts.newClient()

			if err := runRequest(cmd, view, func() error {
				list, err := api.List(cmd.Context())
				if err != nil {
					return err
				}
				view.Incidents = list
				return nil
			}); err != nil {
				return err
			}

			view.RenderTable(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "filter by status (all, open, closed)")

	return cmd
}
