package cli

import (
	"github.com/bissquit/incident-desk/internal/client"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one incident as a pre-filled detail form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := client.NewView()
			api := rootOpts.newClient()

			if err := runRequest(cmd, view, func() error {
				incident, err := api.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				view.Form = client.NewDetailForm(incident)
				return nil
			}); err != nil {
				return err
			}

			view.Form.Render(cmd.OutOrStdout())
			return nil
		},
	}
}
