// Package cli implements the incidentctl command tree.
package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bissquit/incident-desk/internal/client"
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	APIURL  string
	Timeout time.Duration
}

// NewRootCommand creates the incidentctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "incidentctl",
		Short:        "Manage incidents from the terminal",
		Long:         "incidentctl lists, creates, updates and closes incidents through the incident API.",
		SilenceUsage: true,
	}

	defaultAPI := os.Getenv("INCIDENTDESK_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", defaultAPI, "base URL of the incident API")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "request timeout")

	cmd.AddCommand(
		NewListCommand(opts),
		NewGetCommand(opts),
		NewCreateCommand(opts),
		NewUpdateCommand(opts),
		NewCloseCommand(opts),
	)

	return cmd
}

func (o *RootOptions) newClient() *client.Client {
	return client.New(o.APIURL, client.WithHTTPClient(&http.Client{Timeout: o.Timeout}))
}

// runRequest executes fn behind the view's busy wrapper and surfaces the
// transport warning, if any, on stderr.
func runRequest(cmd *cobra.Command, view *client.View, fn func() error) error {
	err := view.Run(fn)
	if view.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), view.Warning)
	}
	return err
}
