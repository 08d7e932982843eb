package main

import (
	"os"

	"github.com/bissquit/incident-desk/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
