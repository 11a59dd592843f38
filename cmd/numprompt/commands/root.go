package commands

import (
	"os"

	"github.com/spf13/cobra"

	"numprompt/internal/app"
)

var logLevel string

// Execute runs the root command against the process streams.
func Execute() error {
	root := &cobra.Command{
		Use:          "numprompt",
		Short:        "Prompt for a number between 1 and 10 until one is given",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewWire(app.Config{
				In:       os.Stdin,
				Out:      os.Stdout,
				ErrOut:   os.Stderr,
				LogLevel: logLevel,
			})
			_, err := w.Loop.Run(cmd.Context())
			return err
		},
	}

	root.Flags().StringVar(&logLevel, "log-level", "", "log verbosity: debug, info, warn or error (default error)")
	return root.Execute()
}
