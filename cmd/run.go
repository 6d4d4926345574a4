package cmd

import (
	"github.com/spf13/cobra"

	"github.com/watchbench/apprentice/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the workshop (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds the workshop and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	w, err := openWorkshop(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer w.Close()

	return app.Run(ctx, w.state)
}
