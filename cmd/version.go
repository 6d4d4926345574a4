package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchbench/apprentice/internal/content"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "apprentice %s (curriculum %s)\n", version, content.Default().Version())
	},
}
