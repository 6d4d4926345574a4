package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deepDiveCmd = &cobra.Command{
	Use:   "deepdive <topic>",
	Short: "Read the library text for a topic",
	Long: `Print the deep-dive text for a topic. Pre-authored library texts are
printed as-is; any other topic is written on demand by the master.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		w, err := openWorkshop(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer w.Close()

		res := w.state.Library.Lookup(cmd.Context(), topic)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  [%s]\n", res.Topic, res.Source)
		fmt.Fprintln(out, strings.Repeat("─", 60))
		fmt.Fprintln(out, res.Text)
		return nil
	},
}
