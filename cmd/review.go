package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <text...>",
	Short: "File one service-book entry and print the master's review",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phase, _ := cmd.Flags().GetInt("phase")

		w, err := openWorkshop(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer w.Close()

		if !w.state.SelectJournalPhase(phase) {
			return fmt.Errorf("no phase %d", phase)
		}

		entry, ok := w.state.Journal.Submit(cmd.Context(), w.state.Mentor, strings.Join(args, " "), w.state.JournalPhase())
		if !ok {
			return fmt.Errorf("entry text is blank")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:      %s\n", entry.ID)
		fmt.Fprintf(out, "Filed:   %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Phase:   %d\n", entry.Phase)
		fmt.Fprintf(out, "Status:  %s\n", entry.Status)
		fmt.Fprintln(out)
		fmt.Fprintln(out, entry.Description)
		fmt.Fprintln(out, strings.Repeat("─", 60))
		fmt.Fprintln(out, entry.Feedback)
		return nil
	},
}

func init() {
	reviewCmd.Flags().Int("phase", 1, "Phase the work belongs to (1-4)")
}
