package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchbench/apprentice/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the curriculum asset",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the built-in curriculum, or a curriculum file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		c := content.Default()
		if file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read curriculum: %w", err)
			}
			if c, err = content.Load(data); err != nil {
				return err
			}
		}

		quizzes := 0
		for _, p := range c.Phases() {
			if q, ok := c.Quiz(p.ID); ok {
				quizzes += len(q)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "curriculum %s OK: %d phases, %d lessons, %d quiz questions, %d movements, %d library topics\n",
			c.Version(), len(c.Phases()), len(c.Lessons()), quizzes, len(c.Movements()), len(c.TheoryTopics()))
		return nil
	},
}

var contentPhasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List the apprenticeship phases",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		c := content.Default()
		for _, p := range c.Phases() {
			q, _ := c.Quiz(p.ID)
			fmt.Fprintf(out, "%d  %-40s  %-14s  %2d questions  %s\n", p.ID, p.Title, p.Duration, len(q), p.QuizTopic)
		}
	},
}

func init() {
	contentValidateCmd.Flags().String("file", "", "Curriculum YAML file to validate instead of the built-in asset")

	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentPhasesCmd)
}
