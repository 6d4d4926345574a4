package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchbench/apprentice/internal/exam"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Sit a phase exam on the command line",
	Long: `Answer a phase quiz over stdin/stdout with the same engine as the
Exam Room. Type the option number and press Enter; "q" abandons the exam.
Results are not saved.`,
	RunE: runExam,
}

func init() {
	examCmd.Flags().Int("phase", 1, "Phase to examine (1-4)")
}

func runExam(cmd *cobra.Command, args []string) error {
	phase, _ := cmd.Flags().GetInt("phase")

	w, err := openWorkshop(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer w.Close()

	p, ok := w.state.Catalog.Phase(phase)
	if !ok {
		return fmt.Errorf("no phase %d", phase)
	}
	sess, err := w.state.Exam.Start(phase)
	if err != nil {
		return fmt.Errorf("start exam for phase %d: %w", phase, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s (%d questions)\n\n", p.Title, p.QuizTopic, sess.Len())

	result, err := sitExam(sess, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}
	w.state.RecordResult(result)

	verdict := "Below the pass mark; study and retake."
	if result.Passed {
		verdict = "PASSED."
	}
	fmt.Fprintf(out, "── Result: %d/%d (%d%%) ── %s\n", result.Score, result.Total, result.Percent, verdict)
	return nil
}

var errAbandoned = errors.New("exam abandoned")

// sitExam runs sess to completion, reading one answer per line.
func sitExam(sess *exam.Session, in io.Reader, out io.Writer) (exam.Result, error) {
	scanner := bufio.NewScanner(in)

	for !sess.Completed() {
		q := sess.Current()
		fmt.Fprintf(out, "── Question %d/%d ──\n", sess.Index()+1, sess.Len())
		fmt.Fprintln(out, q.Question)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return exam.Result{}, errAbandoned
			}
			answer := strings.TrimSpace(scanner.Text())
			if strings.EqualFold(answer, "q") {
				return exam.Result{}, errAbandoned
			}
			n, err := strconv.Atoi(answer)
			if err != nil || sess.Submit(n-1) != nil {
				fmt.Fprintf(out, "Enter a number from 1 to %d.", len(q.Options))
				continue
			}
			break
		}

		chosen, _ := sess.Answered()
		if q.IsCorrect(chosen) {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Wrong. Answer: %s\n", q.Options[q.Correct])
		}
		if q.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
		}
		fmt.Fprintln(out)

		if err := sess.Advance(); err != nil {
			return exam.Result{}, err
		}
	}
	return sess.Result(), nil
}
