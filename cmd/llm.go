package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/watchbench/apprentice/internal/llm"
	"github.com/watchbench/apprentice/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded mentor requests",
	Long: `Inspect the diagnostics store. Each mentor request leaves one row with
its purpose, model, token counts, latency and outcome. Journal entries and
the mentor's replies are never stored.`,
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent mentor requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withDiagnostics(cmd, func(repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			writeEventList(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the metadata recorded for one mentor request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withDiagnostics(cmd, func(repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			writeEvent(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDiagnostics(cmd, func(repo store.EventRepo) error {
			byPurpose, err := repo.LLMUsageByPurpose(cmd.Context())
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			byModel, err := repo.LLMUsageByModel(cmd.Context())
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			writeUsage(cmd.OutOrStdout(), byPurpose, byModel)
			return nil
		})
	},
}

// newTable is a plain bordered table; no colours, so it pipes cleanly.
func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(headers...)
}

func writeEventList(w io.Writer, events []store.LLMRequestEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No mentor requests recorded.")
		return
	}
	t := newTable("ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		t.Row(
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(e.Model, 28),
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			ok,
		)
	}
	fmt.Fprintln(w, t.Render())
}

func writeEvent(w io.Writer, e *store.LLMRequestEventRecord) {
	fields := []struct{ name, value string }{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format(timeLayout)},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Temperature", fmt.Sprintf("%.2f", e.Temperature)},
		{"Max tokens", strconv.Itoa(e.MaxTokens)},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Stop", e.StopReason},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Success", strconv.FormatBool(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, struct{ name, value string }{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-12s %s\n", f.name+":", f.value)
	}
}

func writeUsage(w io.Writer, byPurpose []store.LLMUsageStats, byModel []store.LLMModelUsage) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "No mentor usage recorded yet.")
		return
	}

	usage := newTable("Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	var calls, in, out int
	for _, st := range byPurpose {
		usage.Row(st.Purpose, strconv.Itoa(st.Calls), strconv.Itoa(st.InputTokens),
			strconv.Itoa(st.OutputTokens), strconv.Itoa(st.InputTokens+st.OutputTokens),
			strconv.FormatInt(st.AvgLatencyMs, 10))
		calls += st.Calls
		in += st.InputTokens
		out += st.OutputTokens
	}
	usage.Row("TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), strconv.Itoa(in+out), "")
	fmt.Fprintln(w, "Usage by purpose")
	fmt.Fprintln(w, usage.Render())

	if len(byModel) == 0 {
		return
	}

	cost := newTable("Model", "Calls", "Input", "Output", "Cost (USD)")
	var total float64
	var unpriced []string
	for _, mu := range byModel {
		price := "?"
		if c := llm.LookupCost(mu.Model); c != nil {
			usd := c.Cost(mu.InputTokens, mu.OutputTokens)
			total += usd
			price = formatCost(usd)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		cost.Row(truncate(mu.Model, 32), strconv.Itoa(mu.Calls), strconv.Itoa(mu.InputTokens),
			strconv.Itoa(mu.OutputTokens), price)
	}
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	cost.Row(label, "", "", "", formatCost(total))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Estimated cost")
	fmt.Fprintln(w, cost.Render())
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nNo price listed for: %s\n", strings.Join(unpriced, ", "))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

// withDiagnostics opens the diagnostics store for the duration of fn.
func withDiagnostics(cmd *cobra.Command, fn func(store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.NoDB {
		return fmt.Errorf("diagnostics store disabled by --no-db")
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(s.EventRepo())
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (review, deep-dive)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
