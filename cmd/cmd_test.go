package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchbench/apprentice/internal/config"
	"github.com/watchbench/apprentice/internal/content"
	"github.com/watchbench/apprentice/internal/exam"
	"github.com/watchbench/apprentice/internal/mentor"
	"github.com/watchbench/apprentice/internal/store"
)

// isolate keeps commands away from the user's config, database and keys.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("APPRENTICE_LLM_PROVIDER", "mock")
}

// resetFlags puts every flag back to its default; cobra keeps values
// between Execute calls on the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func TestSitExamPerfectRun(t *testing.T) {
	e := exam.NewEngine(content.Default())
	sess, err := e.Start(1)
	require.NoError(t, err)

	var answers strings.Builder
	q, _ := content.Default().Quiz(1)
	for _, qq := range q {
		answers.WriteString(string(rune('1' + qq.Correct)))
		answers.WriteString("\n")
	}

	var out bytes.Buffer
	res, err := sitExam(sess, strings.NewReader(answers.String()), &out)
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, 100, res.Percent)
	assert.Contains(t, out.String(), "✓ Correct!")
}

func TestSitExamRepromptsOnBadInput(t *testing.T) {
	e := exam.NewEngine(content.Default())
	sess, _ := e.Start(1)
	q := sess.Current()

	input := "x\n9\n" + string(rune('1'+q.Correct)) + "\nq\n"
	var out bytes.Buffer
	_, err := sitExam(sess, strings.NewReader(input), &out)

	assert.ErrorIs(t, err, errAbandoned)
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number from 1 to"))
	assert.Equal(t, 1, sess.Score(), "the valid answer still counts")
}

func TestSitExamInputClosed(t *testing.T) {
	e := exam.NewEngine(content.Default())
	sess, _ := e.Start(2)

	_, err := sitExam(sess, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, errAbandoned)
}

func TestContentPhases(t *testing.T) {
	out := execute(t, "content", "phases")
	assert.Equal(t, 4, strings.Count(out, "questions"))
}

func TestContentValidateBuiltIn(t *testing.T) {
	out := execute(t, "content", "validate")
	assert.Contains(t, out, "curriculum v1.0.0 OK: 4 phases, 9 lessons")
}

func TestReviewWithoutBackend(t *testing.T) {
	isolate(t)
	out := execute(t, "review", "--no-db", "--phase", "2", "Cleaned", "the", "escapement")

	assert.Contains(t, out, "Phase:   2")
	assert.Contains(t, out, "Cleaned the escapement")
	assert.Contains(t, out, mentor.MasterBusy)
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "apprentice (devel) (curriculum v1.0.0)")
}

func TestConfigInitWritesDefaults(t *testing.T) {
	isolate(t)
	path := config.UserConfigPath()

	out := execute(t, "config", "init")
	assert.Contains(t, out, path)

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().LLM.Provider, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Gemini.APIKey)

	_, err = run(t, "config", "init")
	require.Error(t, err, "existing file must not be overwritten")
	assert.Contains(t, err.Error(), "--force")

	execute(t, "config", "init", "--force")
}

func TestConfigInitExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bench", "apprentice.yaml")

	execute(t, "config", "init", "--config", path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, path+"\n", execute(t, "config", "path", "--config", path))
}

func TestLLMCommandsReadDiagnostics(t *testing.T) {
	isolate(t)
	dbPath := filepath.Join(t.TempDir(), "diag.db")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	repo := s.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini-2024-07-18", Purpose: "review",
		InputTokens: 1200, OutputTokens: 800, LatencyMs: 950, Success: true,
		Temperature: 0.7, MaxTokens: 1024, StopReason: "end",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "deep-dive",
		LatencyMs: 3, ErrorMessage: "mentor backend unavailable",
	}))
	require.NoError(t, s.Close())

	list := execute(t, "llm", "list", "--db", dbPath)
	assert.Contains(t, list, "gpt-4o-mini-2024-07-18")
	assert.Contains(t, list, "deep-dive")
	assert.Contains(t, list, "✗")

	view := execute(t, "llm", "view", "1", "--db", dbPath)
	assert.Contains(t, view, "Temperature: 0.70")
	assert.Contains(t, view, "Stop:        end")

	stats := execute(t, "llm", "stats", "--db", dbPath)
	assert.Contains(t, stats, "Usage by purpose")
	assert.Contains(t, stats, "$0.0007")
}

func TestWriteEventListEmpty(t *testing.T) {
	var out bytes.Buffer
	writeEventList(&out, nil)
	assert.Equal(t, "No mentor requests recorded.\n", out.String())
}

func TestWriteUsageFlagsUnpricedModels(t *testing.T) {
	var out bytes.Buffer
	writeUsage(&out,
		[]store.LLMUsageStats{{Purpose: "review", Calls: 2, InputTokens: 100, OutputTokens: 50, AvgLatencyMs: 400}},
		[]store.LLMModelUsage{{Model: "sundial-1", Calls: 2, InputTokens: 100, OutputTokens: 50}},
	)
	assert.Contains(t, out.String(), "TOTAL (partial)")
	assert.Contains(t, out.String(), "No price listed for: sundial-1")
}

func TestWriteEventShowsError(t *testing.T) {
	var out bytes.Buffer
	writeEvent(&out, &store.LLMRequestEventRecord{
		ID:        7,
		Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "review",
			ErrorMessage: "mentor backend rate limited",
		},
	})
	assert.Contains(t, out.String(), "Error:       mentor backend rate limited")
	assert.Contains(t, out.String(), "Success:     false")
}
