package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/watchbench/apprentice/internal/config"
	"github.com/watchbench/apprentice/internal/content"
	"github.com/watchbench/apprentice/internal/llm"
	"github.com/watchbench/apprentice/internal/logging"
	"github.com/watchbench/apprentice/internal/mentor"
	"github.com/watchbench/apprentice/internal/state"
	"github.com/watchbench/apprentice/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "apprentice",
	Short: "Watchmaking apprenticeship in the terminal",
	Long: "Apprentice is a terminal workshop for the WOSTEP-style watchmaking path: " +
		"curriculum, movement bench, phase exams, a service journal reviewed by an AI master and a deep-dive library.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// ExecuteContext runs the root command with ctx available to every
// subcommand through cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/apprentice/config.yaml)")
	pf.String("db", "", "Path to the diagnostics SQLite database (overrides APPRENTICE_DB)")
	pf.Bool("no-db", false, "Do not record LLM diagnostics")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(deepDiveCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.NewLoader(slog.Default()).Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if noDB, _ := cmd.Flags().GetBool("no-db"); noDB {
		cfg.NoDB = true
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
		if _, err := cfg.Level(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// resolveDBPath returns the database path: --db or the config file first,
// then APPRENTICE_DB, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// workshop holds everything a command needs to drive the apprenticeship.
type workshop struct {
	cfg    *config.Config
	events store.EventRepo
	state  *state.State

	closers []func() error
}

func (w *workshop) Close() {
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i](); err != nil {
			slog.Warn("Shutdown failed", slog.String("error", err.Error()))
		}
	}
}

// openWorkshop loads config, installs the logger, opens the diagnostics
// store and builds the mentor. Interactive runs log to the configured
// file; everything else logs to stderr.
func openWorkshop(ctx context.Context, cmd *cobra.Command, interactive bool) (*workshop, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	w := &workshop{cfg: cfg, events: store.NopEventRepo()}

	level, _ := cfg.Level()
	logPath := logging.Stderr
	if interactive {
		logPath = cfg.LogPath
	}
	closeLog, err := logging.Setup(logPath, level)
	if err != nil {
		return nil, err
	}
	w.closers = append(w.closers, closeLog)

	if !cfg.NoDB {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		w.closers = append(w.closers, st.Close)
		w.events = st.EventRepo()
	}

	w.state = state.New(content.Default(), mentor.New(newProvider(ctx, cfg, w.events), mentorConfig(cfg)))
	return w, nil
}

// newProvider returns nil when no provider can be built. The mentor then
// answers with its fallback text.
func newProvider(ctx context.Context, cfg *config.Config, events store.EventRepo) llm.Provider {
	if err := cfg.LLMReady(); err != nil {
		slog.Warn("LLM provider not configured; mentor unavailable", slog.String("error", err.Error()))
		return nil
	}
	provider, err := llm.NewProvider(ctx, cfg.LLM, events)
	if err != nil {
		slog.Warn("LLM provider failed to initialize; mentor unavailable", slog.String("error", err.Error()))
		return nil
	}
	slog.Info("LLM provider ready",
		slog.String("provider", cfg.LLM.Provider),
		slog.String("model", provider.ModelID()))
	return provider
}

func mentorConfig(cfg *config.Config) mentor.Config {
	mc := mentor.DefaultConfig()
	mc.Timeout = cfg.LLM.Timeout
	return mc
}
