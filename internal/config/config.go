// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file and APPRENTICE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/watchbench/apprentice/internal/llm"
)

// Config is the resolved application configuration.
type Config struct {
	LLM llm.Config `yaml:"llm"`

	// DBPath is the diagnostics database. Empty uses store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// NoDB disables the diagnostics database. Set from the command line only.
	NoDB bool `yaml:"-"`

	// LogPath is the structured log file. "-" logs to stderr.
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM:      llm.DefaultConfig(),
		LogPath:  defaultLogPath(),
		LogLevel: "info",
	}
}

// LoadFromFile reads a YAML file over the defaults. Keys absent from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// ApplyEnv overlays APPRENTICE_* environment variables.
func (c *Config) ApplyEnv() {
	c.LLM.ApplyEnv()
	if p := os.Getenv("APPRENTICE_DB"); p != "" {
		c.DBPath = p
	}
	if p := os.Getenv("APPRENTICE_LOG_FILE"); p != "" {
		c.LogPath = p
	}
	if l := os.Getenv("APPRENTICE_LOG_LEVEL"); l != "" {
		c.LogLevel = l
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Validate checks settings that would break start-up. Missing provider
// credentials are not an error: the mentor falls back to fixed text.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LLM.Provider {
	case "anthropic", "openai", "gemini", "openrouter", "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.LLM.Provider)
	}
	if c.LLM.Retry.MaxAttempts < 1 {
		return fmt.Errorf("llm.retry.max_attempts must be at least 1, got %d", c.LLM.Retry.MaxAttempts)
	}
	return nil
}

// LLMReady reports why the mentor cannot reach a provider, or nil.
func (c *Config) LLMReady() error {
	return c.LLM.Validate()
}

func defaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "-"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "apprentice", "apprentice.log")
}
