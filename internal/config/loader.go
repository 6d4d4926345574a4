package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// UserConfigDir is the directory for user-level config under
	// $XDG_CONFIG_HOME (or ~/.config).
	UserConfigDir = "apprentice"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger

	// DotEnvPath overrides the .env location. Tests point it elsewhere.
	DotEnvPath string
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, DotEnvPath: DotEnvFile}
}

// Load resolves configuration with layered precedence:
// 1. Defaults
// 2. The YAML file at path, or the user config file when path is empty
// 3. .env in the working directory (never overriding the real environment)
// 4. APPRENTICE_* environment variables
// 5. Vendor API key variables, when no key is configured yet
//
// An explicit path that cannot be read is an error; a missing user file is not.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		switch {
		case err == nil:
			l.logger.Debug("Loaded config file", slog.String("path", path))
			cfg = fileCfg
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	if l.DotEnvPath != "" {
		if err := godotenv.Load(l.DotEnvPath); err == nil {
			l.logger.Debug("Loaded .env", slog.String("path", l.DotEnvPath))
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load .env", slog.String("path", l.DotEnvPath), slog.String("error", err.Error()))
		}
	}

	cfg.ApplyEnv()
	if !cfg.LLM.DiscoverKeys() {
		l.logger.Debug("No LLM API key found; mentor will use fallback text")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UserConfigPath returns the user config file location, or "" when the
// home directory cannot be resolved.
func UserConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, UserConfigDir, UserConfigFile)
}
