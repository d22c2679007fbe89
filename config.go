package oak

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTaskFile  = ".oak/tasks.txt"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the settings for one workspace
type Config struct {
	// File is the backing task file. Relative paths resolve against the workspace.
	File string    `toml:"file"`
	Log  LogConfig `toml:"log"`

	// WorkspaceDir is where config was loaded from; not read from TOML
	WorkspaceDir string `toml:"-"`
}

// LogConfig selects log level and output format
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// LoadConfig loads configuration in priority order:
// 1. Defaults
// 2. Workspace config file (oak.toml or .oak.toml)
// 3. Environment variables (OAK_FILE, OAK_LOG_LEVEL, OAK_LOG_FORMAT)
// CLI flags are applied by the caller afterwards.
func LoadConfig(workspaceDir string) (*Config, error) {
	cfg := &Config{
		File: DefaultTaskFile,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		WorkspaceDir: workspaceDir,
	}

	if path := findConfigFile(workspaceDir); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	return cfg, nil
}

// TaskFilePath returns the absolute backing file path
func (c *Config) TaskFilePath() string {
	if filepath.IsAbs(c.File) {
		return filepath.Clean(c.File)
	}
	return filepath.Join(c.WorkspaceDir, c.File)
}

// LogOptions converts the log section into logger options
func (c *Config) LogOptions() LogOptions {
	opts := DefaultLogOptions()
	opts.Level = ParseLogLevel(c.Log.Level)
	opts.Formatter = ParseLogFormatter(c.Log.Format)
	return opts
}

func findConfigFile(workspaceDir string) string {
	for _, name := range []string{"oak.toml", ".oak.toml"} {
		path := filepath.Join(workspaceDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("OAK_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("OAK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("OAK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
