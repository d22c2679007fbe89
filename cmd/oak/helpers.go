package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fmizzell/oak"
)

// getWorkspaceDir returns --workspace or the current directory
func getWorkspaceDir() (string, error) {
	if workspaceFlag != "" {
		return filepath.Abs(workspaceFlag)
	}
	return os.Getwd()
}

// loadConfig loads workspace config and applies CLI flag overrides
func loadConfig() (*oak.Config, error) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace directory: %w", err)
	}

	cfg, err := oak.LoadConfig(workspaceDir)
	if err != nil {
		return nil, err
	}

	if fileFlag != "" {
		cfg.File = fileFlag
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}

	return cfg, nil
}

// openStore loads the task store for the current workspace
func openStore() (*oak.Oak, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := oak.NewLogger(os.Stderr, cfg.LogOptions())

	o, err := oak.NewOakWithPersistence(cfg.TaskFilePath(),
		oak.WithLogger(logger),
		oak.WithListener(oak.LogListener(logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return o, nil
}

// parseTaskNumber converts a 1-based task number from the command line to an index
func parseTaskNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("task number must be an integer, got %q", arg)
	}
	return n - 1, nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
	os.Exit(1)
}
