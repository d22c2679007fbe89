package oak

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// Test utilities - shared helpers for tests

// writeTaskFile writes lines to a fresh task file and returns its path
func writeTaskFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readTaskFile returns the lines currently on disk
func readTaskFile(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// bufferLogger returns a debug-level logger writing into a buffer
func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

// MemoryRepository is an in-memory Repository with injectable failures
type MemoryRepository struct {
	Lines   []string
	Missing bool
	FailOn  string // "append", "replace", "remove" or "load"
}

var errInjected = errors.New("injected failure")

func (m *MemoryRepository) LoadAll() ([]string, error) {
	if m.Missing {
		return nil, ErrNotFound
	}
	if m.FailOn == "load" {
		return nil, errInjected
	}
	return append([]string(nil), m.Lines...), nil
}

func (m *MemoryRepository) Append(line string) error {
	if m.FailOn == "append" {
		return errors.Join(ErrIO, errInjected)
	}
	m.Lines = append(m.Lines, line)
	return nil
}

func (m *MemoryRepository) ReplaceNthLine(oldLine, newLine string, n int) error {
	if m.FailOn == "replace" {
		return errors.Join(ErrIO, errInjected)
	}
	seen := 0
	for i, l := range m.Lines {
		if l != oldLine {
			continue
		}
		if seen == n {
			m.Lines[i] = newLine
			break
		}
		seen++
	}
	return nil
}

func (m *MemoryRepository) RemoveLine(line string) error {
	if m.FailOn == "remove" {
		return errors.Join(ErrIO, errInjected)
	}
	for i, l := range m.Lines {
		if l == line {
			m.Lines = append(m.Lines[:i], m.Lines[i+1:]...)
			break
		}
	}
	return nil
}
