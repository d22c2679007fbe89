package oak

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("backing file not found")
	ErrIO       = errors.New("backing file i/o failure")
)

// Repository is the line-oriented storage the store mirrors its mutations to
type Repository interface {
	LoadAll() ([]string, error)
	Append(line string) error
	ReplaceNthLine(oldLine, newLine string, n int) error
	RemoveLine(line string) error
}

// FileRepository stores one task per line in a text file.
// No caching - always reads/writes the file. A sibling lock file guards each operation.
type FileRepository struct {
	filePath string
	lock     *flock.Flock
}

// NewFileRepository creates a repository for the given backing file.
// The parent directory is created; the file itself is created on first write.
func NewFileRepository(filePath string) (*FileRepository, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return &FileRepository{
		filePath: filePath,
		lock:     flock.New(filePath + ".lock"),
	}, nil
}

// Path returns the backing file path
func (r *FileRepository) Path() string {
	return r.filePath
}

// LoadAll returns every line of the backing file in order
// Lock → Read → Unlock
func (r *FileRepository) LoadAll() ([]string, error) {
	var lines []string

	err := r.withFileLock(func() error {
		var err error
		lines, err = r.readLines()
		return err
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// Append writes one line to the end of the backing file
// Lock → Open(append) → Write → Close → Unlock
func (r *FileRepository) Append(line string) error {
	return r.withFileLock(func() error {
		file, err := os.OpenFile(r.filePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return fmt.Errorf("%w: failed to open %s: %v", ErrIO, r.filePath, err)
		}
		defer file.Close()

		if _, err := file.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("%w: failed to append to %s: %v", ErrIO, r.filePath, err)
		}

		if err := file.Sync(); err != nil {
			return fmt.Errorf("%w: failed to sync %s: %v", ErrIO, r.filePath, err)
		}

		return nil
	})
}

// ReplaceLine swaps the first line equal to oldLine for newLine.
// If oldLine is absent the file is rewritten unchanged.
func (r *FileRepository) ReplaceLine(oldLine, newLine string) error {
	return r.ReplaceNthLine(oldLine, newLine, 0)
}

// ReplaceNthLine swaps the n-th (0-based) line equal to oldLine for newLine.
// If there are not that many matches the file is rewritten unchanged.
// Lock → Read all → Replace → Write → Unlock
func (r *FileRepository) ReplaceNthLine(oldLine, newLine string, n int) error {
	return r.rewrite(func(lines []string) []string {
		seen := 0
		for i, line := range lines {
			if line != oldLine {
				continue
			}
			if seen == n {
				lines[i] = newLine
				break
			}
			seen++
		}
		return lines
	})
}

// RemoveLine drops the first line equal to line.
// If line is absent the file is rewritten unchanged.
// Lock → Read all → Remove → Write → Unlock
func (r *FileRepository) RemoveLine(line string) error {
	return r.rewrite(func(lines []string) []string {
		for i, existing := range lines {
			if existing == line {
				return append(lines[:i], lines[i+1:]...)
			}
		}
		return lines
	})
}

// rewrite reads every line, applies edit, and replaces the file with the result
func (r *FileRepository) rewrite(edit func([]string) []string) error {
	return r.withFileLock(func() error {
		lines, err := r.readLines()
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		return r.writeLines(edit(lines))
	})
}

// withFileLock executes a function with the lock file held
func (r *FileRepository) withFileLock(fn func() error) error {
	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("%w: failed to lock %s: %v", ErrIO, r.filePath, err)
	}
	defer r.lock.Unlock()

	return fn()
}

// readLines reads the backing file, stripping line terminators
func (r *FileRepository) readLines() ([]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.filePath)
		}
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrIO, r.filePath, err)
	}
	defer file.Close()

	var lines []string
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrIO, r.filePath, err)
		}
	}

	return lines, nil
}

// writeLines writes lines to a temp file and renames it over the backing file,
// so an interrupted write leaves the previous contents in place
func (r *FileRepository) writeLines(lines []string) error {
	tmpPath := fmt.Sprintf("%s.%s.tmp", r.filePath, uuid.New().String()[:8])
	defer os.Remove(tmpPath)

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrIO, err)
	}

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			file.Close()
			return fmt.Errorf("%w: failed to write temp file: %v", ErrIO, err)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("%w: failed to flush temp file: %v", ErrIO, err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("%w: failed to sync temp file: %v", ErrIO, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %v", ErrIO, err)
	}

	if err := os.Rename(tmpPath, r.filePath); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", ErrIO, r.filePath, err)
	}

	return nil
}
