package oak

import (
	"fmt"
)

// NewOakWithPersistence creates a store backed by the task file at filePath.
// Every mutation is written through to the file before memory changes.
func NewOakWithPersistence(filePath string, opts ...Option) (*Oak, error) {
	// Create file repository (pure storage layer, no caching)
	repo, err := NewFileRepository(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file repository: %w", err)
	}

	// Loads every line from disk once, then mirrors each mutation
	return New(repo, opts...)
}
