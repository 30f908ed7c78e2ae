package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

const fileMode = 0o644

// LinkStoreRepository implements repositories.LinkStoreRepository as a JSON array file.
type LinkStoreRepository struct{}

// NewLinkStoreRepository creates a new links file store.
func NewLinkStoreRepository() repositories.LinkStoreRepository {
	return &LinkStoreRepository{}
}

// Save replaces the links file. The content is written to a sibling temporary file first,
// so an interrupted save never leaves a truncated file behind.
func (it *LinkStoreRepository) Save(path string, links []entities.SourceLink) error {
	if links == nil {
		links = []entities.SourceLink{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create links file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, writeErr := tmp.Write(append(data, '\n')); writeErr != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write links file: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return fmt.Errorf("failed to write links file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmp.Name(), fileMode); chmodErr != nil {
		return fmt.Errorf("failed to write links file: %w", chmodErr)
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the links file.
func (it *LinkStoreRepository) Load(path string) ([]entities.SourceLink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read links file %q: %w", path, err)
	}

	var links []entities.SourceLink
	if unmarshalErr := json.Unmarshal(data, &links); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse links file %q: %w", path, unmarshalErr)
	}
	return links, nil
}
