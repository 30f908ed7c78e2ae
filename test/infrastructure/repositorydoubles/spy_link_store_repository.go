//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// SpyLinkStoreRepository implements repositories.LinkStoreRepository in memory.
type SpyLinkStoreRepository struct {
	// --- Load ---
	Links   []entities.SourceLink
	LoadErr error

	// --- Save ---
	SaveErr    error
	Snapshots  [][]entities.SourceLink
	SavedPaths []string
}

var _ repositories.LinkStoreRepository = (*SpyLinkStoreRepository)(nil)

func (s *SpyLinkStoreRepository) Save(path string, links []entities.SourceLink) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.SavedPaths = append(s.SavedPaths, path)
	s.Snapshots = append(s.Snapshots, append([]entities.SourceLink(nil), links...))
	return nil
}

func (s *SpyLinkStoreRepository) Load(_ string) ([]entities.SourceLink, error) {
	return s.Links, s.LoadErr
}
