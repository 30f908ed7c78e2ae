//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// StubDependencyRepository implements repositories.DependencyRepository with canned results.
type StubDependencyRepository struct {
	Dependencies []entities.Dependency
	Err          error
	CallCount    int
	LastSettings entities.InventorySettings
}

var _ repositories.DependencyRepository = (*StubDependencyRepository)(nil)

func (s *StubDependencyRepository) ListDependencies(
	_ context.Context,
	settings entities.InventorySettings,
) ([]entities.Dependency, error) {
	s.CallCount++
	s.LastSettings = settings
	return s.Dependencies, s.Err
}

// StubSourceLinkRepository implements repositories.SourceLinkRepository with canned sources.
// Unknown names resolve to the "No Github Link" sentinel.
type StubSourceLinkRepository struct {
	Sources  map[string]string
	Resolved []string
}

var _ repositories.SourceLinkRepository = (*StubSourceLinkRepository)(nil)

func (s *StubSourceLinkRepository) Resolve(
	_ context.Context,
	_ entities.LinkSettings,
	name string,
) entities.SourceLink {
	s.Resolved = append(s.Resolved, name)
	source, ok := s.Sources[name]
	if !ok {
		source = entities.NoGithubLink
	}
	return entities.SourceLink{
		Dependency:     name,
		Source:         source,
		IsGitSupported: !entities.IsSentinel(source),
	}
}
