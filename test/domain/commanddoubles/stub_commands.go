//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgradescout/internal/domain/commands"
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ScanOptions
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ScanOptions,
) (*entities.BatchStats, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return entities.NewBatchStats(), s.ExecuteErr
}

// StubLinksCommand is a stub implementation of commands.Links.
type StubLinksCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Links = (*StubLinksCommand)(nil)

func (s *StubLinksCommand) Execute(_ context.Context, settings *entities.Settings) ([]entities.SourceLink, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return nil, s.ExecuteErr
}

// StubDependenciesCommand is a stub implementation of commands.Dependencies.
type StubDependenciesCommand struct {
	Dependencies     []entities.Dependency
	ExecuteCallCount int
	ExecuteErr       error
}

var _ commands.Dependencies = (*StubDependenciesCommand)(nil)

func (s *StubDependenciesCommand) Execute(_ context.Context, _ *entities.Settings) ([]entities.Dependency, error) {
	s.ExecuteCallCount++
	return s.Dependencies, s.ExecuteErr
}
