package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// Dependencies is the interface for the dependencies command.
type Dependencies interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.Dependency, error)
}

// DependenciesCommand lists the dependency inventory.
type DependenciesCommand struct {
	dependencies repositories.DependencyRepository
}

// NewDependenciesCommand creates a new DependenciesCommand.
func NewDependenciesCommand(dependencies repositories.DependencyRepository) *DependenciesCommand {
	return &DependenciesCommand{dependencies: dependencies}
}

// Execute downloads and parses the inventory.
func (it *DependenciesCommand) Execute(ctx context.Context, settings *entities.Settings) ([]entities.Dependency, error) {
	deps, err := it.dependencies.ListDependencies(ctx, settings.Inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies: %w", err)
	}
	logger.Infof("[inventory] Found %d dependencies", len(deps))
	return deps, nil
}
