package repositories

import (
	"context"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// DependencyRepository lists the dependencies found in the inventory.
type DependencyRepository interface {
	// ListDependencies returns the deduplicated dependency set, sorted by name.
	ListDependencies(ctx context.Context, settings entities.InventorySettings) ([]entities.Dependency, error)
}
