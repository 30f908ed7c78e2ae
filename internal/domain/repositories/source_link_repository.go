package repositories

import (
	"context"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// SourceLinkRepository maps a package name to its upstream repository link.
// Failures are reported as sentinels in the returned link, never as errors.
type SourceLinkRepository interface {
	Resolve(ctx context.Context, settings entities.LinkSettings, name string) entities.SourceLink
}

// LinkStoreRepository persists the resolved links between the links and scan commands.
type LinkStoreRepository interface {
	Save(path string, links []entities.SourceLink) error
	Load(path string) ([]entities.SourceLink, error)
}
