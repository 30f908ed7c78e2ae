package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	fsRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/gitcli"
	goGitRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/gogit"
	invRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/inventory"
	pypiRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/pypi"
	pyRepo "github.com/rios0rios0/upgradescout/internal/infrastructure/repositories/python"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register version control registry with all backend factories
	if err := container.Provide(func() *VersionControlRegistry {
		reg := NewVersionControlRegistry()
		reg.Register(entities.BackendGitCLI, gitRepo.NewGitCLIRepository)
		reg.Register(entities.BackendGoGit, goGitRepo.NewGoGitRepository)
		return reg
	}); err != nil {
		return err
	}

	providers := []any{
		pyRepo.NewMetadataRepository,
		invRepo.NewCSVDependencyRepository,
		pypiRepo.NewSourceLinkRepository,
		fsRepo.NewLinkStoreRepository,
		fsRepo.NewReportLogRepository,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
