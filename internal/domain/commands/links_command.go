package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
	"github.com/rios0rios0/upgradescout/internal/domain/repositories"
)

// Links is the interface for the links command.
type Links interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.SourceLink, error)
}

// LinksCommand resolves the upstream repository of every inventory dependency and
// stores the result in the links file.
type LinksCommand struct {
	dependencies repositories.DependencyRepository
	resolver     repositories.SourceLinkRepository
	store        repositories.LinkStoreRepository
}

// NewLinksCommand creates a new LinksCommand.
func NewLinksCommand(
	dependencies repositories.DependencyRepository,
	resolver repositories.SourceLinkRepository,
	store repositories.LinkStoreRepository,
) *LinksCommand {
	return &LinksCommand{
		dependencies: dependencies,
		resolver:     resolver,
		store:        store,
	}
}

// Execute resolves links one dependency at a time, rewriting the links file after each so
// an interrupted run keeps what it already found.
func (it *LinksCommand) Execute(ctx context.Context, settings *entities.Settings) ([]entities.SourceLink, error) {
	deps, err := it.dependencies.ListDependencies(ctx, settings.Inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies: %w", err)
	}

	logger.Infof("[links] Resolving source links of %d dependencies", len(deps))

	links := make([]entities.SourceLink, 0, len(deps))
	failedPages := 0
	missingTabs := 0
	for _, dep := range deps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return links, ctxErr
		}

		link := it.resolver.Resolve(ctx, settings.Links, dep.Name)
		switch {
		case link.Source == entities.NoProjectLinksTab:
			missingTabs++
		case strings.HasPrefix(link.Source, entities.FailedPageSentinel("")):
			failedPages++
		}
		logger.Infof("[links] %s: %s", dep.Name, link.Source)

		links = append(links, link)
		if saveErr := it.store.Save(settings.Links.Path, links); saveErr != nil {
			return links, fmt.Errorf("failed to write links file: %w", saveErr)
		}
	}

	logger.Infof(
		"[links] Done: %d links written to %s (%d pages failed to load, %d without project links)",
		len(links), settings.Links.Path, failedPages, missingTabs,
	)
	return links, nil
}
