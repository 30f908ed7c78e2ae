package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewScanController); err != nil {
		return err
	}
	if err := container.Provide(NewLinksController); err != nil {
		return err
	}
	if err := container.Provide(NewDependenciesController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
// The scan controller backs the root command and is not part of it.
func NewControllers(
	linksController *LinksController,
	dependenciesController *DependenciesController,
) *[]entities.Controller {
	return &[]entities.Controller{
		linksController,
		dependenciesController,
	}
}
