package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgradescout/internal/domain/commands"
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// DependenciesController handles the "dependencies" subcommand.
type DependenciesController struct {
	command commands.Dependencies
}

// NewDependenciesController creates a new DependenciesController.
func NewDependenciesController(command commands.Dependencies) *DependenciesController {
	return &DependenciesController{command: command}
}

// GetBind returns the Cobra command metadata for the dependencies controller.
func (it *DependenciesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dependencies",
		Short: "List the dependencies of the inventory",
		Long: `Download the dependency inventory CSV and print the distinct package names,
one per line, sorted by name.`,
	}
}

// Execute prints the dependency names.
func (it *DependenciesController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if isVerbose(cmd) {
		enableDebug()
	}

	deps, err := it.command.Execute(cmd.Context(), settings)
	if err != nil {
		return err
	}
	for _, dep := range deps {
		fmt.Fprintln(cmd.OutOrStdout(), dep.Name)
	}
	return nil
}

// AddFlags adds no flags: the dependencies command only uses the global ones.
func (it *DependenciesController) AddFlags(_ *cobra.Command) {}
