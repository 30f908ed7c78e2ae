package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgradescout/internal/domain/commands"
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// LinksController handles the "links" subcommand.
type LinksController struct {
	command commands.Links
}

// NewLinksController creates a new LinksController.
func NewLinksController(command commands.Links) *LinksController {
	return &LinksController{command: command}
}

// GetBind returns the Cobra command metadata for the links controller.
func (it *LinksController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "links",
		Short: "Resolve the source repository of every dependency",
		Long: `Download the dependency inventory and look up each package's project page
on the package index. The first repository link of the "Project links"
section is kept; when the page has none, recent release pages are tried.
The links file is rewritten after every dependency.`,
	}
}

// Execute resolves and stores the links.
func (it *LinksController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if isVerbose(cmd) {
		enableDebug()
	}

	_, err = it.command.Execute(cmd.Context(), settings)
	return err
}

// AddFlags adds no flags: the links command only uses the global ones.
func (it *LinksController) AddFlags(_ *cobra.Command) {}
