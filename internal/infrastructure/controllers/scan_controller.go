package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgradescout/internal/domain/commands"
	"github.com/rios0rios0/upgradescout/internal/domain/entities"
)

// ScanController handles the root command: the support scan over the links file.
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "upgradescout",
		Short: "Find the release that added support for each target version",
		Long: `Find, for every dependency in the links file, the earliest release of its
upstream repository that still declares support for each target Python and
Django version, falling back to the unreleased default branch.

Each dependency is cloned into a temporary workspace, its tags are walked from
newest to oldest, and the packaging metadata (setup.py, setup.cfg,
pyproject.toml) of every checked revision is searched for classifiers.
One JSON line per dependency is appended to the report log.

Typical workflow:
  upgradescout dependencies   List the inventory
  upgradescout links          Resolve repository links into the links file
  upgradescout                Scan every linked repository`,
	}
}

// Execute runs the scan.
func (it *ScanController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	resume, _ := cmd.Flags().GetBool("resume")

	_, err = it.command.Execute(cmd.Context(), settings, commands.ScanOptions{
		Verbose: isVerbose(cmd),
		Resume:  resume,
	})
	return err
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("resume", false, "Skip dependencies already recorded in the report log")
}
