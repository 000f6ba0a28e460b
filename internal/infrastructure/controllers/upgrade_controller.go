package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgrademe/internal/domain/commands"
	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// UpgradeController handles the "upgrade" subcommand.
type UpgradeController struct {
	command commands.Upgrade
}

// NewUpgradeController creates a new UpgradeController.
func NewUpgradeController(command commands.Upgrade) *UpgradeController {
	return &UpgradeController{command: command}
}

// GetBind returns the Cobra command metadata for the upgrade controller.
func (it *UpgradeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "upgrade [path]",
		Short: "Upgrade runtime dependencies to their latest versions",
		Long: `Queries the package manager for outdated packages, rewrites the versions of
the matching entries under "dependencies" in package.json and reinstalls.
devDependencies are not touched.`,
	}
}

// Execute runs the upgrade stage alone.
func (it *UpgradeController) Execute(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		return
	}
	dir, err := projectDir(args)
	if err != nil {
		logger.Errorf("Invalid path: %v", err)
		return
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := it.command.Execute(cmd.Context(), commands.UpgradeOptions{
		ProjectDir:           dir,
		DryRun:               dryRun,
		StrictInstall:        settings.Upgrade.StrictInstall,
		RequireCleanWorktree: settings.Upgrade.RequireCleanWorktree,
		Changelog:            settings.Upgrade.Changelog,
	})
	if err != nil {
		logger.Errorf("Error upgrading dependencies: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	for _, change := range result.Changes {
		_, _ = fmt.Fprintf(out, "%s\t%s -> %s\t%s\n", change.Name, change.From, change.To, change.Bump)
	}
}
