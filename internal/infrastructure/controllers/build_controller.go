package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgrademe/internal/domain/commands"
	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// BuildController handles the "build" subcommand.
type BuildController struct {
	command commands.Build
}

// NewBuildController creates a new BuildController.
func NewBuildController(command commands.Build) *BuildController {
	return &BuildController{command: command}
}

// GetBind returns the Cobra command metadata for the build controller.
func (it *BuildController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "build [path]",
		Short: "Build the project and save the output of a failed build",
	}
}

// Execute runs the build stage alone.
func (it *BuildController) Execute(cmd *cobra.Command, args []string) {
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

	result := it.command.Execute(cmd.Context(), commands.BuildOptions{
		ProjectDir: dir,
		Script:     settings.Build.Script,
		LogFile:    settings.Build.LogFile,
	})
	switch result.Outcome {
	case entities.BuildSucceeded:
	case entities.BuildFailed:
		_, _ = cmd.OutOrStdout().Write([]byte(result.Output))
	case entities.BuildErrored:
		logger.Errorf("Error building project: %v", result.Err)
	}
}
