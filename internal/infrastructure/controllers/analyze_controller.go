package controllers

import (
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgrademe/internal/domain/commands"
	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	infraRepos "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories"
)

// AnalyzeController handles the "analyze" subcommand.
type AnalyzeController struct {
	command  commands.Analyze
	backends *infraRepos.BackendRegistry
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze, backends *infraRepos.BackendRegistry) *AnalyzeController {
	return &AnalyzeController{command: command, backends: backends}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze [path]",
		Short: "Ask the model for fixes to the errors of a saved build log",
		Long: `Reads the build log of a previous failed build (build_errors.log by default),
extracts the source lines around every error and prints one suggestion per error line.`,
	}
}

// Execute runs the analysis stage alone.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

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

	logPath, _ := cmd.Flags().GetString("log")
	if logPath == "" {
		logPath = filepath.Join(dir, settings.Build.LogFile)
	}

	backend, err := it.backends.Get(ctx, settings)
	if err != nil {
		logger.Errorf("Failed to initialize suggestion backend: %v", err)
		return
	}

	suggestions := it.command.Execute(ctx, backend, commands.AnalyzeOptions{
		LogPath:    logPath,
		ProjectDir: dir,
	})
	printSuggestions(cmd, suggestions)
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("log", "", "Build log to analyze (default: <path>/<build.log_file>)")
}
