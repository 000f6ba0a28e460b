package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/upgrademe/internal/domain/commands"
	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories"
)

// PipelineController handles the root command: upgrade, build, and analyze
// the project at the given path.
type PipelineController struct {
	command  commands.Pipeline
	backends *infraRepos.BackendRegistry
}

// NewPipelineController creates a new PipelineController.
func NewPipelineController(command commands.Pipeline, backends *infraRepos.BackendRegistry) *PipelineController {
	return &PipelineController{command: command, backends: backends}
}

// GetBind returns the Cobra command metadata for the pipeline controller.
func (it *PipelineController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "upgrademe [path]",
		Short: "Upgrade dependencies, build, and get fix suggestions for build errors",
		Long: `Upgrades the runtime dependencies of a Node.js project to their latest versions,
runs its build script and, when the build fails, asks a language model for a fix
for every error line of the build output.

The model backend is selected once per run:
  local   a model served by a local Ollama instance
  hosted  the Gemini API (requires GEMINI_API_KEY)`,
	}
}

// Execute runs the full pipeline.
func (it *PipelineController) Execute(cmd *cobra.Command, args []string) {
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
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// a dry run never builds, so it needs no model
	var backend repositories.SuggestionRepository
	if !dryRun {
		backend, err = it.backends.Get(ctx, settings)
		if err != nil {
			logger.Errorf("Failed to initialize suggestion backend: %v", err)
			return
		}
	}

	report, err := it.command.Execute(ctx, backend, commands.PipelineOptions{
		ProjectDir: dir,
		DryRun:     dryRun,
		Settings:   settings,
	})
	if err != nil {
		logger.Errorf("Pipeline failed: %v", err)
		return
	}

	printSuggestions(cmd, report.Suggestions)
}

// printSuggestions writes every suggestion to the command output, in order.
func printSuggestions(cmd *cobra.Command, suggestions []entities.Suggestion) {
	out := cmd.OutOrStdout()
	for _, suggestion := range suggestions {
		_, _ = fmt.Fprintf(out, "%s\n%s\n\n", suggestion.ErrorLine, suggestion.Text)
	}
}
