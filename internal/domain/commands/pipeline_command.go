package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// Pipeline is the interface for the full upgrade -> build -> analyze flow.
type Pipeline interface {
	Execute(
		ctx context.Context,
		backend repositories.SuggestionRepository,
		opts PipelineOptions,
	) (*entities.PipelineReport, error)
}

// PipelineOptions holds runtime options for a pipeline run.
type PipelineOptions struct {
	ProjectDir string
	DryRun     bool
	Settings   *entities.Settings
}

// PipelineCommand chains the three stages strictly in sequence.
type PipelineCommand struct {
	upgrade Upgrade
	build   Build
	analyze Analyze
}

// NewPipelineCommand creates a new PipelineCommand.
func NewPipelineCommand(upgrade Upgrade, build Build, analyze Analyze) *PipelineCommand {
	return &PipelineCommand{
		upgrade: upgrade,
		build:   build,
		analyze: analyze,
	}
}

// Execute upgrades, builds and, when the build fails, analyzes the build log.
// A failed upgrade stops the run before the build; a build that could not be
// run is returned as an error without analysis.
func (it *PipelineCommand) Execute(
	ctx context.Context,
	backend repositories.SuggestionRepository,
	opts PipelineOptions,
) (*entities.PipelineReport, error) {
	settings := opts.Settings
	if settings == nil {
		settings = entities.DefaultSettings()
	}
	report := &entities.PipelineReport{}

	upgradeResult, err := it.upgrade.Execute(ctx, UpgradeOptions{
		ProjectDir:           opts.ProjectDir,
		DryRun:               opts.DryRun,
		StrictInstall:        settings.Upgrade.StrictInstall,
		RequireCleanWorktree: settings.Upgrade.RequireCleanWorktree,
		Changelog:            settings.Upgrade.Changelog,
	})
	if err != nil {
		return report, fmt.Errorf("dependency upgrade failed: %w", err)
	}
	report.Upgrade = upgradeResult

	if opts.DryRun {
		logger.Info("[DRY RUN] Skipping build and analysis")
		return report, nil
	}

	buildResult := it.build.Execute(ctx, BuildOptions{
		ProjectDir: opts.ProjectDir,
		Script:     settings.Build.Script,
		LogFile:    settings.Build.LogFile,
	})
	report.Build = &buildResult

	switch buildResult.Outcome {
	case entities.BuildSucceeded:
		return report, nil
	case entities.BuildErrored:
		return report, fmt.Errorf("build could not be completed: %w", buildResult.Err)
	case entities.BuildFailed:
	}

	report.Suggestions = it.analyze.Execute(ctx, backend, AnalyzeOptions{
		LogPath:    buildResult.LogPath,
		ProjectDir: opts.ProjectDir,
	})
	return report, nil
}
