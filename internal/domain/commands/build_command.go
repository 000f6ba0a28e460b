package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	infraRepos "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories"
)

// Build is the interface for the build stage.
type Build interface {
	Execute(ctx context.Context, opts BuildOptions) entities.BuildResult
}

// BuildOptions holds runtime options for a single build.
type BuildOptions struct {
	ProjectDir string
	Script     string // package.json script, usually "build"
	LogFile    string // relative to ProjectDir
}

// BuildCommand runs the project's build script and saves the output of a
// failed build for the analyzer.
type BuildCommand struct {
	packageManagers *infraRepos.PackageManagerRegistry
}

// NewBuildCommand creates a new BuildCommand.
func NewBuildCommand(packageManagers *infraRepos.PackageManagerRegistry) *BuildCommand {
	return &BuildCommand{packageManagers: packageManagers}
}

// Execute builds the project and classifies the attempt.
func (it *BuildCommand) Execute(ctx context.Context, opts BuildOptions) entities.BuildResult {
	pm := it.packageManagers.Detect(opts.ProjectDir)
	logger.Infof("[build] Running %s run %s...", pm.Name(), opts.Script)

	res, err := pm.RunScript(ctx, opts.ProjectDir, opts.Script)
	if err != nil {
		logger.Errorf("[build] Failed to run the build: %v", err)
		return entities.BuildResult{
			Outcome: entities.BuildErrored,
			Err:     fmt.Errorf("failed to run %s run %s: %w", pm.Name(), opts.Script, err),
		}
	}

	output := string(res.Output)
	if res.Succeeded() {
		logger.Info("[build] Build successful!")
		return entities.BuildResult{Outcome: entities.BuildSucceeded, Output: output}
	}

	logger.Warnf("[build] Build failed with exit status %d", res.ExitCode)
	logger.Debugf("[build] Build output:\n%s", output)

	logPath := filepath.Join(opts.ProjectDir, opts.LogFile)
	//nolint:gosec // the log is meant to be read by the user
	if writeErr := os.WriteFile(logPath, res.Output, 0o644); writeErr != nil {
		logger.Errorf("[build] Failed to save build log: %v", writeErr)
		return entities.BuildResult{
			Outcome:  entities.BuildErrored,
			ExitCode: res.ExitCode,
			Output:   output,
			Err:      fmt.Errorf("failed to write build log %q: %w", logPath, writeErr),
		}
	}
	logger.Infof("[build] Build output saved to %s", logPath)

	return entities.BuildResult{
		Outcome:  entities.BuildFailed,
		ExitCode: res.ExitCode,
		Output:   output,
		LogPath:  logPath,
	}
}
