package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories"
)

// Upgrade is the interface for the dependency upgrade stage.
type Upgrade interface {
	Execute(ctx context.Context, opts UpgradeOptions) (*entities.UpgradeResult, error)
}

// UpgradeOptions holds runtime options for a single upgrade.
type UpgradeOptions struct {
	ProjectDir           string
	DryRun               bool
	StrictInstall        bool // a failing install fails the stage
	RequireCleanWorktree bool
	Changelog            bool // record the upgrade in CHANGELOG.md
}

// UpgradeCommand rewrites the manifest's runtime dependencies to the latest
// versions the package manager reports and reinstalls.
type UpgradeCommand struct {
	packageManagers *infraRepos.PackageManagerRegistry
	worktree        repositories.WorktreeRepository
}

// NewUpgradeCommand creates a new UpgradeCommand.
func NewUpgradeCommand(
	packageManagers *infraRepos.PackageManagerRegistry,
	worktree repositories.WorktreeRepository,
) *UpgradeCommand {
	return &UpgradeCommand{
		packageManagers: packageManagers,
		worktree:        worktree,
	}
}

// Execute runs the upgrade in opts.ProjectDir.
func (it *UpgradeCommand) Execute(ctx context.Context, opts UpgradeOptions) (*entities.UpgradeResult, error) {
	manifest, err := entities.ReadManifest(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	if opts.RequireCleanWorktree {
		clean, statusErr := it.worktree.IsClean(ctx, opts.ProjectDir)
		if statusErr != nil {
			return nil, fmt.Errorf("failed to inspect working tree: %w", statusErr)
		}
		if !clean {
			return nil, repositories.ErrDirtyWorktree
		}
	}

	pm := it.packageManagers.Detect(opts.ProjectDir)
	logger.Infof("[upgrade] Using package manager: %s", pm.Name())

	report, err := pm.Outdated(ctx, opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to query outdated packages: %w", err)
	}
	logger.Infof("[upgrade] %d outdated packages reported", len(report))

	result := &entities.UpgradeResult{PackageManager: pm.Name()}

	if opts.DryRun {
		result.Changes = manifest.Plan(report)
		for _, change := range result.Changes {
			logger.Infof(
				"[upgrade] [DRY RUN] Would change %s from %s to %s (%s)",
				change.Name, change.From, change.To, change.Bump,
			)
		}
		return result, nil
	}

	changes, err := manifest.Apply(report)
	if err != nil {
		return nil, err
	}
	result.Changes = changes

	if len(changes) == 0 {
		logger.Info("[upgrade] Runtime dependencies are already at their latest versions")
	} else {
		for _, change := range changes {
			logger.Infof("[upgrade] %s: %s -> %s (%s)", change.Name, change.From, change.To, change.Bump)
		}
		if writeErr := manifest.Write(); writeErr != nil {
			return nil, writeErr
		}
		result.Written = true
	}

	if installErr := it.install(ctx, pm, opts); installErr != nil {
		return nil, installErr
	}
	result.Installed = true

	if opts.Changelog && len(changes) > 0 {
		recordChangelog(opts.ProjectDir, changes)
	}

	return result, nil
}

// errInstallFailed marks a non-zero install exit in strict mode.
var errInstallFailed = errors.New("install failed")

func (it *UpgradeCommand) install(
	ctx context.Context,
	pm repositories.PackageManagerRepository,
	opts UpgradeOptions,
) error {
	logger.Infof("[upgrade] Running %s install...", pm.Name())
	res, err := pm.Install(ctx, opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("failed to run %s install: %w", pm.Name(), err)
	}
	logger.Debugf("[upgrade] Install output:\n%s", res.Output)

	if res.Succeeded() {
		return nil
	}
	if opts.StrictInstall {
		return fmt.Errorf(
			"%w: %s install exited with status %d\nOutput:\n%s",
			errInstallFailed, pm.Name(), res.ExitCode, res.Output,
		)
	}
	logger.Warnf("[upgrade] %s install exited with status %d (continuing)", pm.Name(), res.ExitCode)
	return nil
}

// recordChangelog adds the upgraded dependencies to CHANGELOG.md when the
// project keeps one with an Unreleased section.
func recordChangelog(projectDir string, changes []entities.DependencyChange) {
	path := filepath.Join(projectDir, entities.ChangelogFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Debugf("[upgrade] No changelog to update: %v", err)
		return
	}

	updated, ok := entities.AddUnreleasedChanges(string(content), entities.ChangelogEntries(changes))
	if !ok {
		logger.Infof("[upgrade] %s has no Unreleased section, skipping", entities.ChangelogFileName)
		return
	}

	//nolint:gosec // changelog is a regular project file
	if writeErr := os.WriteFile(path, []byte(updated), 0o644); writeErr != nil {
		logger.Warnf("[upgrade] Failed to update %s: %v", entities.ChangelogFileName, writeErr)
		return
	}
	logger.Infof("[upgrade] Updated %s", entities.ChangelogFileName)
}
