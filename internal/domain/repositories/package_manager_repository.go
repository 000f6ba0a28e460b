package repositories

import (
	"context"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// PackageManagerRepository abstracts the package manager CLI (npm, pnpm) run
// inside a project directory.
type PackageManagerRepository interface {
	// Name returns the package manager identifier (e.g. "npm").
	Name() string

	// Outdated queries the machine-readable outdated report. A non-zero exit
	// that still produced a report is not an error.
	Outdated(ctx context.Context, projectDir string) (entities.OutdatedReport, error)

	// Install reinstalls dependencies. The error is only set when the CLI
	// could not be started; exit codes are reported in the result.
	Install(ctx context.Context, projectDir string) (entities.CommandResult, error)

	// RunScript runs a package.json script and captures combined output.
	RunScript(ctx context.Context, projectDir, script string) (entities.CommandResult, error)
}
