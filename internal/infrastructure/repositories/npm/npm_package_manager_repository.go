package npm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

const (
	pkgMgrNpm  = "npm"
	pkgMgrPnpm = "pnpm"
)

// PackageManagerRepository drives a Node.js package manager CLI. npm and pnpm
// share the install/run verbs and differ in how the JSON outdated report is
// requested.
type PackageManagerRepository struct {
	name         string
	binary       string
	outdatedArgs []string
}

// NewNpmRepository creates a repository backed by the npm CLI.
func NewNpmRepository() *PackageManagerRepository {
	return NewPackageManagerRepository(pkgMgrNpm, pkgMgrNpm, []string{"outdated", "--json"})
}

// NewPnpmRepository creates a repository backed by the pnpm CLI.
func NewPnpmRepository() *PackageManagerRepository {
	return NewPackageManagerRepository(pkgMgrPnpm, pkgMgrPnpm, []string{"outdated", "--format", "json"})
}

// NewPackageManagerRepository creates a repository running binary for the
// package manager called name.
func NewPackageManagerRepository(name, binary string, outdatedArgs []string) *PackageManagerRepository {
	return &PackageManagerRepository{
		name:         name,
		binary:       binary,
		outdatedArgs: outdatedArgs,
	}
}

func (it *PackageManagerRepository) Name() string { return it.name }

// Outdated runs the outdated query. npm exits with status 1 whenever
// something is outdated, so the exit status only matters when no report was
// printed.
func (it *PackageManagerRepository) Outdated(
	ctx context.Context,
	projectDir string,
) (entities.OutdatedReport, error) {
	cmd := exec.CommandContext(ctx, it.binary, it.outdatedArgs...)
	cmd.Dir = projectDir

	stdout, err := cmd.Output()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s %s: %w", it.binary, strings.Join(it.outdatedArgs, " "), err)
	}

	if exitErr != nil && len(strings.TrimSpace(string(stdout))) == 0 {
		return nil, fmt.Errorf(
			"%s outdated exited with status %d: %s",
			it.binary, exitErr.ExitCode(), strings.TrimSpace(string(exitErr.Stderr)),
		)
	}

	report, parseErr := entities.ParseOutdatedReport(stdout)
	if parseErr != nil {
		return nil, parseErr
	}
	logger.Debugf("[%s] Outdated report: %d entries", it.name, len(report))
	return report, nil
}

// Install runs "<binary> install".
func (it *PackageManagerRepository) Install(
	ctx context.Context,
	projectDir string,
) (entities.CommandResult, error) {
	return it.run(ctx, projectDir, "install")
}

// RunScript runs "<binary> run <script>".
func (it *PackageManagerRepository) RunScript(
	ctx context.Context,
	projectDir, script string,
) (entities.CommandResult, error) {
	return it.run(ctx, projectDir, "run", script)
}

// run executes the CLI and captures combined output. A non-zero exit is
// reported through the result; only launch failures are errors.
func (it *PackageManagerRepository) run(
	ctx context.Context,
	projectDir string,
	args ...string,
) (entities.CommandResult, error) {
	cmd := exec.CommandContext(ctx, it.binary, args...)
	cmd.Dir = projectDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return entities.CommandResult{Output: output, ExitCode: exitErr.ExitCode()}, nil
		}
		return entities.CommandResult{Output: output}, fmt.Errorf(
			"failed to run %s %s: %w", it.binary, strings.Join(args, " "), err,
		)
	}
	return entities.CommandResult{Output: output}, nil
}
