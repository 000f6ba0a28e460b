//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// SpyPackageManagerRepository implements repositories.PackageManagerRepository
// as a configurable spy.
type SpyPackageManagerRepository struct {
	// --- identity ---
	ManagerName string

	// --- Outdated ---
	Report        entities.OutdatedReport
	OutdatedErr   error
	OutdatedCalls int

	// --- Install ---
	InstallResult entities.CommandResult
	InstallErr    error
	InstallCalls  int

	// --- RunScript ---
	ScriptResult  entities.CommandResult
	ScriptErr     error
	ScriptsRun    []string
	LastScriptDir string
}

var _ repositories.PackageManagerRepository = (*SpyPackageManagerRepository)(nil)

func (s *SpyPackageManagerRepository) Name() string {
	if s.ManagerName == "" {
		return "npm"
	}
	return s.ManagerName
}

func (s *SpyPackageManagerRepository) Outdated(_ context.Context, _ string) (entities.OutdatedReport, error) {
	s.OutdatedCalls++
	return s.Report, s.OutdatedErr
}

func (s *SpyPackageManagerRepository) Install(_ context.Context, _ string) (entities.CommandResult, error) {
	s.InstallCalls++
	return s.InstallResult, s.InstallErr
}

func (s *SpyPackageManagerRepository) RunScript(
	_ context.Context, projectDir, script string,
) (entities.CommandResult, error) {
	s.ScriptsRun = append(s.ScriptsRun, script)
	s.LastScriptDir = projectDir
	return s.ScriptResult, s.ScriptErr
}
