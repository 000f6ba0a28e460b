//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgrademe/internal/domain/commands"
	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// StubUpgradeCommand is a stub implementation of commands.Upgrade.
type StubUpgradeCommand struct {
	ExecuteCallCount int
	Result           *entities.UpgradeResult
	ExecuteErr       error
	LastOpts         commands.UpgradeOptions
}

var _ commands.Upgrade = (*StubUpgradeCommand)(nil)

func (s *StubUpgradeCommand) Execute(
	_ context.Context,
	opts commands.UpgradeOptions,
) (*entities.UpgradeResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubBuildCommand is a stub implementation of commands.Build.
type StubBuildCommand struct {
	ExecuteCallCount int
	Result           entities.BuildResult
	LastOpts         commands.BuildOptions
}

var _ commands.Build = (*StubBuildCommand)(nil)

func (s *StubBuildCommand) Execute(_ context.Context, opts commands.BuildOptions) entities.BuildResult {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result
}

// StubAnalyzeCommand is a stub implementation of commands.Analyze.
type StubAnalyzeCommand struct {
	ExecuteCallCount int
	Suggestions      []entities.Suggestion
	LastBackend      repositories.SuggestionRepository
	LastOpts         commands.AnalyzeOptions
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context,
	backend repositories.SuggestionRepository,
	opts commands.AnalyzeOptions,
) []entities.Suggestion {
	s.ExecuteCallCount++
	s.LastBackend = backend
	s.LastOpts = opts
	return s.Suggestions
}
