//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// StubWorktreeRepository implements repositories.WorktreeRepository with a
// fixed answer.
type StubWorktreeRepository struct {
	Clean     bool
	Err       error
	CallCount int
}

var _ repositories.WorktreeRepository = (*StubWorktreeRepository)(nil)

func (s *StubWorktreeRepository) IsClean(_ context.Context, _ string) (bool, error) {
	s.CallCount++
	return s.Clean, s.Err
}
