package repositories

import (
	"context"
	"errors"
)

// ErrDirtyWorktree is returned when an upgrade would overwrite uncommitted work.
var ErrDirtyWorktree = errors.New("working tree has uncommitted changes, please commit or stash first")

// WorktreeRepository inspects the version-control state of a project.
type WorktreeRepository interface {
	// IsClean reports whether the project has no uncommitted changes. A
	// directory outside any repository is reported as clean.
	IsClean(ctx context.Context, projectDir string) (bool, error)
}
