package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// WorktreeRepository reads working-tree status with go-git.
type WorktreeRepository struct{}

// NewWorktreeRepository creates a new WorktreeRepository.
func NewWorktreeRepository() *WorktreeRepository {
	return &WorktreeRepository{}
}

// IsClean reports whether the repository containing projectDir has no
// modified, staged or untracked files.
func (it *WorktreeRepository) IsClean(_ context.Context, projectDir string) (bool, error) {
	//nolint:exhaustruct // only parent-directory discovery is needed
	repo, err := gogit.PlainOpenWithOptions(projectDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			logger.Debugf("[git] %s is not inside a git repository", projectDir)
			return true, nil
		}
		return false, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}
	return status.IsClean(), nil
}
