package repositories

import (
	"context"

	"go.uber.org/dig"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	domainRepos "github.com/rios0rios0/upgrademe/internal/domain/repositories"
	geminiRepo "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories/gemini"
	gitRepo "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories/git"
	npmRepo "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories/npm"
	ollamaRepo "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories/ollama"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// npm is the default; pnpm is picked when its lockfile is present
	if err := container.Provide(func() *PackageManagerRegistry {
		reg := NewPackageManagerRegistry(npmRepo.NewNpmRepository())
		reg.Register("pnpm-lock.yaml", npmRepo.NewPnpmRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() *BackendRegistry {
		reg := NewBackendRegistry()
		reg.Register(entities.BackendLocal, func(
			ctx context.Context, settings *entities.Settings,
		) (domainRepos.SuggestionRepository, error) {
			return ollamaRepo.NewSuggestionRepository(ctx, settings.Local)
		})
		reg.Register(entities.BackendHosted, func(
			ctx context.Context, settings *entities.Settings,
		) (domainRepos.SuggestionRepository, error) {
			return geminiRepo.NewSuggestionRepository(ctx, settings.Hosted, settings.HostedAPIKey())
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.WorktreeRepository {
		return gitRepo.NewWorktreeRepository()
	}); err != nil {
		return err
	}

	return nil
}
