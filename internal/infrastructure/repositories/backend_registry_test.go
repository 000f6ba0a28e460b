//go:build unit

package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/upgrademe/test/infrastructure/repositorydoubles"
)

func TestBackendRegistryGet(t *testing.T) {
	t.Parallel()

	t.Run("should build the backend selected in settings", func(t *testing.T) {
		t.Parallel()

		// given
		echo := &doubles.EchoSuggestionRepository{}
		registry := infraRepos.NewBackendRegistry()
		registry.Register(entities.BackendLocal, func(
			_ context.Context, _ *entities.Settings,
		) (repositories.SuggestionRepository, error) {
			return echo, nil
		})
		settings := entities.DefaultSettings()
		settings.Backend = entities.BackendLocal

		// when
		backend, err := registry.Get(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Same(t, echo, backend)
	})

	t.Run("should reject an unregistered backend", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewBackendRegistry()
		settings := entities.DefaultSettings()

		// when
		_, err := registry.Get(context.Background(), settings)

		// then
		require.ErrorIs(t, err, infraRepos.ErrUnknownBackend)
	})

	t.Run("should wrap initialization errors", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewBackendRegistry()
		registry.Register(entities.BackendHosted, func(
			_ context.Context, _ *entities.Settings,
		) (repositories.SuggestionRepository, error) {
			return nil, entities.ErrMissingAPIKey
		})

		// when
		_, err := registry.Get(context.Background(), entities.DefaultSettings())

		// then
		require.ErrorIs(t, err, entities.ErrMissingAPIKey)
		assert.Contains(t, err.Error(), "failed to initialize hosted backend")
	})

	t.Run("should list backend names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewBackendRegistry()
		factory := func(_ context.Context, _ *entities.Settings) (repositories.SuggestionRepository, error) {
			return nil, errors.New("unused")
		}
		registry.Register("local", factory)
		registry.Register("hosted", factory)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"hosted", "local"}, names)
	})
}
