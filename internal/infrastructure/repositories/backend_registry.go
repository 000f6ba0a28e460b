package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	domainRepos "github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// ErrUnknownBackend is returned for a backend name nothing is registered under.
var ErrUnknownBackend = errors.New("unknown suggestion backend")

// BackendFactory builds and validates a suggestion backend from settings.
type BackendFactory func(ctx context.Context, settings *entities.Settings) (domainRepos.SuggestionRepository, error)

// BackendRegistry manages the suggestion backends that can be selected at startup.
type BackendRegistry struct {
	factories map[string]BackendFactory
}

// NewBackendRegistry creates an empty backend registry.
func NewBackendRegistry() *BackendRegistry {
	return &BackendRegistry{
		factories: make(map[string]BackendFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "local").
func (r *BackendRegistry) Register(name string, factory BackendFactory) {
	r.factories[name] = factory
}

// Get builds the backend selected by settings.Backend.
func (r *BackendRegistry) Get(
	ctx context.Context,
	settings *entities.Settings,
) (domainRepos.SuggestionRepository, error) {
	factory, ok := r.factories[settings.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, settings.Backend)
	}
	backend, err := factory(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", settings.Backend, err)
	}
	return backend, nil
}

// Names returns the registered backend names, sorted.
func (r *BackendRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
