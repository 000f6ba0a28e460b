//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// EchoSuggestionRepository answers every prompt with a fixed prefix followed
// by the prompt, and records the prompts it received.
type EchoSuggestionRepository struct {
	Prefix  string
	Prompts []string
}

var _ repositories.SuggestionRepository = (*EchoSuggestionRepository)(nil)

func (e *EchoSuggestionRepository) Name() string { return "echo" }

func (e *EchoSuggestionRepository) Suggest(_ context.Context, prompt string) (string, error) {
	e.Prompts = append(e.Prompts, prompt)
	return e.Prefix + prompt, nil
}

// FailingSuggestionRepository returns Err for the prompts whose index is in
// FailOn (all prompts when FailOn is empty) and "ok" otherwise.
type FailingSuggestionRepository struct {
	Err    error
	FailOn map[int]bool
	calls  int
}

var _ repositories.SuggestionRepository = (*FailingSuggestionRepository)(nil)

func (f *FailingSuggestionRepository) Name() string { return "failing" }

func (f *FailingSuggestionRepository) Suggest(_ context.Context, _ string) (string, error) {
	index := f.calls
	f.calls++
	if len(f.FailOn) == 0 || f.FailOn[index] {
		return "", f.Err
	}
	return "ok", nil
}

// PanickingSuggestionRepository panics on every call.
type PanickingSuggestionRepository struct{}

var _ repositories.SuggestionRepository = (*PanickingSuggestionRepository)(nil)

func (p *PanickingSuggestionRepository) Name() string { return "panicking" }

func (p *PanickingSuggestionRepository) Suggest(_ context.Context, _ string) (string, error) {
	panic("backend exploded")
}
