package repositories

import "context"

// SuggestionRepository turns an error+snippet prompt into remediation text.
// Implementations are chosen once at startup (local model or hosted API).
type SuggestionRepository interface {
	// Name returns the backend identifier used in logs and placeholders.
	Name() string

	// Suggest generates a suggestion for the prompt.
	Suggest(ctx context.Context, prompt string) (string, error)
}
