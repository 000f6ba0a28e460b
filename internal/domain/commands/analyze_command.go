package commands

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	"github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

// Analyze is the interface for the error analysis stage.
type Analyze interface {
	Execute(
		ctx context.Context,
		backend repositories.SuggestionRepository,
		opts AnalyzeOptions,
	) []entities.Suggestion
}

// AnalyzeOptions holds runtime options for a single analysis.
type AnalyzeOptions struct {
	LogPath    string
	ProjectDir string // root that file references in the log are relative to
}

// AnalyzeCommand asks a suggestion backend for a fix for every error line of
// a build log.
type AnalyzeCommand struct{}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{}
}

// Execute returns one suggestion per error line, in log order. A missing or
// unreadable log yields no suggestions.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	backend repositories.SuggestionRepository,
	opts AnalyzeOptions,
) []entities.Suggestion {
	if backend == nil {
		logger.Error("[analyze] No suggestion backend configured")
		return []entities.Suggestion{}
	}

	content, err := os.ReadFile(opts.LogPath)
	if err != nil {
		logger.Errorf("[analyze] Failed to read build log: %v", err)
		return []entities.Suggestion{}
	}

	errorLines := entities.ErrorLines(string(content))
	logger.Infof("[analyze] Found %d error lines in %s", len(errorLines), opts.LogPath)

	suggestions := make([]entities.Suggestion, 0, len(errorLines))
	for _, line := range errorLines {
		suggestions = append(suggestions, it.analyzeLine(ctx, backend, opts.ProjectDir, line))
	}
	return suggestions
}

// analyzeLine is the per-line recovery boundary: any failure while extracting
// the snippet or calling the backend degrades to the placeholder text.
func (it *AnalyzeCommand) analyzeLine(
	ctx context.Context,
	backend repositories.SuggestionRepository,
	projectDir, line string,
) (suggestion entities.Suggestion) {
	suggestion.ErrorLine = line
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[analyze] Recovered from panic while analyzing %q: %v", line, r)
			suggestion.Text = entities.SuggestionPlaceholder(backend.Name())
			suggestion.Failed = true
		}
	}()

	logger.Infof("[analyze] Suggestion for: %s", line)
	suggestion.Snippet = entities.ExtractSnippet(projectDir, line)
	suggestion.Prompt = entities.BuildPrompt(line, suggestion.Snippet)
	logger.Debugf("[analyze] Prompt:\n%s", suggestion.Prompt)

	text, err := backend.Suggest(ctx, suggestion.Prompt)
	if err != nil {
		logger.Warnf("[analyze] %s failed to generate a suggestion: %v", backend.Name(), err)
		suggestion.Text = entities.SuggestionPlaceholder(backend.Name())
		suggestion.Failed = true
		return suggestion
	}

	logger.Debugf("[analyze] Suggestion: %s", text)
	suggestion.Text = text
	return suggestion
}
