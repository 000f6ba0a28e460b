//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgrademe/internal/domain/commands"
	"github.com/rios0rios0/upgrademe/internal/domain/entities"
	doubles "github.com/rios0rios0/upgrademe/test/infrastructure/repositorydoubles"
)

const twoErrorLog = "> tsc\n" +
	"src/a.ts(3,1): error TS1: first\n" +
	"compiling...\n" +
	"src/b.ts(4,1): error TS2: second\n"

func writeBuildLog(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, entities.DefaultBuildLogFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return dir, path
}

func TestAnalyzeCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should produce one suggestion per error line in log order", func(t *testing.T) {
		t.Parallel()

		// given
		dir, logPath := writeBuildLog(t, twoErrorLog)
		backend := &doubles.EchoSuggestionRepository{Prefix: "fix: "}
		cmd := commands.NewAnalyzeCommand()

		// when
		suggestions := cmd.Execute(context.Background(), backend, commands.AnalyzeOptions{
			LogPath: logPath, ProjectDir: dir,
		})

		// then
		require.Len(t, suggestions, 2)
		assert.Equal(t, "src/a.ts(3,1): error TS1: first", suggestions[0].ErrorLine)
		assert.Equal(t, "src/b.ts(4,1): error TS2: second", suggestions[1].ErrorLine)
		assert.Equal(t, "fix: "+suggestions[0].Prompt, suggestions[0].Text)
		assert.Contains(t, suggestions[0].Prompt, "**Error:** src/a.ts(3,1): error TS1: first")
		assert.Len(t, backend.Prompts, 2)
		assert.False(t, suggestions[1].Failed)
	})

	t.Run("should include the source window in the prompt", func(t *testing.T) {
		t.Parallel()

		// given
		dir, logPath := writeBuildLog(t, "src/a.ts(1,1): error TS1: first\n")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.ts"), []byte("const x: number = 'a';\n"), 0o600))
		backend := &doubles.EchoSuggestionRepository{}

		// when
		suggestions := commands.NewAnalyzeCommand().Execute(context.Background(), backend, commands.AnalyzeOptions{
			LogPath: logPath, ProjectDir: dir,
		})

		// then
		require.Len(t, suggestions, 1)
		assert.Equal(t, []string{"const x: number = 'a';"}, suggestions[0].Snippet.Lines)
		assert.Contains(t, suggestions[0].Prompt, "```typescript\nconst x: number = 'a';\n```")
	})

	t.Run("should record the placeholder for a failing line and keep going", func(t *testing.T) {
		t.Parallel()

		// given
		dir, logPath := writeBuildLog(t, twoErrorLog)
		backend := &doubles.FailingSuggestionRepository{Err: errors.New("quota"), FailOn: map[int]bool{0: true}}

		// when
		suggestions := commands.NewAnalyzeCommand().Execute(context.Background(), backend, commands.AnalyzeOptions{
			LogPath: logPath, ProjectDir: dir,
		})

		// then
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Error generating suggestion from failing.", suggestions[0].Text)
		assert.True(t, suggestions[0].Failed)
		assert.Equal(t, "ok", suggestions[1].Text)
		assert.False(t, suggestions[1].Failed)
	})

	t.Run("should recover from a panicking backend", func(t *testing.T) {
		t.Parallel()

		// given
		dir, logPath := writeBuildLog(t, twoErrorLog)
		backend := &doubles.PanickingSuggestionRepository{}

		// when
		suggestions := commands.NewAnalyzeCommand().Execute(context.Background(), backend, commands.AnalyzeOptions{
			LogPath: logPath, ProjectDir: dir,
		})

		// then
		require.Len(t, suggestions, 2)
		for _, suggestion := range suggestions {
			assert.True(t, suggestion.Failed)
			assert.Equal(t, "Error generating suggestion from panicking.", suggestion.Text)
		}
	})

	t.Run("should return nothing when the log is missing", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		backend := &doubles.EchoSuggestionRepository{}

		// when
		suggestions := commands.NewAnalyzeCommand().Execute(context.Background(), backend, commands.AnalyzeOptions{
			LogPath: filepath.Join(dir, entities.DefaultBuildLogFile), ProjectDir: dir,
		})

		// then
		assert.NotNil(t, suggestions)
		assert.Empty(t, suggestions)
		assert.Empty(t, backend.Prompts)
	})

	t.Run("should return nothing when the log has no error lines", func(t *testing.T) {
		t.Parallel()

		// given
		dir, logPath := writeBuildLog(t, "Error: capital E only\n")
		backend := &doubles.EchoSuggestionRepository{}

		// when
		suggestions := commands.NewAnalyzeCommand().Execute(context.Background(), backend, commands.AnalyzeOptions{
			LogPath: logPath, ProjectDir: dir,
		})

		// then
		assert.Empty(t, suggestions)
	})
}
