//go:build unit

package entities_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// writeNumberedSource writes a file whose i-th line (0-based) is "line i".
func writeNumberedSource(t *testing.T, dir, name string, total int) {
	t.Helper()
	lines := make([]string, total)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
}

func TestLocateError(t *testing.T) {
	t.Parallel()

	t.Run("should parse a TypeScript compiler location", func(t *testing.T) {
		t.Parallel()

		// given
		line := "src/app.ts(10,5): error TS2345: Argument of type 'string' is not assignable."

		// when
		file, number, err := entities.LocateError(line)

		// then
		require.NoError(t, err)
		assert.Equal(t, "src/app.ts", file)
		assert.Equal(t, 10, number)
	})

	t.Run("should fail without a parenthesized file reference", func(t *testing.T) {
		t.Parallel()

		// given
		line := "npm ERR! error code ELIFECYCLE"

		// when
		_, _, err := entities.LocateError(line)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the parenthesis holds no number", func(t *testing.T) {
		t.Parallel()

		// given
		line := "error in foo(bar)"

		// when
		_, _, err := entities.LocateError(line)

		// then
		require.Error(t, err)
	})
}

func TestExtractSnippet(t *testing.T) {
	t.Parallel()

	t.Run("should take five lines on each side of the reported line", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeNumberedSource(t, dir, "src/app.ts", 30)

		// when
		snippet := entities.ExtractSnippet(dir, "src/app.ts(10,5): error TS2345: bad")

		// then
		assert.Equal(t, "src/app.ts", snippet.File)
		assert.Equal(t, 10, snippet.Line)
		assert.Equal(t, 5, snippet.Start)
		require.Len(t, snippet.Lines, 10)
		assert.Equal(t, "line 5", snippet.Lines[0])
		assert.Equal(t, "line 14", snippet.Lines[9])
	})

	t.Run("should clamp the window at the start of the file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeNumberedSource(t, dir, "a.ts", 30)

		// when
		snippet := entities.ExtractSnippet(dir, "a.ts(0,1): error TS1: bad")

		// then
		assert.Equal(t, []string{"line 0", "line 1", "line 2", "line 3", "line 4"}, snippet.Lines)
	})

	t.Run("should clamp the window at the end of the file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeNumberedSource(t, dir, "a.ts", 12)

		// when
		snippet := entities.ExtractSnippet(dir, "a.ts(14,1): error TS1: bad")

		// then
		assert.Equal(t, []string{"line 9", "line 10", "line 11"}, snippet.Lines)
	})

	t.Run("should be empty when the line is far past the end of the file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeNumberedSource(t, dir, "a.ts", 3)

		// when
		snippet := entities.ExtractSnippet(dir, "a.ts(99999999999,1): error TS1: bad")

		// then
		assert.True(t, snippet.IsEmpty())
	})

	t.Run("should be empty when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		snippet := entities.ExtractSnippet(dir, "missing.ts(3,1): error TS1: bad")

		// then
		assert.True(t, snippet.IsEmpty())
	})

	t.Run("should be empty when the line has no location", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		snippet := entities.ExtractSnippet(dir, "error: something went wrong")

		// then
		assert.Equal(t, entities.Snippet{}, snippet)
	})

	t.Run("should give the same snippet when called twice", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeNumberedSource(t, dir, "a.ts", 20)
		line := "a.ts(7,2): error TS1: bad"

		// when
		first := entities.ExtractSnippet(dir, line)
		second := entities.ExtractSnippet(dir, line)

		// then
		assert.Equal(t, first, second)
	})
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	t.Run("should normalize line endings and drop one trailing break", func(t *testing.T) {
		t.Parallel()

		// given
		text := "a\r\nb\rc\n"

		// when
		lines := entities.SplitLines(text)

		// then
		assert.Equal(t, []string{"a", "b", "c"}, lines)
	})

	t.Run("should return no lines for empty text", func(t *testing.T) {
		t.Parallel()

		// given
		text := ""

		// when
		lines := entities.SplitLines(text)

		// then
		assert.Empty(t, lines)
	})
}
