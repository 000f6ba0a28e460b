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
	infraRepos "github.com/rios0rios0/upgrademe/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/upgrademe/test/infrastructure/repositorydoubles"
)

func TestBuildCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report success without writing a log", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		pm := &doubles.SpyPackageManagerRepository{ScriptResult: entities.CommandResult{Output: []byte("done")}}
		cmd := commands.NewBuildCommand(infraRepos.NewPackageManagerRegistry(pm))

		// when
		result := cmd.Execute(context.Background(), commands.BuildOptions{
			ProjectDir: dir, Script: "build", LogFile: entities.DefaultBuildLogFile,
		})

		// then
		assert.Equal(t, entities.BuildSucceeded, result.Outcome)
		assert.False(t, result.NeedsAnalysis())
		assert.Equal(t, []string{"build"}, pm.ScriptsRun)
		assert.NoFileExists(t, filepath.Join(dir, entities.DefaultBuildLogFile))
	})

	t.Run("should save the combined output of a failed build", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		output := "src/a.ts(1,1): error TS1: bad\n"
		pm := &doubles.SpyPackageManagerRepository{
			ScriptResult: entities.CommandResult{ExitCode: 2, Output: []byte(output)},
		}
		cmd := commands.NewBuildCommand(infraRepos.NewPackageManagerRegistry(pm))

		// when
		result := cmd.Execute(context.Background(), commands.BuildOptions{
			ProjectDir: dir, Script: "build", LogFile: entities.DefaultBuildLogFile,
		})

		// then
		assert.Equal(t, entities.BuildFailed, result.Outcome)
		assert.True(t, result.NeedsAnalysis())
		assert.Equal(t, 2, result.ExitCode)
		assert.Equal(t, filepath.Join(dir, entities.DefaultBuildLogFile), result.LogPath)
		saved, err := os.ReadFile(result.LogPath)
		require.NoError(t, err)
		assert.Equal(t, output, string(saved))
	})

	t.Run("should report an error when the build cannot be launched", func(t *testing.T) {
		t.Parallel()

		// given
		pm := &doubles.SpyPackageManagerRepository{ScriptErr: errors.New("executable file not found")}
		cmd := commands.NewBuildCommand(infraRepos.NewPackageManagerRegistry(pm))

		// when
		result := cmd.Execute(context.Background(), commands.BuildOptions{
			ProjectDir: t.TempDir(), Script: "build", LogFile: entities.DefaultBuildLogFile,
		})

		// then
		assert.Equal(t, entities.BuildErrored, result.Outcome)
		require.Error(t, result.Err)
		assert.False(t, result.NeedsAnalysis())
	})

	t.Run("should report an error when the log cannot be saved", func(t *testing.T) {
		t.Parallel()

		// given
		pm := &doubles.SpyPackageManagerRepository{ScriptResult: entities.CommandResult{ExitCode: 1}}
		cmd := commands.NewBuildCommand(infraRepos.NewPackageManagerRegistry(pm))

		// when
		result := cmd.Execute(context.Background(), commands.BuildOptions{
			ProjectDir: t.TempDir(), Script: "build", LogFile: filepath.Join("missing", "dir", "build.log"),
		})

		// then
		assert.Equal(t, entities.BuildErrored, result.Outcome)
		require.Error(t, result.Err)
	})
}
