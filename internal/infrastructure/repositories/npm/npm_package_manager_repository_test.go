//go:build unit

package npm_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/upgrademe/internal/infrastructure/repositories/npm"
)

// fakeCLI writes an executable shell script standing in for the package
// manager binary and returns its path.
func fakeCLI(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-npm")
	//nolint:gosec // test script must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestPackageManagerRepositoryOutdated(t *testing.T) {
	t.Parallel()

	t.Run("should parse the report even though the CLI exits with status 1", func(t *testing.T) {
		t.Parallel()

		// given
		bin := fakeCLI(t, `echo '{"left-pad": {"current": "1.0.0", "latest": "1.3.0"}}'
exit 1
`)
		repo := npm.NewPackageManagerRepository("npm", bin, []string{"outdated", "--json"})

		// when
		report, err := repo.Outdated(context.Background(), t.TempDir())

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", report["left-pad"].Latest)
	})

	t.Run("should return an empty report for empty output", func(t *testing.T) {
		t.Parallel()

		// given
		bin := fakeCLI(t, "exit 0\n")
		repo := npm.NewPackageManagerRepository("npm", bin, []string{"outdated", "--json"})

		// when
		report, err := repo.Outdated(context.Background(), t.TempDir())

		// then
		require.NoError(t, err)
		assert.Empty(t, report)
	})

	t.Run("should fail when the CLI exits non-zero without a report", func(t *testing.T) {
		t.Parallel()

		// given
		bin := fakeCLI(t, "echo 'npm ERR! missing script' >&2\nexit 1\n")
		repo := npm.NewPackageManagerRepository("npm", bin, []string{"outdated", "--json"})

		// when
		_, err := repo.Outdated(context.Background(), t.TempDir())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing script")
	})

	t.Run("should fail when the binary does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := npm.NewPackageManagerRepository("npm", filepath.Join(t.TempDir(), "absent"), []string{"outdated"})

		// when
		_, err := repo.Outdated(context.Background(), t.TempDir())

		// then
		require.Error(t, err)
	})
}

func TestPackageManagerRepositoryRunScript(t *testing.T) {
	t.Parallel()

	t.Run("should capture combined output and exit status", func(t *testing.T) {
		t.Parallel()

		// given
		bin := fakeCLI(t, `echo "running $1 $2"
echo "src/a.ts(1,1): error TS1: bad" >&2
exit 2
`)
		repo := npm.NewPackageManagerRepository("npm", bin, nil)

		// when
		result, err := repo.RunScript(context.Background(), t.TempDir(), "build")

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, result.ExitCode)
		assert.False(t, result.Succeeded())
		assert.Contains(t, string(result.Output), "running run build")
		assert.Contains(t, string(result.Output), "error TS1")
	})

	t.Run("should run in the project directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		bin := fakeCLI(t, "pwd\n")
		repo := npm.NewPackageManagerRepository("npm", bin, nil)

		// when
		result, err := repo.Install(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		resolved, _ := filepath.EvalSymlinks(dir)
		assert.Contains(t, string(result.Output), resolved)
	})

	t.Run("should name npm and pnpm repositories", func(t *testing.T) {
		t.Parallel()

		// given / when
		npmRepo := npm.NewNpmRepository()
		pnpmRepo := npm.NewPnpmRepository()

		// then
		assert.Equal(t, "npm", npmRepo.Name())
		assert.Equal(t, "pnpm", pnpmRepo.Name())
	})
}
