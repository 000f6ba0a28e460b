package repositories

import (
	"os"
	"path/filepath"

	domainRepos "github.com/rios0rios0/upgrademe/internal/domain/repositories"
)

type lockfileBinding struct {
	lockfile       string
	packageManager domainRepos.PackageManagerRepository
}

// PackageManagerRegistry picks the package manager a project uses by looking
// for its lockfile, falling back to a default.
type PackageManagerRegistry struct {
	fallback domainRepos.PackageManagerRepository
	bindings []lockfileBinding
}

// NewPackageManagerRegistry creates a registry that answers with fallback
// when no registered lockfile is present.
func NewPackageManagerRegistry(fallback domainRepos.PackageManagerRepository) *PackageManagerRegistry {
	return &PackageManagerRegistry{fallback: fallback}
}

// Register binds a package manager to a lockfile name. Earlier
// registrations win when a project carries several lockfiles.
func (r *PackageManagerRegistry) Register(lockfile string, pm domainRepos.PackageManagerRepository) {
	r.bindings = append(r.bindings, lockfileBinding{lockfile: lockfile, packageManager: pm})
}

// Detect returns the package manager for the given project directory.
func (r *PackageManagerRegistry) Detect(projectDir string) domainRepos.PackageManagerRepository {
	for _, binding := range r.bindings {
		if _, err := os.Stat(filepath.Join(projectDir, binding.lockfile)); err == nil {
			return binding.packageManager
		}
	}
	return r.fallback
}

// Names returns the names of all known package managers.
func (r *PackageManagerRegistry) Names() []string {
	names := []string{r.fallback.Name()}
	for _, binding := range r.bindings {
		names = append(names, binding.packageManager.Name())
	}
	return names
}
