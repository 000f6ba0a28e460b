//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

// ManifestBuilder helps create package.json content with a fluent interface.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	name            string
	version         string
	dependencies    map[string]string
	devDependencies map[string]string
}

// NewManifestBuilder creates a new manifest builder with sensible defaults.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		name:            "test-project",
		version:         "1.0.0",
		dependencies:    map[string]string{},
		devDependencies: map[string]string{},
	}
}

// WithName sets the package name.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithDependency adds a runtime dependency.
func (b *ManifestBuilder) WithDependency(name, version string) *ManifestBuilder {
	b.dependencies[name] = version
	return b
}

// WithDevDependency adds a development dependency.
func (b *ManifestBuilder) WithDevDependency(name, version string) *ManifestBuilder {
	b.devDependencies[name] = version
	return b
}

// Build creates the manifest content (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildContent()
}

// BuildContent renders package.json with two-space indentation and sorted keys.
func (b *ManifestBuilder) BuildContent() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  \"name\": %q,\n", b.name)
	fmt.Fprintf(&sb, "  \"version\": %q", b.version)
	writeSection(&sb, "dependencies", b.dependencies)
	writeSection(&sb, "devDependencies", b.devDependencies)
	sb.WriteString("\n}\n")
	return sb.String()
}

// WriteTo writes package.json into dir and returns its path.
func (b *ManifestBuilder) WriteTo(dir string) (string, error) {
	path := filepath.Join(dir, entities.ManifestFileName)
	return path, os.WriteFile(path, []byte(b.BuildContent()), 0o600)
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-project"
	b.version = "1.0.0"
	b.dependencies = map[string]string{}
	b.devDependencies = map[string]string{}
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		version:         b.version,
		dependencies:    cloneVersions(b.dependencies),
		devDependencies: cloneVersions(b.devDependencies),
	}
}

func writeSection(sb *strings.Builder, key string, versions map[string]string) {
	if len(versions) == 0 {
		return
	}
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(sb, ",\n  %q: {", key)
	for i, name := range names {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(sb, "\n    %q: %q", name, versions[name])
	}
	sb.WriteString("\n  }")
}

func cloneVersions(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
