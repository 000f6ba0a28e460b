package entities

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Bump classes for a dependency version change.
const (
	BumpMajor   = "major"
	BumpMinor   = "minor"
	BumpPatch   = "patch"
	BumpNone    = "none"
	BumpUnknown = "unknown"
)

// DependencyChange is one rewritten entry of the manifest's dependencies.
type DependencyChange struct {
	Name string
	From string // declared constraint before the upgrade (e.g. "^1.0.0")
	To   string // latest version reported by the package manager
	Bump string
}

// ClassifyBump compares a declared constraint with the version it is being
// replaced by. Constraints that do not reduce to a plain version (git URLs,
// tags, "*") are classified as unknown.
func ClassifyBump(from, to string) string {
	current, err := semver.NewVersion(strings.TrimLeft(strings.TrimSpace(from), "^~=<> "))
	if err != nil {
		return BumpUnknown
	}
	latest, err := semver.NewVersion(strings.TrimSpace(to))
	if err != nil {
		return BumpUnknown
	}

	switch {
	case !latest.GreaterThan(current):
		return BumpNone
	case latest.Major() > current.Major():
		return BumpMajor
	case latest.Minor() > current.Minor():
		return BumpMinor
	default:
		return BumpPatch
	}
}
