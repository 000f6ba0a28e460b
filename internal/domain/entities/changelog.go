package entities

import (
	"fmt"
	"strings"
)

// ChangelogFileName is the Keep-a-Changelog file updated after an upgrade.
const ChangelogFileName = "CHANGELOG.md"

const (
	unreleasedHeading = "## [Unreleased]"
	changedHeading    = "### Changed"
	releasePrefix     = "## ["
	bulletPrefix      = "- "
)

// ChangelogEntries renders one bullet per upgraded dependency.
func ChangelogEntries(changes []DependencyChange) []string {
	entries := make([]string, 0, len(changes))
	for _, change := range changes {
		entries = append(entries, fmt.Sprintf(
			"- changed the `%s` dependency from `%s` to `%s`",
			change.Name, change.From, change.To,
		))
	}
	return entries
}

// AddUnreleasedChanges appends bullets to the "### Changed" list of the
// "## [Unreleased]" section, creating the list when the section has none.
// The second return value is false when the content has no Unreleased
// section or there is nothing to add.
func AddUnreleasedChanges(content string, entries []string) (string, bool) {
	if len(entries) == 0 {
		return content, false
	}

	lines := strings.Split(content, "\n")
	unreleased := indexOfLine(lines, 0, len(lines), unreleasedHeading)
	if unreleased < 0 {
		return content, false
	}

	sectionEnd := len(lines)
	for i := unreleased + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), releasePrefix) {
			sectionEnd = i
			break
		}
	}

	var insertAt int
	var block []string
	if changed := indexOfLine(lines, unreleased+1, sectionEnd, changedHeading); changed >= 0 {
		insertAt = lastBulletAfter(lines, changed, sectionEnd) + 1
		block = entries
	} else {
		insertAt = unreleased + 1
		block = append([]string{"", changedHeading, ""}, entries...)
	}

	result := make([]string, 0, len(lines)+len(block))
	result = append(result, lines[:insertAt]...)
	result = append(result, block...)
	result = append(result, lines[insertAt:]...)
	return strings.Join(result, "\n"), true
}

func indexOfLine(lines []string, from, to int, want string) int {
	for i := from; i < to; i++ {
		if strings.TrimSpace(lines[i]) == want {
			return i
		}
	}
	return -1
}

// lastBulletAfter returns the last bullet of the list that starts below
// heading, skipping blank lines between bullets.
func lastBulletAfter(lines []string, heading, end int) int {
	last := heading
	for i := heading + 1; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, bulletPrefix):
			last = i
		default:
			return last
		}
	}
	return last
}
