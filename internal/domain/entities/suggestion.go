package entities

import "strings"

// ErrorMarker is the literal, case-sensitive substring that makes a build log
// line an error line.
const ErrorMarker = "error"

// Suggestion is the model's answer for one error line of the build log.
type Suggestion struct {
	ErrorLine string
	Snippet   Snippet
	Prompt    string
	Text      string
	Failed    bool // Text is the placeholder because the backend failed
}

// ErrorLines returns the lines of a build log that contain ErrorMarker, in
// log order.
func ErrorLines(log string) []string {
	var selected []string
	for _, line := range SplitLines(log) {
		if strings.Contains(line, ErrorMarker) {
			selected = append(selected, line)
		}
	}
	return selected
}

// SuggestionPlaceholder is the text recorded when a backend cannot produce a
// suggestion.
func SuggestionPlaceholder(backend string) string {
	return "Error generating suggestion from " + backend + "."
}
