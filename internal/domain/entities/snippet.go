package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// SnippetContext is how many lines are taken on each side of a reported line.
const SnippetContext = 5

var (
	// "src/app.ts(10,5): error ..." -> "src/app.ts"
	fileReferencePattern = regexp.MustCompile(`([^\s(]+)\(`)
	// matched from the file reference's "(" onwards
	lineNumberPattern = regexp.MustCompile(`^\((\d+)`)

	errNoFileReference = errors.New("no file reference in error line")
	errNoLineNumber    = errors.New("no line number after file reference")
)

// Snippet is the window of source lines around a reported error location.
type Snippet struct {
	File  string   // path as written in the error line, relative to the project
	Line  int      // reported line number
	Start int      // 0-based index of Lines[0] in the file
	Lines []string
}

// IsEmpty reports whether the snippet holds no source lines.
func (s Snippet) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Text joins the snippet lines with newlines.
func (s Snippet) Text() string {
	return strings.Join(s.Lines, "\n")
}

// ExtractSnippet returns the source lines around the location an error line
// points at. It never fails: a missing file reference, an unparseable line
// number or an unreadable file all give an empty snippet.
func ExtractSnippet(projectDir, errorLine string) Snippet {
	snippet, err := readSnippet(projectDir, errorLine)
	if err != nil {
		logger.Debugf("[analyze] No snippet for %q: %v", errorLine, err)
		return Snippet{}
	}
	return snippet
}

// LocateError parses the file reference and line number out of an error
// line such as "src/app.ts(10,5): error TS2345: ...".
func LocateError(errorLine string) (string, int, error) {
	loc := fileReferencePattern.FindStringSubmatchIndex(errorLine)
	if loc == nil {
		return "", 0, errNoFileReference
	}
	file := errorLine[loc[2]:loc[3]]

	match := lineNumberPattern.FindStringSubmatch(errorLine[loc[3]:])
	if match == nil {
		return "", 0, errNoLineNumber
	}
	line, err := strconv.Atoi(match[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid line number %q: %w", match[1], err)
	}
	return file, line, nil
}

func readSnippet(projectDir, errorLine string) (Snippet, error) {
	file, line, err := LocateError(errorLine)
	if err != nil {
		return Snippet{}, err
	}

	content, err := os.ReadFile(filepath.Join(projectDir, file))
	if err != nil {
		return Snippet{}, fmt.Errorf("failed to read %q: %w", file, err)
	}

	lines := SplitLines(string(content))
	start, end := snippetWindow(line, len(lines))
	if start >= end {
		return Snippet{File: file, Line: line, Start: start}, nil
	}

	window := make([]string, end-start)
	copy(window, lines[start:end])
	return Snippet{File: file, Line: line, Start: start, Lines: window}, nil
}

// snippetWindow computes [max(0, line-5), min(line+5, total)) without
// overflowing on absurd line numbers.
func snippetWindow(line, total int) (int, int) {
	start := max(0, line-SnippetContext)
	end := total
	if line < total-SnippetContext {
		end = line + SnippetContext
	}
	return start, end
}

// SplitLines splits text on \n, \r\n and \r. A single trailing line break
// does not produce an extra empty line; empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
