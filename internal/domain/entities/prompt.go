package entities

import (
	"path/filepath"
	"strings"
)

const defaultFenceLanguage = "typescript"

var fenceLanguages = map[string]string{
	".ts":  "typescript",
	".tsx": "typescript",
	".mts": "typescript",
	".cts": "typescript",
	".js":  "javascript",
	".jsx": "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".vue": "vue",
}

// BuildPrompt frames an error line and its snippet as a request for a fix.
func BuildPrompt(errorLine string, snippet Snippet) string {
	var sb strings.Builder
	sb.WriteString("**Error:** ")
	sb.WriteString(errorLine)
	sb.WriteString("\n**Code Snippet:**\n```")
	sb.WriteString(fenceLanguage(snippet.File))
	sb.WriteString("\n")
	if !snippet.IsEmpty() {
		sb.WriteString(snippet.Text())
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
	sb.WriteString("**Instruction:** How can I resolve this error?\n")
	return sb.String()
}

func fenceLanguage(file string) string {
	if lang, ok := fenceLanguages[strings.ToLower(filepath.Ext(file))]; ok {
		return lang
	}
	return defaultFenceLanguage
}
