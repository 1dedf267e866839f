package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DetermineFileType tags a generated file for API responses when the
// extension alone has to tell the story.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	ext := filepath.Ext(lowerFilename)
	switch ext {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".ts":
		return "TypeScript"
	case ".tsx":
		return "TSX"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".txt":
		return "Text"
	case ".sh":
		return "Shell"
	case ".bat":
		return "Batch"
	case ".svg":
		return "SVG"
	default:
		base := filepath.Base(lowerFilename)
		if strings.Contains(base, "tailwind.config") || strings.Contains(base, "postcss.config") || strings.Contains(base, "vite.config") {
			return "Config"
		}
		return "Unknown"
	}
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

// SanitizeName reduces a user-supplied name to filesystem-safe characters.
func SanitizeName(name string) string {
	return unsafeNameRe.ReplaceAllString(strings.TrimSpace(name), "_")
}
