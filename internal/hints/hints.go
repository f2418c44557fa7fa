// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run 'mdsite init'"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-mdsite/") {
			hint += "; or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutput returns a hint when the output directory may not be cleaned.
func ForUnsafeOutput() string {
	return format("set build.outputDir or --output to a dedicated directory such as ./public")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return forAvailable(available, "none")
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	return forAvailable(available)
}

// ForMissingTitle returns a hint for pages rendered without a level-1 header.
func ForMissingTitle() string {
	return format("start the page with a '# Title' line, or use --fragment")
}

// ForMalformedHeader returns a hint for header lines without a space after the #s.
func ForMalformedHeader() string {
	return format("write '# Title' with a space, or escape the first # as \\#")
}

// ForUnknownHighlightStyle returns a hint for an unregistered chroma style.
func ForUnknownHighlightStyle() string {
	return format("try a chroma style such as github, monokai or dracula")
}

func forAvailable(available []string, extra ...string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(append(append([]string{}, available...), extra...), ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
