package pipeline

import (
	"context"
	"html"
	"regexp"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Template placeholders; whitespace inside the braces is optional.
var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*(Title|Content)\s*\}\}`)
	contentPlaceholder = regexp.MustCompile(`\{\{\s*Content\s*\}\}`)
)

// ValidateTemplate checks that tmpl has somewhere to put the content.
func ValidateTemplate(tmpl string) error {
	if !contentPlaceholder.MatchString(tmpl) {
		return ErrMissingContentPlaceholder
	}
	return nil
}

// ApplyTemplate replaces every {{ Title }} placeholder in tmpl with the
// HTML-escaped title and every {{ Content }} placeholder with content.
// Both are substituted in one pass, so neither value is scanned for
// placeholders. Returns ErrMissingTitle if title is blank.
func ApplyTemplate(tmpl, title, content string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingTitle
	}

	escapedTitle := html.EscapeString(title)
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		if placeholderPattern.FindStringSubmatch(m)[1] == "Title" {
			return escapedTitle
		}
		return content
	}), nil
}
