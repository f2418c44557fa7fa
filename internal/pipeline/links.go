package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// Inline link or image: optional "!", [text], (url). Brackets in the text and
// whitespace or parentheses in the url make the match fail, leaving the
// source as literal text.
var linkPattern = regexp.MustCompile(`(!?)\[([^\[\]]*)\]\(([^()\s]*)\)`)

// LinkOptions configures the link and image rewriter.
type LinkOptions struct {
	// MarkdownToHTML points relative links at .md/.markdown files to the
	// .html page the site build generates for them. Images are left alone.
	MarkdownToHTML bool
}

// Rewrite substitutes Markdown links with <a href=URL>text</a> and images
// with <img src=URL alt=ALT> in a single pass over line.
func (o LinkOptions) Rewrite(line string) string {
	return linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		sub := linkPattern.FindStringSubmatch(match)
		text, target := sub[2], sub[3]
		if sub[1] == "!" {
			return "<img src=" + attrValue(target) + " alt=" + attrValue(text) + ">"
		}
		if o.MarkdownToHTML {
			target = markdownTargetToHTML(target)
		}
		return "<a href=" + attrValue(target) + ">" + text + "</a>"
	})
}

// attrValue writes attribute values bare when they are safe unquoted, and
// double-quoted and escaped otherwise.
func attrValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\"'=<>`") {
		return v
	}
	return `"` + html.EscapeString(v) + `"`
}

// markdownTargetToHTML maps "page.md", "dir/page.markdown#part" and the like
// to their .html counterparts. URLs with a scheme are left alone.
func markdownTargetToHTML(target string) string {
	path, suffix := target, ""
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		path, suffix = target[:i], target[i:]
	}
	if strings.Contains(path, ":") || strings.HasPrefix(path, "//") {
		return target
	}

	for _, ext := range []string{".md", ".markdown"} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext) + ".html" + suffix
		}
	}
	return target
}
