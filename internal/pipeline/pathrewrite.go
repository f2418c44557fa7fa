package pipeline

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var anchorSelector = cascadia.MustCompile("a[href]")

// RewriteMarkdownLinks points relative a[href] links at .md/.markdown files
// to the .html pages a site build generates for them. The native engine does
// this while rewriting links (LinkOptions.MarkdownToHTML); this DOM pass
// serves engines that emit finished HTML, such as goldmark.
//
// Does NOT rewrite:
//   - img[src] and other embedded resources (never generated from Markdown)
//   - URLs with a scheme or protocol-relative URLs
//   - anchors within the same page
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	if !strings.Contains(htmlContent, ".md") && !strings.Contains(htmlContent, ".markdown") {
		return htmlContent, nil
	}

	// Parse HTML - detect if full document or fragment
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	for _, a := range anchorSelector.MatchAll(doc) {
		for i, attr := range a.Attr {
			if attr.Key == "href" {
				a.Attr[i].Val = markdownTargetToHTML(attr.Val)
			}
		}
	}

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
