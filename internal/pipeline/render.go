package pipeline

import (
	"html"
	"strconv"
	"strings"
)

// RenderBlock maps a tagged block to its HTML markup.
func RenderBlock(tb TaggedBlock) string {
	switch {
	case tb.Tag.IsHeader():
		level := strconv.Itoa(tb.Tag.Level())
		text := ""
		if len(tb.Items) > 0 {
			text = RenderInline(tb.Items[0])
		}
		return "<h" + level + ">" + text + "</h" + level + ">"

	case tb.Tag.IsList():
		name := "ul"
		if tb.Tag == TagOL {
			name = "ol"
		}
		var b strings.Builder
		b.WriteString("<" + name + ">")
		for _, item := range tb.Items {
			b.WriteString("<li>" + RenderInline(item) + "</li>")
		}
		b.WriteString("</" + name + ">")
		return b.String()

	case tb.Tag == TagBlockquote:
		return "<blockquote>" + renderItems(tb.Items, "<br>") + "</blockquote>"

	case tb.Tag == TagPreCode:
		open := "<pre><code>"
		if tb.Lang != "" {
			open = `<pre><code class="language-` + html.EscapeString(tb.Lang) + `">`
		}
		return open + html.EscapeString(codeText(tb)) + "</code></pre>"

	default:
		return "<p>" + renderItems(tb.Items, "<br>") + "</p>"
	}
}

// renderBlocks renders blocks in order with render, one per line.
func renderBlocks(blocks []TaggedBlock, render func(TaggedBlock) string) string {
	out := make([]string, len(blocks))
	for i, tb := range blocks {
		out[i] = render(tb)
	}
	return strings.Join(out, "\n")
}

func renderItems(items []Item, sep string) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = RenderInline(item)
	}
	return strings.Join(out, sep)
}

// codeText returns the literal lines of a code block joined by newlines.
func codeText(tb TaggedBlock) string {
	lines := make([]string, len(tb.Items))
	for i, item := range tb.Items {
		lines[i] = item.String()
	}
	return strings.Join(lines, "\n")
}
