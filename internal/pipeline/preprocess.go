package pipeline

// TaggedBlock is a classified block split into rendering items.
type TaggedBlock struct {
	Tag   Tag
	Items []Item
	Lang  string
}

// Preprocess turns the lines of a classified block into items.
//
// Code lines become one item each and stay opaque. Other non-group blocks get
// one item per line. In lists and blockquotes a line led by the block's marker
// starts a new item, with the marker and the single whitespace token after it
// stripped; any other line continues the current item after a LineBreak.
// Non-code items are split on inline-style delimiters.
func Preprocess(c Classified) TaggedBlock {
	tb := TaggedBlock{Tag: c.Tag, Lang: c.Lang}

	if c.Tag == TagPreCode {
		for _, line := range c.Lines {
			tb.Items = append(tb.Items, Item(line))
		}
		return tb
	}

	if !c.Tag.IsGroup() {
		for _, line := range c.Lines {
			tb.Items = append(tb.Items, SplitInlineDelimiters(Item(line)))
		}
		return tb
	}

	marker := ""
	if len(c.Lines) > 0 {
		if i := firstContent(c.Lines[0]); i >= 0 {
			marker = string(c.Lines[0][i])
		}
	}

	var current Item
	started := false
	for _, line := range c.Lines {
		i := firstContent(line)
		if i < 0 {
			continue
		}

		if c.Tag.matchesMarker(marker, string(line[i])) {
			if started {
				tb.Items = append(tb.Items, SplitInlineDelimiters(current))
			}
			current = append(Item{}, stripMarker(line[i+1:])...)
			started = true
			continue
		}

		current = append(current, LineBreak)
		current = append(current, line[i:]...)
	}
	if started {
		tb.Items = append(tb.Items, SplitInlineDelimiters(current))
	}

	return tb
}

// stripMarker drops the single whitespace token that follows an item marker.
func stripMarker(rest []Token) []Token {
	if len(rest) > 0 && rest[0].IsSpace() {
		return rest[1:]
	}
	return rest
}
