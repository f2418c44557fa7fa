package pipeline

import "context"

// NativeConverter converts the supported Markdown subset to an HTML fragment
// with the block pipeline. It holds only immutable options.
type NativeConverter struct {
	links       LinkOptions
	highlighter *Highlighter
}

// NativeOption configures a NativeConverter.
type NativeOption func(*NativeConverter)

// WithLinkOptions sets the link rewriter options.
func WithLinkOptions(o LinkOptions) NativeOption {
	return func(c *NativeConverter) {
		c.links = o
	}
}

// WithHighlighter renders fenced code that names a language with h.
func WithHighlighter(h *Highlighter) NativeOption {
	return func(c *NativeConverter) {
		c.highlighter = h
	}
}

// NewNativeConverter creates a NativeConverter.
func NewNativeConverter(opts ...NativeOption) *NativeConverter {
	c := &NativeConverter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse runs the pipeline up to item consolidation.
// It fails with *MalformedHeaderError on a multi-line header block.
func (c *NativeConverter) Parse(content string) ([]TaggedBlock, error) {
	blocks := JoinCodeFences(SplitBlocks(content))
	tagged := make([]TaggedBlock, 0, len(blocks))

	for _, block := range blocks {
		code := isFence(block[0])
		lines := make([][]Token, len(block))
		for i, line := range block {
			if !code {
				line = c.links.Rewrite(TrimLine(line))
			}
			lines[i] = Tokenize(line)
		}

		classified, err := Classify(lines)
		if err != nil {
			return nil, err
		}
		tagged = append(tagged, Preprocess(classified))
	}

	return tagged, nil
}

// ToHTML converts content to an HTML fragment, one block per line.
// The conversion is synchronous; ctx is only checked before starting.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	blocks, err := c.Parse(content)
	if err != nil {
		return "", err
	}

	return renderBlocks(blocks, c.renderBlock), nil
}

func (c *NativeConverter) renderBlock(tb TaggedBlock) string {
	if tb.Tag == TagPreCode && tb.Lang != "" && c.highlighter != nil {
		if highlighted, ok := c.highlighter.Highlight(codeText(tb), tb.Lang); ok {
			return highlighted
		}
	}
	return RenderBlock(tb)
}
