// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The native engine runs these stages, each a pure function over the output
// of the previous one:
//   - Block splitting on blank lines (SplitBlocks)
//   - Code-fence joining (JoinCodeFences)
//   - Link and image rewriting (LinkOptions.Rewrite)
//   - Whitespace-preserving tokenization (Tokenize)
//   - Block classification (Classify)
//   - List and blockquote item consolidation (Preprocess)
//   - Inline bold/italic/code rendering (RenderInline)
//   - Block rendering (RenderBlock)
//
// GoldmarkConverter is the alternative CommonMark engine. Both satisfy
// HTMLConverter and produce body-level fragments; ExtractTitle and
// ApplyTemplate turn a fragment into a standalone page.
//
// Every stage is stateless, so a converter may be shared by goroutines
// converting different documents.
package pipeline
