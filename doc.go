// Package mdsite converts Markdown documents to HTML pages.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := mdsite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdsite.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    Standalone: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.Page), 0644)
//
// The result holds the body fragment (result.Fragment), the page title taken
// from the first <h1> (result.Title) and, for standalone conversions, the
// full page rendered through the page template (result.Page).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source preprocessing (line ending normalization, byte order mark)
//  2. Markdown to HTML fragment, with the native block pipeline or goldmark
//  3. Title extraction from the first <h1>
//  4. Template substitution of {{ Title }} and {{ Content }}
//  5. CSS injection (page style and syntax highlighting rules)
//
// # Engines
//
// The native engine (EngineNative, the default) implements a small Markdown
// subset: ATX headers, paragraphs, ordered and unordered lists, blockquotes,
// fenced code, links, images, and bold/italic/code spans. Every block becomes
// one line of HTML. Use EngineCommonMark for full CommonMark with GFM tables,
// autolinks and strikethrough.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithEngine(mdsite.EngineCommonMark),
//	    mdsite.WithStyle("plain"),
//	    mdsite.WithHighlighting("monokai"),
//	    mdsite.WithMarkdownLinks(true),
//	    mdsite.WithAssetPath("/path/to/custom/assets"),
//	)
//
// A Converter is safe for concurrent use by multiple goroutines.
//
// # Custom Assets
//
// Override built-in styles and templates using AssetLoader:
//
//	loader, err := mdsite.NewAssetLoader("/path/to/assets")
//	conv, err := mdsite.NewConverter(mdsite.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
//
// A page template must contain a {{ Content }} placeholder and may contain
// any number of {{ Title }} placeholders.
package mdsite
