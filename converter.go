package mdsite

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Defaults for the built-in assets.
const (
	DefaultStyle    = assets.DefaultStyleName
	DefaultTemplate = assets.DefaultTemplateName
)

// Converter orchestrates the markdown-to-HTML conversion pipeline.
// Create with NewConverter and use Convert for each document. A Converter
// holds no per-document state and may be shared across goroutines.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector

	// Resolved at construction.
	css      string
	template string
}

// publicToInternalAdapter wraps public AssetLoader to internal assets.AssetLoader.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) LoadTemplate(name string) (string, error) {
	return a.pub.LoadTemplate(name)
}

// NewConverter creates a Converter with default configuration: the native
// engine, the default style and the default page template.
// Returns error if the engine is unknown or an asset cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:        EngineNative,
			styleInput:    DefaultStyle,
			templateInput: DefaultTemplate,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.SourcePreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	// Create the engine if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		conv, err := c.newEngine()
		if err != nil {
			return nil, err
		}
		c.htmlConverter = conv
	}

	return c, nil
}

// newEngine builds the configured Markdown engine and, when highlighting is
// on, appends the highlighter's CSS to the page stylesheet.
func (c *Converter) newEngine() (pipeline.HTMLConverter, error) {
	var highlighter *pipeline.Highlighter
	if c.cfg.highlight {
		h, err := pipeline.NewHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		css, err := h.CSS()
		if err != nil {
			return nil, err
		}
		c.css = joinCSS(c.css, css)
		highlighter = h
	}

	switch c.cfg.engine {
	case EngineNative, "":
		opts := []pipeline.NativeOption{
			pipeline.WithLinkOptions(pipeline.LinkOptions{MarkdownToHTML: c.cfg.markdownLinks}),
		}
		if highlighter != nil {
			opts = append(opts, pipeline.WithHighlighter(highlighter))
		}
		return pipeline.NewNativeConverter(opts...), nil

	case EngineCommonMark:
		style := ""
		if highlighter != nil {
			style = c.cfg.highlightStyle
			if style == "" {
				style = pipeline.DefaultHighlightStyle
			}
		}
		return pipeline.NewGoldmarkConverter(style), nil

	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownEngine, c.cfg.engine, EngineNative, EngineCommonMark)
	}
}

// Convert runs the pipeline on one document.
// A document without an <h1> converts to a fragment with an empty Title; a
// standalone conversion of it fails with ErrMissingTitle.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	res, err := c.convert(ctx, input)
	if err != nil && input.SourcePath != "" {
		return nil, fmt.Errorf("%s: %w", input.SourcePath, err)
	}
	return res, err
}

func (c *Converter) convert(ctx context.Context, input Input) (*ConvertResult, error) {
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// The native engine maps .md links while rewriting them; goldmark output
	// needs a DOM pass.
	if c.cfg.markdownLinks && c.cfg.engine == EngineCommonMark {
		fragment, err = pipeline.RewriteMarkdownLinks(fragment)
		if err != nil {
			return nil, fmt.Errorf("rewriting markdown links: %w", err)
		}
	}

	title, titleErr := pipeline.ExtractTitle(fragment)
	res := &ConvertResult{Fragment: fragment, Title: title}
	if !input.Standalone {
		return res, nil
	}
	if titleErr != nil {
		return nil, titleErr
	}

	page, err := pipeline.ApplyTemplate(c.template, title, fragment)
	if err != nil {
		return nil, fmt.Errorf("applying template: %w", err)
	}

	page = c.cssInjector.InjectCSS(ctx, page, c.css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res.Page = page
	return res, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter after options are applied and asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	switch {
	case input == "" || input == StyleNone:
		c.css = ""
		return nil

	case fileutil.IsCSS(input):
		c.css = input
		return nil

	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.css = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.css = css
	return nil
}

// resolveTemplate resolves the template input (name, path, or HTML content)
// and checks that it has a {{ Content }} placeholder.
func (c *Converter) resolveTemplate() error {
	input := c.cfg.templateInput
	var tmpl string

	switch {
	case fileutil.IsHTML(input):
		tmpl = input

	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading template file %q: %w", input, err)
		}
		tmpl = string(content)

	default:
		content, err := c.assetLoader.LoadTemplate(input)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", input, convertAssetError(err))
		}
		tmpl = content
	}

	if err := pipeline.ValidateTemplate(tmpl); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, input, err)
	}
	c.template = tmpl
	return nil
}

// CSS returns the stylesheet injected into standalone pages.
func (c *Converter) CSS() string {
	return c.css
}

func joinCSS(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}
