package mdsite

// Engine names accepted by WithEngine.
const (
	EngineNative     = "native"
	EngineCommonMark = "commonmark"
)

// StyleNone disables the page stylesheet.
const StyleNone = "none"

// Input is one document to convert.
type Input struct {
	Markdown   string // Markdown content; empty converts to an empty fragment
	Standalone bool   // Render a full page through the template
	SourcePath string // Source file, used in error messages (optional)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Fragment string // Body-level HTML
	Title    string // Text of the first <h1>, empty if there is none
	Page     string // Full HTML page; set only for standalone conversions
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the raw option values resolved by NewConverter.
type converterConfig struct {
	engine         string
	styleInput     string
	templateInput  string
	assetPath      string
	highlight      bool
	highlightStyle string
	markdownLinks  bool
}

// WithEngine selects the Markdown engine: EngineNative or EngineCommonMark.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithStyle sets the page stylesheet. Accepts:
//   - A style name: "default", "plain" (built-in or from the asset path)
//   - A file path: "./custom.css", "/path/to/style.css"
//   - CSS content: "body { font-family: serif; }"
//   - StyleNone to inject no stylesheet
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplate sets the page template used for standalone conversions.
// Accepts a template name, a file path, or template HTML content.
func WithTemplate(tmpl string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = tmpl
	}
}

// WithAssetPath sets a custom directory for styles and templates.
// Assets found there take precedence over the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithHighlighting enables syntax highlighting of fenced code that names a
// language, using the named chroma style ("" selects the default, "github").
// The matching CSS is added to standalone pages.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithMarkdownLinks rewrites relative links to .md and .markdown files so
// they point at the generated .html pages.
func WithMarkdownLinks(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.markdownLinks = enabled
	}
}
