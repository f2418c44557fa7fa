// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DirName is the directory under the user config dir searched for named configs.
const DirName = "go-mdsite"

// DefaultName is the config name looked up when none is given.
const DefaultName = "mdsite"

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxNameLength   = 128  // style, template and highlight names
	MaxEngineLength = 20   // "native", "commonmark"
	MaxWorkers      = 256
)

// Engines lists the accepted site.engine values.
var Engines = []string{"native", "commonmark"}

// Config is the site configuration.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Content  ContentConfig  `yaml:"content"`
	Template TemplateConfig `yaml:"template"`
	Style    StyleConfig    `yaml:"style"`
	Build    BuildConfig    `yaml:"build"`
}

// SiteConfig holds conversion settings shared by every page.
type SiteConfig struct {
	Engine        string `yaml:"engine"`        // "native" or "commonmark"
	MarkdownLinks bool   `yaml:"markdownLinks"` // rewrite links to .md sources as .html
	AssetPath     string `yaml:"assetPath"`     // directory with styles/ and templates/ overrides
}

// ContentConfig locates the site sources.
type ContentConfig struct {
	Dir       string `yaml:"dir"`
	StaticDir string `yaml:"staticDir"`
}

// TemplateConfig selects the page template by name or file path.
type TemplateConfig struct {
	Name string `yaml:"name"`
}

// StyleConfig selects the stylesheet and syntax highlighting.
type StyleConfig struct {
	Name      string `yaml:"name"`      // name, file path, or "none"
	Highlight string `yaml:"highlight"` // chroma style, empty disables highlighting
}

// BuildConfig controls the output of "mdsite build".
type BuildConfig struct {
	OutputDir string `yaml:"outputDir"`
	Workers   int    `yaml:"workers"` // 0 = GOMAXPROCS
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Site:     SiteConfig{Engine: "native", MarkdownLinks: true},
		Content:  ContentConfig{Dir: "content", StaticDir: "static"},
		Template: TemplateConfig{Name: "page"},
		Style:    StyleConfig{Name: "default"},
		Build:    BuildConfig{OutputDir: "public"},
	}
}

// Validate checks field lengths and value ranges.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.engine", c.Site.Engine, MaxEngineLength},
		{"site.assetPath", c.Site.AssetPath, MaxPathLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"content.staticDir", c.Content.StaticDir, MaxPathLength},
		{"template.name", c.Template.Name, MaxPathLength},
		{"style.name", c.Style.Name, MaxPathLength},
		{"style.highlight", c.Style.Highlight, MaxNameLength},
		{"build.outputDir", c.Build.OutputDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Site.Engine != "" && !slices.Contains(Engines, c.Site.Engine) {
		return fmt.Errorf("%w: site.engine: %q (want one of %s)", ErrInvalidValue, c.Site.Engine, strings.Join(Engines, ", "))
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}
	if strings.TrimSpace(c.Content.Dir) == "" {
		return fmt.Errorf("%w: content.dir: required", ErrInvalidValue)
	}
	if strings.TrimSpace(c.Build.OutputDir) == "" {
		return fmt.Errorf("%w: build.outputDir: required", ErrInvalidValue)
	}

	out := filepath.Clean(c.Build.OutputDir)
	for name, dir := range map[string]string{"content.dir": c.Content.Dir, "content.staticDir": c.Content.StaticDir} {
		if dir != "" && filepath.Clean(dir) == out {
			return fmt.Errorf("%w: build.outputDir: same directory as %s", ErrInvalidValue, name)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
