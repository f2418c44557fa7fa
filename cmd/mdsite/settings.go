package main

import (
	"errors"
	"fmt"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// loadSiteConfig loads the configuration for a command. The file named by
// --config or MDSITE_CONFIG must exist; otherwise the default name is tried
// and missing defaults are not an error. Environment overrides are applied
// on top of the file.
func loadSiteConfig(flagConfig string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	var err error
	if name != "" {
		cfg, err = config.LoadConfig(name)
	} else {
		cfg, err = config.LoadConfig(config.DefaultName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.DefaultConfig(), nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeSiteFlags merges CLI flags into config. CLI values override config values.
func mergeSiteFlags(f *siteFlags, cfg *config.Config) {
	setString(&cfg.Site.Engine, f.engine)
	setString(&cfg.Site.AssetPath, f.assetPath)
	setString(&cfg.Style.Name, f.style)
	setString(&cfg.Style.Highlight, f.highlight)
	setString(&cfg.Template.Name, f.template)

	if f.linksSet {
		cfg.Site.MarkdownLinks = f.markdownLinks
	}
	if f.noStyle {
		cfg.Style.Name = mdsite.StyleNone
	}
}

// converterOptions maps the site configuration to library options.
func converterOptions(cfg *config.Config) []mdsite.Option {
	opts := []mdsite.Option{
		mdsite.WithEngine(cfg.Site.Engine),
		mdsite.WithStyle(cfg.Style.Name),
		mdsite.WithMarkdownLinks(cfg.Site.MarkdownLinks),
	}
	if cfg.Template.Name != "" {
		opts = append(opts, mdsite.WithTemplate(cfg.Template.Name))
	}
	if cfg.Site.AssetPath != "" {
		opts = append(opts, mdsite.WithAssetPath(cfg.Site.AssetPath))
	}
	if cfg.Style.Highlight != "" {
		opts = append(opts, mdsite.WithHighlighting(cfg.Style.Highlight))
	}
	return opts
}

// newSiteConverter validates cfg and creates the converter it describes.
func newSiteConverter(cfg *config.Config) (*mdsite.Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conv, err := mdsite.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("creating converter: %w", err)
	}
	return conv, nil
}
