package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
)

const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	Engine     string // MDSITE_ENGINE: native, commonmark
	Style      string // MDSITE_STYLE: CSS style name or path
	Template   string // MDSITE_TEMPLATE: page template name or path
	Highlight  string // MDSITE_HIGHLIGHT: chroma style
	AssetPath  string // MDSITE_ASSET_PATH: custom asset directory
	ContentDir string // MDSITE_CONTENT_DIR: content directory
	StaticDir  string // MDSITE_STATIC_DIR: static files directory
	OutputDir  string // MDSITE_OUTPUT_DIR: build output directory
	Workers    int    // MDSITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_ENGINE":      true,
	"MDSITE_STYLE":       true,
	"MDSITE_TEMPLATE":    true,
	"MDSITE_HIGHLIGHT":   true,
	"MDSITE_ASSET_PATH":  true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDSITE_CONFIG"),
		Engine:     getenv("MDSITE_ENGINE"),
		Style:      getenv("MDSITE_STYLE"),
		Template:   getenv("MDSITE_TEMPLATE"),
		Highlight:  getenv("MDSITE_HIGHLIGHT"),
		AssetPath:  getenv("MDSITE_ASSET_PATH"),
		ContentDir: getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  getenv("MDSITE_STATIC_DIR"),
		OutputDir:  getenv("MDSITE_OUTPUT_DIR"),
	}

	if workers := getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDSITE_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overwrites config values with the environment variables
// that are set. CLI flags are applied afterwards by the commands, giving
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setString(&cfg.Site.Engine, env.Engine)
	setString(&cfg.Site.AssetPath, env.AssetPath)
	setString(&cfg.Style.Name, env.Style)
	setString(&cfg.Style.Highlight, env.Highlight)
	setString(&cfg.Template.Name, env.Template)
	setString(&cfg.Content.Dir, env.ContentDir)
	setString(&cfg.Content.StaticDir, env.StaticDir)
	setString(&cfg.Build.OutputDir, env.OutputDir)
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}

// setString assigns v to dst unless v is empty.
func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
