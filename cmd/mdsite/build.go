package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for site operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrUnsafeOutputDir = errors.New("refusing to clean output directory")
	ErrBuildFailed     = errors.New("build failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*mdsite.Converter)(nil)

// ConversionResult holds the outcome of a single page or copied file.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Page       bool
	Err        error
	Duration   time.Duration
}

// runBuild builds the site described by the configuration and flags.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, positional)
	}

	cfg, err := loadSiteConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, cfg)

	conv, err := newSiteConverter(cfg)
	if err != nil {
		return err
	}

	return buildSite(ctx, cfg, conv, flags.common, env)
}

// mergeBuildFlags merges build flags into config. CLI values override config values.
func mergeBuildFlags(flags *buildFlags, cfg *config.Config) {
	mergeSiteFlags(&flags.site, cfg)
	setString(&cfg.Content.Dir, flags.content)
	setString(&cfg.Content.StaticDir, flags.static)
	setString(&cfg.Build.OutputDir, flags.output)
	if flags.workers != 0 {
		cfg.Build.Workers = flags.workers
	}
}

// buildSite cleans the output directory, then copies the static tree and
// renders the content tree into it on a bounded worker pool. A failed file
// does not stop the others; the build fails if any file failed.
func buildSite(ctx context.Context, cfg *config.Config, conv Converter, out commonFlags, env *Environment) error {
	start := env.Now()
	contentDir, staticDir, outputDir := cfg.Content.Dir, cfg.Content.StaticDir, cfg.Build.OutputDir

	if !fileutil.DirExists(contentDir) {
		return fmt.Errorf("%w: content directory %q not found", ErrNoInput, contentDir)
	}
	if err := checkOutputDir(outputDir, contentDir, staticDir); err != nil {
		return err
	}
	if err := cleanOutputDir(outputDir); err != nil {
		return err
	}

	var files []siteFile
	if staticDir != "" && fileutil.DirExists(staticDir) {
		staticFiles, err := discoverFiles(staticDir, outputDir, false)
		if err != nil {
			return fmt.Errorf("discovering static files: %w", err)
		}
		files = append(files, staticFiles...)
	} else if out.verbose && staticDir != "" {
		fmt.Fprintf(env.Stderr, "No static directory %s, skipping\n", staticDir)
	}

	contentFiles, err := discoverFiles(contentDir, outputDir, true)
	if err != nil {
		return fmt.Errorf("discovering content: %w", err)
	}
	files = dedupeOutputs(append(files, contentFiles...), env.Stderr)

	workers := resolvePoolSize(cfg.Build.Workers)
	if out.verbose {
		fmt.Fprintf(env.Stderr, "Building %d pages and %d files with %d workers\n",
			countPages(files), len(files)-countPages(files), workers)
	}

	results := runPool(ctx, workers, len(files),
		func(ctx context.Context, i int) ConversionResult {
			return processFile(ctx, conv, files[i])
		},
		func(i int, err error) ConversionResult {
			return ConversionResult{InputPath: files[i].InputPath, Page: files[i].Page, Err: err}
		},
	)

	failed := printResultsWithWriter(results, out.quiet, out.verbose, env)
	if !out.quiet {
		fmt.Fprintf(env.Stdout, "Built %s in %v\n", outputDir, env.Now().Sub(start).Round(time.Millisecond))
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("build canceled: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files: %w", ErrBuildFailed, failed, len(results), firstError(results))
	}
	return nil
}

// checkOutputDir refuses output directories whose removal would destroy
// more than generated files: the filesystem root, the home directory, the
// working directory or one of its parents, and any directory that contains
// a source directory or lies inside one.
func checkOutputDir(outputDir string, sources ...string) error {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnsafeOutputDir, outputDir, err)
	}

	if filepath.Dir(abs) == abs {
		return fmt.Errorf("%w: %s is the filesystem root", ErrUnsafeOutputDir, outputDir)
	}
	if home, err := os.UserHomeDir(); err == nil && fileutil.IsWithin(home, abs) {
		return fmt.Errorf("%w: %s contains the home directory", ErrUnsafeOutputDir, outputDir)
	}
	if wd, err := os.Getwd(); err == nil && fileutil.IsWithin(wd, abs) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeOutputDir, outputDir)
	}

	for _, src := range sources {
		if src == "" {
			continue
		}
		if fileutil.IsWithin(src, abs) || fileutil.IsWithin(abs, src) {
			return fmt.Errorf("%w: %s overlaps source directory %s", ErrUnsafeOutputDir, outputDir, src)
		}
	}
	return nil
}

// cleanOutputDir removes outputDir and recreates it empty.
func cleanOutputDir(outputDir string) error {
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("%w: cleaning %s: %v", ErrWriteOutput, outputDir, err)
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWriteOutput, outputDir, err)
	}
	return nil
}

// dedupeOutputs keeps the last file mapped to each output path, so content
// overrides static files of the same name.
func dedupeOutputs(files []siteFile, w io.Writer) []siteFile {
	last := make(map[string]int, len(files))
	for i, f := range files {
		last[f.OutputPath] = i
	}

	kept := files[:0:0]
	for i, f := range files {
		if last[f.OutputPath] != i {
			fmt.Fprintf(w, "warning: %s overrides %s\n", files[last[f.OutputPath]].InputPath, f.InputPath)
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// processFile renders a page or copies a file and returns the result.
func processFile(ctx context.Context, conv Converter, f siteFile) (result ConversionResult) {
	start := time.Now()
	result = ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
		Page:       f.Page,
	}
	defer func() { result.Duration = time.Since(start) }()

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: creating directory: %v", ErrWriteOutput, err)
		return result
	}

	if !f.Page {
		if err := fileutil.CopyFile(f.InputPath, f.OutputPath); err != nil {
			result.Err = fmt.Errorf("copying: %w", err)
		}
		return result
	}

	result.Err = renderPage(ctx, conv, f.InputPath, f.OutputPath)
	return result
}

// renderPage converts one Markdown file to a standalone HTML page.
func renderPage(ctx context.Context, conv Converter, inputPath, outputPath string) error {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	res, err := conv.Convert(ctx, mdsite.Input{
		Markdown:   string(content),
		Standalone: true,
		SourcePath: inputPath,
	})
	if err != nil {
		return err
	}

	// #nosec G306 -- pages are meant to be readable
	if err := fileutil.WriteFileAtomic(outputPath, []byte(res.Page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Pages  int
	Copied int
	Failed int
}

// countResults tallies rendered pages, copied files and failures.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Page:
			summary.Pages++
		default:
			summary.Copied++
		}
	}
	return summary
}

// firstError returns the first failure in results, or nil.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResultsWithWriter outputs build results and returns the failure count.
// Pages are listed unless quiet; copied files only when verbose.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		switch {
		case quiet:
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		case r.Page:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d pages, %d files copied, %d failed\n", summary.Pages, summary.Copied, summary.Failed)
	}

	return summary.Failed
}
