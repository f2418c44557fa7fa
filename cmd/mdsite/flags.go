package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line arguments.
var ErrUsage = errors.New("invalid usage")

// usageError wraps a flag parsing error with ErrUsage. flag.ErrHelp is
// returned unchanged so callers can exit successfully.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the conversion settings shared by build and convert.
type siteFlags struct {
	engine        string
	style         string
	template      string
	assetPath     string
	highlight     string
	noStyle       bool
	markdownLinks bool
	linksSet      bool // --md-links was given explicitly
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	content string
	static  string
	output  string
	workers int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	site     siteFlags
	output   string
	fragment bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	output string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds conversion flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, commonmark")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.highlight, "highlight", "", "highlight code with a chroma style")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.BoolVar(&f.markdownLinks, "md-links", false, "rewrite links to .md files as .html")
}

// newBuildFlagSet registers the build command flags into f.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.content, "content", "", "content directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (cleaned first)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	return fs
}

// newConvertFlagSet registers the convert command flags into f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.fragment, "fragment", false, "emit the body fragment only")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	return fs
}

// newInitFlagSet registers the init command flags into f.
func newInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.output, "output", "o", "mdsite.yaml", "config file to write")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.site.linksSet = fs.Changed("md-links")

	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.site.linksSet = fs.Changed("md-links")

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags.
func parseInitFlags(args []string, usage io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newInitFlagSet(f)
	fs.Usage = func() { printInitUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}
