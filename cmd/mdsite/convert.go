package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// runConvert converts a single Markdown file to a page or fragment.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	switch {
	case len(positional) == 0:
		printConvertUsage(env.Stderr)
		return ErrNoInput
	case len(positional) > 1:
		return fmt.Errorf("%w: convert takes one file, got %d", ErrUsage, len(positional))
	}

	inputPath := positional[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	cfg, err := loadSiteConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeSiteFlags(&flags.site, cfg)

	conv, err := newSiteConverter(cfg)
	if err != nil {
		return err
	}

	return convertFile(ctx, conv, inputPath, flags, env)
}

// convertFile renders inputPath and writes the result to the output file,
// or to stdout when none is set.
func convertFile(ctx context.Context, conv Converter, inputPath string, flags *convertFlags, env *Environment) error {
	start := time.Now()

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	res, err := conv.Convert(ctx, mdsite.Input{
		Markdown:   string(content),
		Standalone: !flags.fragment,
		SourcePath: inputPath,
	})
	if err != nil {
		return err
	}

	out := res.Page
	if flags.fragment {
		out = res.Fragment
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if flags.output == "" {
		_, err := fmt.Fprint(env.Stdout, out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(flags.output), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating directory: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- pages are meant to be readable
	if err := fileutil.WriteFileAtomic(flags.output, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stdout, "%s -> %s (%q, %v)\n", inputPath, flags.output, res.Title, time.Since(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}
