package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// ErrConfigExists is returned when init would overwrite a file without --force.
var ErrConfigExists = errors.New("config file already exists")

const configHeader = "# mdsite site configuration.\n# Run 'mdsite help build' for the matching flags and MDSITE_* variables.\n"

// runInit writes the default configuration as YAML.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: init takes no arguments, got %q", ErrUsage, positional)
	}

	if fileutil.FileExists(flags.output) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, flags.output)
	}

	data, err := yamlutil.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// #nosec G306 -- config files are meant to be readable
	if err := fileutil.WriteFileAtomic(flags.output, append([]byte(configHeader), data...), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}
