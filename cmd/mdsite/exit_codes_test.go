package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read markdown", fmt.Errorf("%w: x", ErrReadMarkdown), ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"unsupported shell", fmt.Errorf("%w: \"sh\"", ErrUnsupportedShell), ExitUsage},
		{"unsafe output", ErrUnsafeOutputDir, ExitUsage},
		{"config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
		{"config value", config.ErrInvalidValue, ExitUsage},
		{"malformed header", &mdsite.MalformedHeaderError{Lines: 2, Text: "# a"}, ExitUsage},
		{"missing title", mdsite.ErrMissingTitle, ExitUsage},
		{"style not found", mdsite.ErrStyleNotFound, ExitUsage},
		{"highlight style", mdsite.ErrUnknownHighlightStyle, ExitUsage},
		{"build failed with page error", fmt.Errorf("%w: 1 of 3 files: %w", ErrBuildFailed, mdsite.ErrMissingTitle), ExitUsage},
		{"build failed with io error", fmt.Errorf("%w: 1 of 3 files: %w", ErrBuildFailed, os.ErrPermission), ExitIO},
		{"build failed plain", ErrBuildFailed, ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
