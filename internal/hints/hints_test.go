package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		paths       []string
		contains    string
		notContains string
	}{
		{
			name:        "empty paths",
			paths:       []string{},
			contains:    "--config",
			notContains: "create",
		},
		{
			name:     "suggests user config path",
			paths:    []string{"foo.yaml", "/home/me/.config/go-mdsite/foo.yaml"},
			contains: "create /home/me/.config/go-mdsite/foo.yaml",
		},
		{
			name:     "mentions init",
			paths:    []string{"foo.yaml"},
			contains: "mdsite init",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
			if tt.notContains != "" && strings.Contains(hint, tt.notContains) {
				t.Errorf("expected hint without %q, got %q", tt.notContains, hint)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}

	hint := ForStyleNotFound([]string{"default", "plain"})
	if !strings.Contains(hint, "available: default, plain, none") {
		t.Errorf("unexpected hint %q", hint)
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForTemplateNotFound(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}

	available := []string{"page"}
	hint := ForTemplateNotFound(available)
	if !strings.HasSuffix(hint, "available: page") {
		t.Errorf("unexpected hint %q", hint)
	}
	if len(available) != 1 {
		t.Errorf("input slice modified: %v", available)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := map[string]string{
		"ForOutputDirectory":       ForOutputDirectory(),
		"ForUnsafeOutput":          ForUnsafeOutput(),
		"ForMissingTitle":          ForMissingTitle(),
		"ForMalformedHeader":       ForMalformedHeader(),
		"ForUnknownHighlightStyle": ForUnknownHighlightStyle(),
		"ForConfigNotFound":        ForConfigNotFound(nil),
	}

	for name, hint := range hints {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s = %q, want prefix %q", name, hint, "\n  hint: ")
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
