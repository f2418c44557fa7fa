package mdsite

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded assets", func(t *testing.T) {
		t.Parallel()

		loader, err := NewAssetLoader("")
		if err != nil {
			t.Fatalf("NewAssetLoader(\"\") error = %v", err)
		}
		css, err := loader.LoadStyle(DefaultStyle)
		if err != nil || css == "" {
			t.Errorf("LoadStyle(default) = %d bytes, %v", len(css), err)
		}
		tmpl, err := loader.LoadTemplate(DefaultTemplate)
		if err != nil || !strings.Contains(tmpl, "{{ Content }}") {
			t.Errorf("LoadTemplate(page) = %q, %v", tmpl, err)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetLoader("/nonexistent/path/that/does/not/exist")
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestNewAssetLoader_CustomOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	for rel, content := range map[string]string{
		"styles/default.css": "/* custom override */ body { color: red; }",
		"templates/page.html": "<title>{{ Title }}</title>{{ Content }}",
	} {
		path := filepath.Join(tmpDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	loader, err := NewAssetLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetLoader(%q) error = %v", tmpDir, err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil || !strings.Contains(css, "custom override") {
		t.Errorf("LoadStyle = %q, %v; want custom CSS", css, err)
	}
	tmpl, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil || tmpl != "<title>{{ Title }}</title>{{ Content }}" {
		t.Errorf("LoadTemplate = %q, %v; want custom template", tmpl, err)
	}
	if _, err := loader.LoadStyle("plain"); err != nil {
		t.Errorf("LoadStyle(plain) should fall back to embedded: %v", err)
	}
}

func TestAssetLoader_Errors(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		wantErr error
	}{
		{name: "missing style", load: loader.LoadStyle, asset: "custom-style", wantErr: ErrStyleNotFound},
		{name: "missing template", load: loader.LoadTemplate, asset: "blog", wantErr: ErrTemplateNotFound},
		{name: "invalid style name", load: loader.LoadStyle, asset: "../x", wantErr: ErrInvalidAssetName},
		{name: "invalid template name", load: loader.LoadTemplate, asset: "page.html", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.load(tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			// The original message, naming the asset, is preserved.
			if !strings.Contains(err.Error(), tt.asset) {
				t.Errorf("error message %q should contain %q", err.Error(), tt.asset)
			}
		})
	}
}

func TestConvertAssetError_Passthrough(t *testing.T) {
	t.Parallel()

	if convertAssetError(nil) != nil {
		t.Error("convertAssetError(nil) should be nil")
	}
	other := errors.New("disk on fire")
	if got := convertAssetError(other); got != other {
		t.Errorf("convertAssetError(other) = %v, want unchanged", got)
	}
}
