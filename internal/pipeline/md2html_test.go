package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          string
		highlightStyle string
		wantContains   []string
		wantExcludes   []string
	}{
		{
			name:         "heading gets an id",
			input:        "# Title\n\nSome *text*",
			wantContains: []string{`<h1 id="title">Title</h1>`, "<em>text</em>"},
		},
		{
			name:         "hard wraps",
			input:        "a\nb",
			wantContains: []string{"a<br>"},
		},
		{
			name:         "GFM table",
			input:        "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "raw HTML dropped",
			input:        "<script>alert(1)</script>",
			wantExcludes: []string{"<script>"},
		},
		{
			name:           "highlighted code",
			input:          "```go\nx := 1\n```",
			highlightStyle: "github",
			wantContains:   []string{`class="chroma"`},
		},
		{
			name:         "plain code without style",
			input:        "```go\nx := 1\n```",
			wantContains: []string{`<code class="language-go">`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewGoldmarkConverter(tt.highlightStyle).ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter("").ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
