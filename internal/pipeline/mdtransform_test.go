package pipeline

import (
	"context"
	"testing"
)

func TestSourcePreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unchanged", input: "# A\n\nb", want: "# A\n\nb"},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "lone cr", input: "a\rb", want: "a\nb"},
		{name: "byte order mark", input: "\ufeff# Title", want: "# Title"},
		{name: "bom only at start", input: "a\ufeffb", want: "a\ufeffb"},
	}

	p := &SourcePreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSourcePreprocessor_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\nb"
	if got := (&SourcePreprocessor{}).PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("canceled context changed content: %q", got)
	}
}
