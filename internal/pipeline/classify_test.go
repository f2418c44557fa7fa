package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenizeLines(lines ...string) [][]Token {
	out := make([][]Token, len(lines))
	for i, l := range lines {
		out[i] = Tokenize(l)
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     [][]Token
		wantTag   Tag
		wantLines [][]Token
		wantLang  string
	}{
		{
			name:      "header strips hash and spaces",
			lines:     tokenizeLines("##  Section  "),
			wantTag:   TagH2,
			wantLines: [][]Token{{"Section"}},
		},
		{
			name:      "paragraph keeps lines",
			lines:     tokenizeLines("one", "two"),
			wantTag:   TagP,
			wantLines: tokenizeLines("one", "two"),
		},
		{
			name:      "code drops opening fence",
			lines:     tokenizeLines("```go run", "x := 1"),
			wantTag:   TagPreCode,
			wantLines: tokenizeLines("x := 1"),
			wantLang:  "go",
		},
		{
			name:      "list keeps markers",
			lines:     tokenizeLines("- a", "- b"),
			wantTag:   TagUL,
			wantLines: tokenizeLines("- a", "- b"),
		},
		{
			name:      "indented marker",
			lines:     tokenizeLines("  > quoted"),
			wantTag:   TagBlockquote,
			wantLines: tokenizeLines("  > quoted"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Classify(tt.lines)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Tag != tt.wantTag {
				t.Errorf("Tag = %v, want %v", got.Tag, tt.wantTag)
			}
			if diff := cmp.Diff(tt.wantLines, got.Lines); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
			if got.Lang != tt.wantLang {
				t.Errorf("Lang = %q, want %q", got.Lang, tt.wantLang)
			}
		})
	}
}

func TestClassify_MalformedHeader(t *testing.T) {
	t.Parallel()

	_, err := Classify(tokenizeLines("# Title", "second line"))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("error = %v, want ErrMalformedHeader", err)
	}

	var mhe *MalformedHeaderError
	if !errors.As(err, &mhe) {
		t.Fatalf("error type = %T, want *MalformedHeaderError", err)
	}
	if mhe.Tag != TagH1 || mhe.Lines != 2 || mhe.Text != "# Title" {
		t.Errorf("MalformedHeaderError = %+v", *mhe)
	}
}
