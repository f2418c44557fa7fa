package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractTitle returns the text content of the first <h1> in fragment, with
// inline markup removed and entities decoded.
// Returns ErrMissingTitle when there is no <h1> or the first one is empty.
func ExtractTitle(fragment string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var title strings.Builder
	depth := 0
	found := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input inside an unterminated <h1> still yields its text.
			if found {
				return nonEmptyTitle(title.String())
			}
			return "", ErrMissingTitle

		case html.StartTagToken:
			if isH1(z) {
				depth++
				found = true
			}

		case html.EndTagToken:
			if depth > 0 && isH1(z) {
				depth--
				if depth == 0 {
					return nonEmptyTitle(title.String())
				}
			}

		case html.TextToken:
			if depth > 0 {
				title.Write(z.Text())
			}
		}
	}
}

func isH1(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return atom.Lookup(name) == atom.H1
}

func nonEmptyTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: first <h1> is empty", ErrMissingTitle)
	}
	return s, nil
}
