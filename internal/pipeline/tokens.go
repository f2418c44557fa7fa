package pipeline

import (
	"regexp"
	"strings"
)

// Token is one fragment of a line: a content run, a whitespace run, an
// inline-style delimiter, or the LineBreak marker.
type Token string

// Item is the token sequence of one rendering unit: a paragraph line, a list
// entry, a blockquote entry or a code line.
type Item []Token

// LineBreak joins a continuation line to the item it extends.
// Physical lines never contain a newline, so it cannot collide with content.
const LineBreak Token = "\n"

// Inline-style delimiters.
const (
	DelimBold   Token = "**"
	DelimItalic Token = "*"
	DelimCode   Token = "`"
)

var (
	// Alternating runs of non-whitespace and whitespace.
	tokenPattern = regexp.MustCompile(`[^ \t]+|[ \t]+`)

	// Leftmost-first: "**" wins over "*" at the same position.
	delimiterPattern = regexp.MustCompile("\\*\\*|\\*|`")
)

// Tokenize splits line into alternating content and whitespace runs.
// Concatenating the result reproduces line exactly.
func Tokenize(line string) []Token {
	runs := tokenPattern.FindAllString(line, -1)
	tokens := make([]Token, len(runs))
	for i, r := range runs {
		tokens[i] = Token(r)
	}
	return tokens
}

// IsSpace reports whether t is a whitespace run.
func (t Token) IsSpace() bool {
	return t != "" && strings.Trim(string(t), " \t") == ""
}

// IsDelimiter reports whether t is a bold, italic or code delimiter.
func (t Token) IsDelimiter() bool {
	return t == DelimBold || t == DelimItalic || t == DelimCode
}

// String returns the concatenated text of the item.
func (it Item) String() string {
	var b strings.Builder
	for _, t := range it {
		b.WriteString(string(t))
	}
	return b.String()
}

// SplitInlineDelimiters splits content tokens wherever a bold, italic or code
// delimiter occurs, keeping the delimiters as tokens of their own. Whitespace
// tokens and LineBreak pass through; empty fragments at token edges are
// dropped.
func SplitInlineDelimiters(item Item) Item {
	out := make(Item, 0, len(item))

	for _, tok := range item {
		if tok == LineBreak || tok.IsSpace() {
			out = append(out, tok)
			continue
		}

		s := string(tok)
		last := 0
		for _, loc := range delimiterPattern.FindAllStringIndex(s, -1) {
			if loc[0] > last {
				out = append(out, Token(s[last:loc[0]]))
			}
			out = append(out, Token(s[loc[0]:loc[1]]))
			last = loc[1]
		}
		if last < len(s) {
			out = append(out, Token(s[last:]))
		}
	}

	return out
}

// firstContent returns the index of the first non-whitespace token, or -1.
func firstContent(tokens []Token) int {
	for i, t := range tokens {
		if !t.IsSpace() {
			return i
		}
	}
	return -1
}

// trimSpaceTokens drops whitespace tokens from both ends.
func trimSpaceTokens(tokens []Token) []Token {
	start, end := 0, len(tokens)
	for start < end && tokens[start].IsSpace() {
		start++
	}
	for end > start && tokens[end-1].IsSpace() {
		end--
	}
	return tokens[start:end]
}
