package pipeline

import (
	"regexp"
	"strings"
)

// Tag is the HTML block category of a Block.
type Tag int

// Block tags. Header tags are consecutive so that a header's level equals
// its ordinal.
const (
	TagP Tag = iota
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagOL
	TagUL
	TagPreCode
	TagBlockquote
)

var tagNames = [...]string{
	TagP:          "P",
	TagH1:         "H1",
	TagH2:         "H2",
	TagH3:         "H3",
	TagH4:         "H4",
	TagH5:         "H5",
	TagH6:         "H6",
	TagOL:         "OL",
	TagUL:         "UL",
	TagPreCode:    "PRE_CODE",
	TagBlockquote: "BLOCKQUOTE",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "Tag(?)"
	}
	return tagNames[t]
}

// IsHeader reports whether t is one of H1..H6.
func (t Tag) IsHeader() bool {
	return t >= TagH1 && t <= TagH6
}

// IsList reports whether t is an ordered or unordered list.
func (t Tag) IsList() bool {
	return t == TagOL || t == TagUL
}

// IsGroup reports whether t gathers several marker-led items (lists and
// blockquotes).
func (t Tag) IsGroup() bool {
	return t.IsList() || t == TagBlockquote
}

// Level returns the header level (1..6), or 0 when t is not a header.
func (t Tag) Level() int {
	if !t.IsHeader() {
		return 0
	}
	return int(t)
}

var orderedMarker = regexp.MustCompile(`^[0-9]+\.$`)

// ClassifyToken maps the first token of a block to its Tag.
// Unrecognized tokens fall through to TagP.
func ClassifyToken(first string) Tag {
	switch {
	case first == "*" || first == "-":
		return TagUL
	case first == ">":
		return TagBlockquote
	case strings.HasPrefix(first, fenceMarker):
		return TagPreCode
	case isHeaderMarker(first):
		return TagH1 + Tag(len(first)-1)
	case orderedMarker.MatchString(first):
		return TagOL
	default:
		return TagP
	}
}

// isHeaderMarker reports whether s is a run of one to six hashes.
func isHeaderMarker(s string) bool {
	return len(s) >= 1 && len(s) <= 6 && strings.Trim(s, "#") == ""
}

// matchesMarker reports whether tok starts a new item in a group block whose
// first item was led by marker. Ordered lists accept any number.
func (t Tag) matchesMarker(marker, tok string) bool {
	if t == TagOL {
		return orderedMarker.MatchString(tok)
	}
	return tok == marker
}
