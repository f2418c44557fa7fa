package pipeline

import (
	"fmt"
	"strings"
)

// MalformedHeaderError reports a header block that spans more than one line.
// It aborts the whole conversion.
type MalformedHeaderError struct {
	Tag   Tag    // header tag of the offending block
	Lines int    // number of lines in the block
	Text  string // first line of the block
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("%v: %s block %q spans %d lines, want 1",
		ErrMalformedHeader, e.Tag, e.Text, e.Lines)
}

// Is makes errors.Is(err, ErrMalformedHeader) match.
func (e *MalformedHeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}

// Classified is a tokenized block with its tag assigned and block-level
// markers stripped.
type Classified struct {
	Tag   Tag
	Lines [][]Token
	Lang  string // fenced-code info string, first word only
}

// Classify assigns a Tag from the first token of the first line.
//
// For PRE_CODE the opening fence line is dropped and its info string kept in
// Lang. For headers the hash token and surrounding whitespace are stripped,
// and a block of more than one line is a *MalformedHeaderError.
func Classify(lines [][]Token) (Classified, error) {
	if len(lines) == 0 {
		return Classified{Tag: TagP}, nil
	}

	first := firstContent(lines[0])
	if first < 0 {
		return Classified{Tag: TagP, Lines: lines}, nil
	}
	tag := ClassifyToken(string(lines[0][first]))

	switch {
	case tag == TagPreCode:
		return Classified{
			Tag:   tag,
			Lines: lines[1:],
			Lang:  fenceLang(Item(lines[0]).String()),
		}, nil

	case tag.IsHeader():
		if len(lines) != 1 {
			return Classified{}, &MalformedHeaderError{
				Tag:   tag,
				Lines: len(lines),
				Text:  Item(lines[0]).String(),
			}
		}
		text := trimSpaceTokens(lines[0][first+1:])
		return Classified{Tag: tag, Lines: [][]Token{text}}, nil
	}

	return Classified{Tag: tag, Lines: lines}, nil
}

// fenceLang extracts the language from an opening fence line.
func fenceLang(line string) string {
	info := strings.TrimLeft(strings.TrimSpace(line), "`")
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
