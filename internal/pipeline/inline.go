package pipeline

import "strings"

type pieceKind int

const (
	pieceText pieceKind = iota
	pieceSpace
	pieceOpen
	pieceClose
)

type piece struct {
	text string
	kind pieceKind
}

// RenderInline renders one item to HTML, toggling bold, italic and code on
// each matching delimiter.
//
// Tags are emitted in encounter order without a stack: overlapping
// delimiters such as "*a **b* c**" give "<i>a <b>b</i> c</b>", and an
// unmatched delimiter leaves its style open to the end of the item.
// Whitespace just inside an emitted tag pair is dropped, so "** a **"
// renders as "<b>a</b>". LineBreak renders as <br>.
func RenderInline(item Item) string {
	var bold, italic, code bool
	pieces := make([]piece, 0, len(item))

	for _, tok := range item {
		switch tok {
		case DelimBold:
			bold = !bold
			pieces = append(pieces, tagPiece("b", bold))
		case DelimItalic:
			italic = !italic
			pieces = append(pieces, tagPiece("i", italic))
		case DelimCode:
			code = !code
			pieces = append(pieces, tagPiece("code", code))
		case LineBreak:
			pieces = append(pieces, piece{text: "<br>", kind: pieceText})
		default:
			kind := pieceText
			if tok.IsSpace() {
				kind = pieceSpace
			}
			pieces = append(pieces, piece{text: string(tok), kind: kind})
		}
	}

	var b strings.Builder
	for i, p := range pieces {
		if p.kind == pieceSpace {
			afterOpen := i > 0 && pieces[i-1].kind == pieceOpen
			beforeClose := i+1 < len(pieces) && pieces[i+1].kind == pieceClose
			if afterOpen || beforeClose {
				continue
			}
		}
		b.WriteString(p.text)
	}
	return b.String()
}

func tagPiece(name string, open bool) piece {
	if open {
		return piece{text: "<" + name + ">", kind: pieceOpen}
	}
	return piece{text: "</" + name + ">", kind: pieceClose}
}
