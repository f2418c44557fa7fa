package pipeline

import "errors"

// Sentinel errors for the conversion pipeline.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrMalformedHeader matches every *MalformedHeaderError.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrMissingTitle is raised at the templating boundary when the document
	// has no <h1> to take the page title from.
	ErrMissingTitle = errors.New("missing title")

	ErrMissingContentPlaceholder = errors.New("template has no {{ Content }} placeholder")
	ErrUnknownHighlightStyle     = errors.New("unknown highlight style")
)
