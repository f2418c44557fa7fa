package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownEngine  = errors.New("unknown engine")

	// Document errors. ErrMalformedHeader matches every *MalformedHeaderError.
	ErrMalformedHeader = pipeline.ErrMalformedHeader
	ErrMissingTitle    = pipeline.ErrMissingTitle

	// Template errors.
	ErrInvalidTemplate = errors.New("invalid page template")

	// Highlighting errors.
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// MalformedHeaderError reports a header block that spans more than one line.
type MalformedHeaderError = pipeline.MalformedHeaderError
