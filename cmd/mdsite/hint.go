package main

import (
	"errors"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// hintFor returns an actionable hint for err, or "" if none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.BuiltinStyles())
	case errors.Is(err, mdsite.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.BuiltinTemplates())
	case errors.Is(err, mdsite.ErrMalformedHeader):
		return hints.ForMalformedHeader()
	case errors.Is(err, mdsite.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, mdsite.ErrUnknownHighlightStyle):
		return hints.ForUnknownHighlightStyle()
	case errors.Is(err, ErrUnsafeOutputDir):
		return hints.ForUnsafeOutput()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
