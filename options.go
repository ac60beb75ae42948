package dxf

import (
	"github.com/wmeredith/dxf/core"
)

// ParseOptions holds configuration for a parse pass.
type ParseOptions struct {
	// Sink receives diagnostics as they occur, in addition to the
	// warning slice every parse returns. Nil keeps diagnostics in the
	// returned slice only.
	Sink core.DiagnosticSink

	// Codepage overrides the codepage used by ParseBytes. Empty means
	// honor the drawing's own $DWGCODEPAGE declaration.
	Codepage string
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() ParseOptions {
	return ParseOptions{
		Sink:     nil,
		Codepage: "",
	}
}
