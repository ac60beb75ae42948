// Package dxf is a bidirectional codec for the text DXF tag/value group
// stream. It parses a drawing into a structured Document and serializes a
// Document back into a semantically equivalent stream.
//
// Basic usage:
//
//	doc, warnings, err := dxf.Parse(text)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dxf.FormatWarnings(warnings))
//	}
//	out := dxf.SerializeToString(doc)
//
// Raw file bytes can be decoded according to the drawing's own codepage
// declaration:
//
//	doc, warnings, err := dxf.ParseBytes(data)
//
// For lower-level access to the group stream, the core package is also
// available.
package dxf

import (
	"errors"
	"strings"

	"github.com/wmeredith/dxf/core"
	"github.com/wmeredith/dxf/encoding"
	"github.com/wmeredith/dxf/entities"
	"github.com/wmeredith/dxf/format"
	"github.com/wmeredith/dxf/model"
)

// Warning is a non-fatal condition noticed during parsing.
type Warning = core.Warning

// FormatWarnings renders warnings as a single semicolon-separated string.
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}

// Parse decodes a drawing from its text form with default options.
// Warnings accumulate across the whole parse; an error means no document.
func Parse(text string) (*model.Document, []Warning, error) {
	return ParseWithOptions(text, defaultParseOptions())
}

// ParseWithOptions decodes a drawing from its text form.
func ParseWithOptions(text string, opts ParseOptions) (*model.Document, []Warning, error) {
	collector := &core.Collector{}
	sink := core.DiagnosticSink(collector)
	if opts.Sink != nil {
		sink = core.TeeSink(collector, opts.Sink)
	}

	s := core.NewScanner(core.SplitLines(text), sink)
	doc, err := parseDocument(s, sink)
	if err != nil {
		return nil, collector.Warnings, err
	}
	return doc, collector.Warnings, nil
}

// ParseBytes decodes a drawing from raw file bytes with default options,
// converting the text per the codepage the drawing itself declares.
func ParseBytes(data []byte) (*model.Document, []Warning, error) {
	return ParseBytesWithOptions(data, defaultParseOptions())
}

// ParseBytesWithOptions decodes a drawing from raw file bytes. When the
// options do not pin a codepage, the header's $DWGCODEPAGE declaration is
// used; without one the bytes pass through as UTF-8. Binary-form DXF is
// rejected up front with a clear error.
func ParseBytesWithOptions(data []byte, opts ParseOptions) (*model.Document, []Warning, error) {
	if format.Detect(data) == format.BinaryDXF {
		return nil, nil, errors.New("binary DXF is not supported; convert the drawing to text form")
	}

	codepage := opts.Codepage
	if codepage == "" {
		codepage = encoding.SniffCodepage(data)
	}
	text, err := encoding.DecodeBytes(data, codepage)
	if err != nil {
		return nil, nil, err
	}
	return ParseWithOptions(text, opts)
}

// RegisterEntityHandler teaches the parser a new entity kind. The factory
// is invoked once per record of that kind. Registration is not safe to
// run concurrently with an in-flight parse.
func RegisterEntityHandler(kind string, factory func() entities.Entity) {
	entities.Register(kind, entities.Factory(factory))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustParse wraps a call returning (T, []Warning, error), panicking on
// error and discarding warnings.
func MustParse[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
