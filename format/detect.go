// Package format detects the on-disk flavor of a DXF drawing.
package format

import (
	"bytes"
	"strings"
	"unicode"
)

// Format represents a supported drawing flavor.
type Format int

const (
	// Unknown indicates an unrecognized byte blob.
	Unknown Format = iota
	// TextDXF indicates a text-form DXF drawing.
	TextDXF
	// BinaryDXF indicates a binary-form DXF drawing.
	BinaryDXF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case TextDXF:
		return "DXF"
	case BinaryDXF:
		return "binary DXF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case TextDXF, BinaryDXF:
		return ".dxf"
	default:
		return ""
	}
}

// binarySentinel is the fixed 22-byte header every binary DXF starts with.
var binarySentinel = []byte("AutoCAD Binary DXF\r\n\x1a\x00")

// Detect inspects raw bytes and reports the drawing flavor. A text DXF is
// recognized by its first group: an integer code line followed by a value
// line.
func Detect(data []byte) Format {
	if bytes.HasPrefix(data, binarySentinel) {
		return BinaryDXF
	}

	lines := strings.SplitN(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n", 3)
	if len(lines) < 2 {
		return Unknown
	}
	code := strings.TrimSpace(lines[0])
	if code == "" {
		return Unknown
	}
	for i, r := range code {
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		if !unicode.IsDigit(r) {
			return Unknown
		}
	}
	return TextDXF
}
