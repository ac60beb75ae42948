// Package encoding converts raw drawing bytes into the UTF-8 text the
// parser consumes, honoring the codepage older drawings declare in their
// $DWGCODEPAGE header variable.
package encoding

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// codepages maps DXF codepage declarations to their character maps.
// Names are matched case-insensitively.
var codepages = map[string]*charmap.Charmap{
	"ansi_1250": charmap.Windows1250,
	"ansi_1251": charmap.Windows1251,
	"ansi_1252": charmap.Windows1252,
	"ansi_1253": charmap.Windows1253,
	"ansi_1254": charmap.Windows1254,
	"ansi_1255": charmap.Windows1255,
	"ansi_1256": charmap.Windows1256,
	"ansi_1257": charmap.Windows1257,
	"ansi_1258": charmap.Windows1258,
	"ansi_874":  charmap.Windows874,
	"dos437":    charmap.CodePage437,
	"dos850":    charmap.CodePage850,
	"dos852":    charmap.CodePage852,
	"dos855":    charmap.CodePage855,
	"dos860":    charmap.CodePage860,
	"dos863":    charmap.CodePage863,
	"dos865":    charmap.CodePage865,
	"dos866":    charmap.CodePage866,
	"iso8859-1": charmap.ISO8859_1,
	"iso8859-2": charmap.ISO8859_2,
	"iso8859-5": charmap.ISO8859_5,
	"iso8859-7": charmap.ISO8859_7,
	"iso8859-9": charmap.ISO8859_9,
	"koi8-r":    charmap.KOI8R,
}

// DecodeBytes converts raw bytes to a string using the named codepage.
// An empty name, "utf-8", or "utf8" passes the bytes through unchanged.
// Unknown names are an error rather than a silent passthrough, since a
// wrong codepage corrupts every extended character in the drawing.
func DecodeBytes(data []byte, codepage string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(codepage))
	switch name {
	case "", "utf-8", "utf8":
		return string(data), nil
	}
	cm, ok := codepages[name]
	if !ok {
		return "", fmt.Errorf("unsupported codepage %q", codepage)
	}
	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", codepage, err)
	}
	return string(decoded), nil
}

// SniffCodepage scans the header for the $DWGCODEPAGE declaration without
// a full parse, returning the declared name or "". The variable's value
// is plain ASCII, so scanning the undecoded bytes line by line is safe.
func SniffCodepage(data []byte) string {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i := 0; i+1 < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "9" {
			continue
		}
		if strings.TrimSpace(lines[i+1]) != "$DWGCODEPAGE" {
			continue
		}
		// The value group follows the variable name group.
		if i+3 < len(lines) {
			return strings.TrimSpace(lines[i+3])
		}
		return ""
	}
	return ""
}
