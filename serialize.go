package dxf

import (
	"strconv"
	"strings"

	"github.com/wmeredith/dxf/model"
)

// TokenStream renders a document incrementally. Each token is the text of
// one contiguous run of groups (a section marker, one record, the
// end-of-file marker); no group is rendered before the token holding it
// is pulled.
type TokenStream struct {
	emitters []model.Emitter
	next     int
}

// Serialize returns a lazy token stream over the document's wire form.
// Tokens render from the document at pull time, so records are not
// materialized before the stream reaches them.
func Serialize(doc *model.Document) *TokenStream {
	return &TokenStream{emitters: doc.Emitters()}
}

// Next renders and returns the next token. The second result is false
// once the stream is exhausted.
func (ts *TokenStream) Next() (string, bool) {
	for ts.next < len(ts.emitters) {
		groups := ts.emitters[ts.next]()
		ts.next++
		if len(groups) == 0 {
			continue
		}

		var b strings.Builder
		for i, g := range groups {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strconv.Itoa(g.Code))
			b.WriteByte('\n')
			b.WriteString(g.Value.Wire())
		}
		return b.String(), true
	}
	return "", false
}

// SerializeToString drains the token stream into the full text form:
// tokens joined with newlines, no trailing newline.
func SerializeToString(doc *model.Document) string {
	ts := Serialize(doc)
	var b strings.Builder
	first := true
	for {
		tok, ok := ts.Next()
		if !ok {
			return b.String()
		}
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(tok)
		first = false
	}
}
