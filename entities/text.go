package entities

import (
	"strings"

	"github.com/wmeredith/dxf/core"
)

// Generation flag bits for TEXT (code 71).
const (
	TextBackwards  = 2
	TextUpsideDown = 4
)

// Text is a single-line text entity.
type Text struct {
	Common
	Position        *core.Point // code 10
	SecondAlignment *core.Point // code 11
	Height          *float64    // code 40
	Value           string      // code 1
	Rotation        *float64    // code 50, degrees
	XScale          *float64    // code 41
	StyleName       string      // code 7
	GenerationFlags *int64      // code 71
	HAlign          *int64      // code 72
	VAlign          *int64      // code 73
	Extrusion       *core.Point // code 210

	hasValue bool
}

func (t *Text) Kind() string { return "TEXT" }

// Backwards derives the mirrored-in-x generation flag.
func (t *Text) Backwards() bool {
	return t.GenerationFlags != nil && core.HasFlag(*t.GenerationFlags, TextBackwards)
}

// UpsideDown derives the mirrored-in-y generation flag.
func (t *Text) UpsideDown() bool {
	return t.GenerationFlags != nil && core.HasFlag(*t.GenerationFlags, TextUpsideDown)
}

// SetBackwards sets the mirrored-in-x bit, leaving undocumented bits alone.
func (t *Text) SetBackwards(on bool) {
	flags := int64(0)
	if t.GenerationFlags != nil {
		flags = *t.GenerationFlags
	}
	flags = core.SetFlag(flags, TextBackwards, on)
	t.GenerationFlags = &flags
}

func (t *Text) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			return nil
		}

		switch g.Code {
		case 10:
			if t.Position, err = pointOf(s, g); err != nil {
				return err
			}
		case 11:
			if t.SecondAlignment, err = pointOf(s, g); err != nil {
				return err
			}
		case 40:
			t.Height = floatOf(g)
		case 1:
			t.Value, _ = g.Text()
			t.hasValue = true
		case 50:
			t.Rotation = floatOf(g)
		case 41:
			t.XScale = floatOf(g)
		case 7:
			t.StyleName, _ = g.Text()
		case 71:
			t.GenerationFlags = intOf(g)
		case 72:
			t.HAlign = intOf(g)
		case 73:
			t.VAlign = intOf(g)
		case 210:
			if t.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !t.Common.apply(g) {
				sink.Warnf("TEXT: unhandled group %s", g)
			}
		}
	}
}

func (t *Text) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "TEXT")}
	dst = t.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, t.Position)
	dst = appendFloat(dst, 40, t.Height)
	if t.hasValue || t.Value != "" {
		dst = append(dst, core.TextGroup(1, t.Value))
	}
	dst = appendFloat(dst, 50, t.Rotation)
	dst = appendFloat(dst, 41, t.XScale)
	if t.StyleName != "" {
		dst = append(dst, core.TextGroup(7, t.StyleName))
	}
	dst = appendInt(dst, 71, t.GenerationFlags)
	dst = appendInt(dst, 72, t.HAlign)
	dst = appendPoint(dst, 11, t.SecondAlignment)
	dst = appendInt(dst, 73, t.VAlign)
	dst = appendPoint(dst, 210, t.Extrusion)
	return dst
}

// MText is multi-line text. Its string may arrive split across several
// groups (continuation chunks under code 3, a single-group form under
// code 1) and is reassembled in encounter order.
type MText struct {
	Common
	InsertionPoint   *core.Point // code 10
	Height           *float64    // code 40
	Width            *float64    // code 41
	Attachment       *int64      // code 71
	DrawingDirection *int64      // code 72
	Value            string      // codes 1 and 3
	StyleName        string      // code 7
	Rotation         *float64    // code 50
	Extrusion        *core.Point // code 210

	hasValue bool
}

func (m *MText) Kind() string { return "MTEXT" }

func (m *MText) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	var chunks []string
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			m.Value = strings.Join(chunks, "")
			m.hasValue = len(chunks) > 0
			return nil
		}

		switch g.Code {
		case 10:
			if m.InsertionPoint, err = pointOf(s, g); err != nil {
				return err
			}
		case 40:
			m.Height = floatOf(g)
		case 41:
			m.Width = floatOf(g)
		case 71:
			m.Attachment = intOf(g)
		case 72:
			m.DrawingDirection = intOf(g)
		case 1, 3:
			txt, _ := g.Text()
			chunks = append(chunks, txt)
		case 7:
			m.StyleName, _ = g.Text()
		case 50:
			m.Rotation = floatOf(g)
		case 210:
			if m.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !m.Common.apply(g) {
				sink.Warnf("MTEXT: unhandled group %s", g)
			}
		}
	}
}

func (m *MText) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "MTEXT")}
	dst = m.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, m.InsertionPoint)
	dst = appendFloat(dst, 40, m.Height)
	dst = appendFloat(dst, 41, m.Width)
	dst = appendInt(dst, 71, m.Attachment)
	dst = appendInt(dst, 72, m.DrawingDirection)
	if m.hasValue || m.Value != "" {
		dst = core.AppendChunkedGroups(dst, 1, 3, m.Value)
	}
	if m.StyleName != "" {
		dst = append(dst, core.TextGroup(7, m.StyleName))
	}
	dst = appendFloat(dst, 50, m.Rotation)
	dst = appendPoint(dst, 210, m.Extrusion)
	return dst
}
