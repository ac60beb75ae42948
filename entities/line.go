package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Line is a straight segment between two points.
type Line struct {
	Common
	Start     *core.Point // code 10
	End       *core.Point // code 11
	Thickness *float64    // code 39
	Extrusion *core.Point // code 210
}

func (l *Line) Kind() string { return "LINE" }

func (l *Line) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			if l.Start, err = pointOf(s, g); err != nil {
				return err
			}
		case 11:
			if l.End, err = pointOf(s, g); err != nil {
				return err
			}
		case 39:
			l.Thickness = floatOf(g)
		case 210:
			if l.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !l.Common.apply(g) {
				sink.Warnf("LINE: unhandled group %s", g)
			}
		}
	}
}

func (l *Line) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "LINE")}
	dst = l.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, l.Start)
	dst = appendPoint(dst, 11, l.End)
	dst = appendFloat(dst, 39, l.Thickness)
	dst = appendPoint(dst, 210, l.Extrusion)
	return dst
}
