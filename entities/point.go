package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Point is a single location marker.
type Point struct {
	Common
	Position  *core.Point // code 10
	Thickness *float64    // code 39
	Extrusion *core.Point // code 210
}

func (p *Point) Kind() string { return "POINT" }

func (p *Point) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			if p.Position, err = pointOf(s, g); err != nil {
				return err
			}
		case 39:
			p.Thickness = floatOf(g)
		case 210:
			if p.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !p.Common.apply(g) {
				sink.Warnf("POINT: unhandled group %s", g)
			}
		}
	}
}

func (p *Point) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "POINT")}
	dst = p.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, p.Position)
	dst = appendFloat(dst, 39, p.Thickness)
	dst = appendPoint(dst, 210, p.Extrusion)
	return dst
}
