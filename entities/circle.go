package entities

import (
	"math"

	"github.com/wmeredith/dxf/core"
)

// Circle is a full circle defined by center and radius.
type Circle struct {
	Common
	Center    *core.Point // code 10
	Radius    *float64    // code 40
	Thickness *float64    // code 39
	Extrusion *core.Point // code 210
}

func (c *Circle) Kind() string { return "CIRCLE" }

func (c *Circle) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			if c.Center, err = pointOf(s, g); err != nil {
				return err
			}
		case 40:
			c.Radius = floatOf(g)
		case 39:
			c.Thickness = floatOf(g)
		case 210:
			if c.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !c.Common.apply(g) {
				sink.Warnf("CIRCLE: unhandled group %s", g)
			}
		}
	}
}

func (c *Circle) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "CIRCLE")}
	dst = c.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, c.Center)
	dst = appendFloat(dst, 40, c.Radius)
	dst = appendFloat(dst, 39, c.Thickness)
	dst = appendPoint(dst, 210, c.Extrusion)
	return dst
}

// Arc is a circular arc. Angles are stored in degrees as they arrive on
// the wire.
type Arc struct {
	Common
	Center     *core.Point // code 10
	Radius     *float64    // code 40
	StartAngle *float64    // code 50, degrees
	EndAngle   *float64    // code 51, degrees
	Thickness  *float64    // code 39
	Extrusion  *core.Point // code 210
}

func (a *Arc) Kind() string { return "ARC" }

func (a *Arc) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			if a.Center, err = pointOf(s, g); err != nil {
				return err
			}
		case 40:
			a.Radius = floatOf(g)
		case 50:
			a.StartAngle = floatOf(g)
		case 51:
			a.EndAngle = floatOf(g)
		case 39:
			a.Thickness = floatOf(g)
		case 210:
			if a.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !a.Common.apply(g) {
				sink.Warnf("ARC: unhandled group %s", g)
			}
		}
	}
}

// Sweep derives the arc's angular length in degrees from the paired angle
// codes, normalized to [0, 360).
func (a *Arc) Sweep() float64 {
	if a.StartAngle == nil || a.EndAngle == nil {
		return 0
	}
	sweep := math.Mod(*a.EndAngle-*a.StartAngle, 360)
	if sweep < 0 {
		sweep += 360
	}
	return sweep
}

func (a *Arc) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "ARC")}
	dst = a.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, a.Center)
	dst = appendFloat(dst, 40, a.Radius)
	dst = appendFloat(dst, 50, a.StartAngle)
	dst = appendFloat(dst, 51, a.EndAngle)
	dst = appendFloat(dst, 39, a.Thickness)
	dst = appendPoint(dst, 210, a.Extrusion)
	return dst
}
