package entities

import (
	"github.com/wmeredith/dxf/core"
)

// LWPolyline flag bits (code 70).
const (
	LWPolylineClosed   = 1
	LWPolylinePlinegen = 128
)

// LWVertex is one vertex of a lightweight polyline. Vertices are not
// separate records on the wire; they are runs of groups inside the
// LWPOLYLINE record, each run starting with a code 10 pair.
type LWVertex struct {
	X, Y       float64
	Bulge      *float64 // code 42
	StartWidth *float64 // code 40
	EndWidth   *float64 // code 41
}

func (v *LWVertex) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst,
		core.FloatGroup(10, v.X),
		core.FloatGroup(20, v.Y),
	)
	dst = appendFloat(dst, 40, v.StartWidth)
	dst = appendFloat(dst, 41, v.EndWidth)
	dst = appendFloat(dst, 42, v.Bulge)
	return dst
}

// LWPolyline is a lightweight polyline: a flat list of 2D vertices with
// optional per-vertex bulge and width.
type LWPolyline struct {
	Common
	Flags         *int64   // code 70
	ConstantWidth *float64 // code 43
	Elevation     *float64 // code 38
	Thickness     *float64 // code 39
	Vertices      []*LWVertex
	Extrusion     *core.Point // code 210

	// DeclaredVertexCount preserves the code 90 value as read. It is
	// diagnosed against len(Vertices) but never trusted for allocation.
	DeclaredVertexCount *int64
}

func (p *LWPolyline) Kind() string { return "LWPOLYLINE" }

// Closed reports whether the polyline's closed bit is set.
func (p *LWPolyline) Closed() bool {
	return p.Flags != nil && core.HasFlag(*p.Flags, LWPolylineClosed)
}

// SetClosed sets or clears the closed bit, preserving the other flag bits.
func (p *LWPolyline) SetClosed(closed bool) {
	flags := int64(0)
	if p.Flags != nil {
		flags = *p.Flags
	}
	flags = core.SetFlag(flags, LWPolylineClosed, closed)
	p.Flags = &flags
}

func (p *LWPolyline) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	var cur *LWVertex
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			break
		}

		switch g.Code {
		case 10:
			// Each code 10 starts a new vertex run.
			pt, err := core.ParsePoint(s, g)
			if err != nil {
				return err
			}
			cur = &LWVertex{X: pt.X, Y: pt.Y}
			p.Vertices = append(p.Vertices, cur)
		case 40:
			if cur == nil {
				sink.Warnf("LWPOLYLINE: vertex group %s before first vertex", g)
				continue
			}
			cur.StartWidth = floatOf(g)
		case 41:
			if cur == nil {
				sink.Warnf("LWPOLYLINE: vertex group %s before first vertex", g)
				continue
			}
			cur.EndWidth = floatOf(g)
		case 42:
			if cur == nil {
				sink.Warnf("LWPOLYLINE: vertex group %s before first vertex", g)
				continue
			}
			cur.Bulge = floatOf(g)
		case 70:
			p.Flags = intOf(g)
		case 90:
			p.DeclaredVertexCount = intOf(g)
		case 43:
			p.ConstantWidth = floatOf(g)
		case 38:
			p.Elevation = floatOf(g)
		case 39:
			p.Thickness = floatOf(g)
		case 210:
			if p.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !p.Common.apply(g) {
				sink.Warnf("LWPOLYLINE: unhandled group %s", g)
			}
		}
	}

	if p.DeclaredVertexCount != nil && int(*p.DeclaredVertexCount) != len(p.Vertices) {
		sink.Warnf("LWPOLYLINE: declared %d vertices, found %d",
			*p.DeclaredVertexCount, len(p.Vertices))
	}
	return nil
}

func (p *LWPolyline) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "LWPOLYLINE")}
	dst = p.Common.appendGroups(dst)
	dst = append(dst, core.IntGroup(90, int64(len(p.Vertices))))
	dst = appendInt(dst, 70, p.Flags)
	dst = appendFloat(dst, 43, p.ConstantWidth)
	dst = appendFloat(dst, 38, p.Elevation)
	dst = appendFloat(dst, 39, p.Thickness)
	for _, v := range p.Vertices {
		dst = v.appendGroups(dst)
	}
	dst = appendPoint(dst, 210, p.Extrusion)
	return dst
}
