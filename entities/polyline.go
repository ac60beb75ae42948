package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Polyline flag bits (code 70).
const (
	PolylineClosed     = 1
	PolylineIs3D       = 8
	PolylineIsPolyface = 64
)

// Vertex is a child record of a heavyweight POLYLINE. On the wire it is
// its own record introduced by a code 0 VERTEX group.
type Vertex struct {
	Common
	Position   *core.Point // code 10
	Bulge      *float64    // code 42
	Flags      *int64      // code 70
	StartWidth *float64    // code 40
	EndWidth   *float64    // code 41
}

func (v *Vertex) Kind() string { return "VERTEX" }

func (v *Vertex) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			if v.Position, err = pointOf(s, g); err != nil {
				return err
			}
		case 42:
			v.Bulge = floatOf(g)
		case 70:
			v.Flags = intOf(g)
		case 40:
			v.StartWidth = floatOf(g)
		case 41:
			v.EndWidth = floatOf(g)
		default:
			if !v.Common.apply(g) {
				sink.Warnf("VERTEX: unhandled group %s", g)
			}
		}
	}
}

func (v *Vertex) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "VERTEX")}
	dst = v.Common.appendGroups(dst)
	dst = appendPoint(dst, 10, v.Position)
	dst = appendFloat(dst, 40, v.StartWidth)
	dst = appendFloat(dst, 41, v.EndWidth)
	dst = appendFloat(dst, 42, v.Bulge)
	dst = appendInt(dst, 70, v.Flags)
	return dst
}

// Polyline is the heavyweight polyline. Its vertices are separate VERTEX
// records following it, terminated by a SEQEND record whose groups (the
// handle and owner of the terminator) are consumed with the polyline.
type Polyline struct {
	Common
	Flags      *int64      // code 70
	Elevation  *core.Point // code 10, normally 0,0,elevation
	Thickness  *float64    // code 39
	StartWidth *float64    // code 40
	EndWidth   *float64    // code 41
	Extrusion  *core.Point // code 210
	Vertices   []*Vertex

	// SeqEndHandle preserves the handle of the SEQEND terminator so a
	// round trip reproduces it.
	SeqEndHandle string
	SeqEndOwner  string
}

func (p *Polyline) Kind() string { return "POLYLINE" }

// Closed reports whether the polyline's closed bit is set.
func (p *Polyline) Closed() bool {
	return p.Flags != nil && core.HasFlag(*p.Flags, PolylineClosed)
}

func (p *Polyline) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			name, _ := g.Text()
			switch name {
			case "VERTEX":
				v := &Vertex{}
				if err := v.Parse(s, sink); err != nil {
					return err
				}
				p.Vertices = append(p.Vertices, v)
				continue
			case "SEQEND":
				return p.parseSeqEnd(s, sink)
			default:
				// Some other record; the polyline ends without its
				// terminator.
				sink.Warnf("POLYLINE: missing SEQEND before %s", name)
				s.Rewind(1)
				return nil
			}
		}

		switch g.Code {
		case 10:
			if p.Elevation, err = pointOf(s, g); err != nil {
				return err
			}
		case 39:
			p.Thickness = floatOf(g)
		case 40:
			p.StartWidth = floatOf(g)
		case 41:
			p.EndWidth = floatOf(g)
		case 70:
			p.Flags = intOf(g)
		case 210:
			if p.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !p.Common.apply(g) {
				sink.Warnf("POLYLINE: unhandled group %s", g)
			}
		}
	}
}

// parseSeqEnd consumes the groups of the SEQEND terminator up to the
// next record boundary.
func (p *Polyline) parseSeqEnd(s *core.Scanner, sink core.DiagnosticSink) error {
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
		case 5:
			p.SeqEndHandle, _ = g.Text()
		case 330:
			p.SeqEndOwner, _ = g.Text()
		case 100, 8:
			// Subclass marker and layer of the terminator carry no
			// information beyond the polyline's own.
		default:
			sink.Warnf("SEQEND: unhandled group %s", g)
		}
	}
}

func (p *Polyline) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "POLYLINE")}
	dst = p.Common.appendGroups(dst)
	dst = appendInt(dst, 70, p.Flags)
	dst = appendPoint(dst, 10, p.Elevation)
	dst = appendFloat(dst, 39, p.Thickness)
	dst = appendFloat(dst, 40, p.StartWidth)
	dst = appendFloat(dst, 41, p.EndWidth)
	dst = appendPoint(dst, 210, p.Extrusion)
	for _, v := range p.Vertices {
		dst = append(dst, v.Groups()...)
	}
	dst = append(dst, core.TextGroup(0, "SEQEND"))
	if p.SeqEndHandle != "" {
		dst = append(dst, core.TextGroup(5, p.SeqEndHandle))
	}
	if p.SeqEndOwner != "" {
		dst = append(dst, core.TextGroup(330, p.SeqEndOwner))
	}
	return dst
}
