package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Solid is a filled triangle or quadrilateral.
type Solid struct {
	Common
	Corners   [4]*core.Point // codes 10, 11, 12, 13
	Thickness *float64       // code 39
	Extrusion *core.Point    // code 210
}

func (so *Solid) Kind() string { return "SOLID" }

func (so *Solid) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
		case 10, 11, 12, 13:
			idx := g.Code - 10
			if so.Corners[idx], err = pointOf(s, g); err != nil {
				return err
			}
		case 39:
			so.Thickness = floatOf(g)
		case 210:
			if so.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !so.Common.apply(g) {
				sink.Warnf("SOLID: unhandled group %s", g)
			}
		}
	}
}

func (so *Solid) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "SOLID")}
	dst = so.Common.appendGroups(dst)
	for i, c := range so.Corners {
		dst = appendPoint(dst, 10+i, c)
	}
	dst = appendFloat(dst, 39, so.Thickness)
	dst = appendPoint(dst, 210, so.Extrusion)
	return dst
}

// Edge-invisibility bits for 3DFACE (code 70). The sense is inverted
// relative to every other flag field: a set bit means the edge is hidden.
const (
	FaceEdge1Invisible = 1
	FaceEdge2Invisible = 2
	FaceEdge3Invisible = 4
	FaceEdge4Invisible = 8
)

var faceEdgeMasks = [4]int64{
	FaceEdge1Invisible,
	FaceEdge2Invisible,
	FaceEdge3Invisible,
	FaceEdge4Invisible,
}

// Face is a 3DFACE: four corner points (the fourth repeats the third for
// triangles) and per-edge visibility flags.
type Face struct {
	Common
	Corners        [4]*core.Point // codes 10, 11, 12, 13
	InvisibleFlags *int64         // code 70
}

func (f *Face) Kind() string { return "3DFACE" }

// EdgeVisible derives the visibility of edge (1-based). Edges with the
// flag bit clear are visible.
func (f *Face) EdgeVisible(edge int) bool {
	if edge < 1 || edge > 4 {
		return false
	}
	if f.InvisibleFlags == nil {
		return true
	}
	return core.FlagClear(*f.InvisibleFlags, faceEdgeMasks[edge-1])
}

// SetEdgeVisible sets one edge's visibility, leaving the other bits alone.
func (f *Face) SetEdgeVisible(edge int, visible bool) {
	if edge < 1 || edge > 4 {
		return
	}
	flags := int64(0)
	if f.InvisibleFlags != nil {
		flags = *f.InvisibleFlags
	}
	flags = core.SetFlag(flags, faceEdgeMasks[edge-1], !visible)
	f.InvisibleFlags = &flags
}

func (f *Face) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
		case 10, 11, 12, 13:
			idx := g.Code - 10
			if f.Corners[idx], err = pointOf(s, g); err != nil {
				return err
			}
		case 70:
			f.InvisibleFlags = intOf(g)
		default:
			if !f.Common.apply(g) {
				sink.Warnf("3DFACE: unhandled group %s", g)
			}
		}
	}
}

func (f *Face) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "3DFACE")}
	dst = f.Common.appendGroups(dst)
	for i, c := range f.Corners {
		dst = appendPoint(dst, 10+i, c)
	}
	dst = appendInt(dst, 70, f.InvisibleFlags)
	return dst
}
