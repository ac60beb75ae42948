package core

// Point represents a 2- or 3-component coordinate. HasZ records whether a
// z component was present on the wire; a 2D point must serialize without a
// z placeholder.
type Point struct {
	X, Y float64
	Z    float64
	HasZ bool
}

// Point2D builds a 2D point.
func Point2D(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Point3D builds a 3D point.
func Point3D(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, HasZ: true}
}

// ParsePoint reads the y and optional z components of a point whose x
// component has just been consumed as first. The y component must arrive
// under first.Code+10. A z component under first.Code+20 is read
// speculatively: if the next group carries any other code, exactly that one
// read is pushed back and the point is 2D. The scanner ends positioned on
// the last group actually consumed as part of the point.
func ParsePoint(s *Scanner, first Group) (Point, error) {
	x, ok := first.Float()
	if !ok {
		return Point{}, &MalformedPointError{Expected: first.Code, Actual: first.Code}
	}
	p := Point{X: x}

	g, err := s.Next()
	if err != nil {
		return Point{}, err
	}
	if g.Code != first.Code+10 {
		return Point{}, &MalformedPointError{Expected: first.Code + 10, Actual: g.Code}
	}
	p.Y, _ = g.Float()

	g, err = s.Next()
	if err != nil {
		return Point{}, err
	}
	if g.Code != first.Code+20 {
		s.Rewind(1)
		return p, nil
	}
	p.Z, _ = g.Float()
	p.HasZ = true
	return p, nil
}

// AppendPointGroups appends the wire groups for a point anchored at the
// given x code. 2D points omit the z group entirely.
func AppendPointGroups(dst []Group, code int, p Point) []Group {
	dst = append(dst, FloatGroup(code, p.X), FloatGroup(code+10, p.Y))
	if p.HasZ {
		dst = append(dst, FloatGroup(code+20, p.Z))
	}
	return dst
}

// Matrix is a 4x4 transformation matrix carried as exactly 16 float groups
// all tagged with the same code, consumed positionally in read order.
type Matrix [16]float64

// ParseMatrix reads a 16-element matrix whose first element has just been
// consumed. It rewinds that one group, then reads exactly 16 groups all
// expected to carry the given code.
func ParseMatrix(s *Scanner, code int) (Matrix, error) {
	var m Matrix
	s.Rewind(1)
	for i := 0; i < 16; i++ {
		g, err := s.Next()
		if err != nil {
			return Matrix{}, err
		}
		if g.Code != code {
			return Matrix{}, &MalformedMatrixError{Expected: code, Actual: g.Code}
		}
		m[i], _ = g.Float()
	}
	return m, nil
}

// AppendMatrixGroups appends the 16 wire groups for a matrix.
func AppendMatrixGroups(dst []Group, code int, m Matrix) []Group {
	for _, v := range m {
		dst = append(dst, FloatGroup(code, v))
	}
	return dst
}
