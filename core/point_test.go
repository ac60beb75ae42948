package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint3D(t *testing.T) {
	s := scannerFor(t, "10", "1.0", "20", "2.0", "30", "3.0", "0", "EOF")

	first, err := s.Next()
	require.NoError(t, err)
	p, err := ParsePoint(s, first)
	require.NoError(t, err)

	assert.Equal(t, Point3D(1, 2, 3), p)

	// Scanner must be positioned past all three component groups.
	g, err := s.Next()
	require.NoError(t, err)
	assert.True(t, g.IsEndOfFile())
}

func TestParsePoint2DRewindExactness(t *testing.T) {
	s := scannerFor(t, "10", "1.0", "20", "2.0", "40", "9.5", "0", "EOF")

	first, err := s.Next()
	require.NoError(t, err)
	p, err := ParsePoint(s, first)
	require.NoError(t, err)

	assert.Equal(t, Point2D(1, 2), p)
	assert.False(t, p.HasZ)

	// The speculative z read must have been pushed back exactly once: the
	// next read returns the code-40 group unchanged.
	g, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 40, g.Code)
	f, _ := g.Float()
	assert.Equal(t, 9.5, f)
}

func TestParsePoint2DUnknownFollowerWarnsOnce(t *testing.T) {
	// The z probe consumes the unknown-code group and pushes it back; the
	// record loop then re-reads it. One notice total.
	var c Collector
	s := NewScanner([]string{"10", "1.0", "20", "2.0", "7777", "mystery", "0", "EOF"}, &c)

	first, err := s.Next()
	require.NoError(t, err)
	p, err := ParsePoint(s, first)
	require.NoError(t, err)
	assert.False(t, p.HasZ)

	g, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 7777, g.Code)
	assert.Len(t, c.Warnings, 1)
}

func TestParsePointMalformed(t *testing.T) {
	s := scannerFor(t, "10", "1.0", "30", "3.0", "0", "EOF")

	first, err := s.Next()
	require.NoError(t, err)
	_, err = ParsePoint(s, first)

	var mp *MalformedPointError
	require.ErrorAs(t, err, &mp)
	assert.Equal(t, 20, mp.Expected)
	assert.Equal(t, 30, mp.Actual)
}

func TestParsePointTruncated(t *testing.T) {
	s := scannerFor(t, "10", "1.0")
	first, err := s.Next()
	require.NoError(t, err)
	_, err = ParsePoint(s, first)
	assert.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestPointGroupsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Point
	}{
		{"2d", Point2D(1.5, -2)},
		{"3d", Point3D(0, 4, 7.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := AppendPointGroups(nil, 10, tt.p)

			var lines []string
			for _, g := range groups {
				lines = append(lines, Integer(int64(g.Code)).Wire(), g.Value.Wire())
			}
			lines = append(lines, "0", "EOF")

			s := NewScanner(lines, nil)
			first, err := s.Next()
			require.NoError(t, err)
			back, err := ParsePoint(s, first)
			require.NoError(t, err)
			assert.Equal(t, tt.p, back)
		})
	}
}

func TestParseMatrix(t *testing.T) {
	lines := make([]string, 0, 36)
	for i := 0; i < 16; i++ {
		lines = append(lines, "47", Float(float64(i)).Wire())
	}
	lines = append(lines, "0", "EOF")

	s := NewScanner(lines, nil)
	first, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, 47, first.Code)

	m, err := ParseMatrix(s, 47)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		assert.Equal(t, float64(i), m[i])
	}

	g, err := s.Next()
	require.NoError(t, err)
	assert.True(t, g.IsEndOfFile())
}

func TestParseMatrixMismatch(t *testing.T) {
	lines := []string{"47", "1.0", "47", "2.0", "48", "3.0", "0", "EOF"}
	s := NewScanner(lines, nil)
	_, err := s.Next()
	require.NoError(t, err)

	_, err = ParseMatrix(s, 47)
	var mm *MalformedMatrixError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, 47, mm.Expected)
	assert.Equal(t, 48, mm.Actual)
}

func TestMatrixGroupsRoundTrip(t *testing.T) {
	var m Matrix
	for i := range m {
		m[i] = float64(i) / 4
	}
	groups := AppendMatrixGroups(nil, 47, m)
	require.Len(t, groups, 16)

	var lines []string
	for _, g := range groups {
		lines = append(lines, "47", g.Value.Wire())
	}
	lines = append(lines, "0", "EOF")

	s := NewScanner(lines, nil)
	_, err := s.Next()
	require.NoError(t, err)
	back, err := ParseMatrix(s, 47)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}
