package entities

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmeredith/dxf/core"
)

// scanBody builds a scanner over an entity body. The caller supplies
// alternating code/value lines; an end-of-file pair is appended so the
// parse loop sees a record boundary.
func scanBody(sink core.DiagnosticSink, lines ...string) *core.Scanner {
	lines = append(lines, "0", core.EndOfFileToken)
	return core.NewScanner(lines, sink)
}

// scanGroups renders groups back into lines and wraps them in a scanner.
func scanGroups(groups []core.Group, sink core.DiagnosticSink) *core.Scanner {
	var lines []string
	for _, g := range groups {
		lines = append(lines, strconv.Itoa(g.Code), g.Value.Wire())
	}
	lines = append(lines, "0", core.EndOfFileToken)
	return core.NewScanner(lines, sink)
}

// reparse serializes an entity and parses the result into a fresh
// instance of the same kind, failing on any warning.
func reparse(t *testing.T, e Entity) Entity {
	t.Helper()
	sink := &core.Collector{}
	s := scanGroups(e.Groups(), sink)

	first, err := s.Next()
	require.NoError(t, err)
	name, _ := first.Text()
	require.Equal(t, e.Kind(), name)

	out := New(name)
	require.NotNil(t, out)
	require.NoError(t, out.Parse(s, sink))
	require.Empty(t, sink.Warnings)
	return out
}

func TestLineParse(t *testing.T) {
	sink := &core.Collector{}
	s := scanBody(sink,
		"5", "1AF",
		"8", "Walls",
		"62", "3",
		"10", "1.0",
		"20", "2.0",
		"30", "3.0",
		"11", "4.0",
		"21", "5.0",
	)

	var line Line
	require.NoError(t, line.Parse(s, sink))
	assert.Empty(t, sink.Warnings)

	assert.Equal(t, "1AF", line.Handle)
	assert.Equal(t, "Walls", line.Layer)
	require.NotNil(t, line.ColorIndex)
	assert.Equal(t, int64(3), *line.ColorIndex)

	require.NotNil(t, line.Start)
	assert.Equal(t, core.Point3D(1, 2, 3), *line.Start)
	require.NotNil(t, line.End)
	assert.Equal(t, core.Point2D(4, 5), *line.End)
}

func TestLineRoundTrip(t *testing.T) {
	thickness := 0.5
	start := core.Point3D(1, 2, 3)
	end := core.Point2D(4, 5)
	in := &Line{
		Common:    Common{Handle: "2B", Layer: "0"},
		Start:     &start,
		End:       &end,
		Thickness: &thickness,
	}

	out := reparse(t, in).(*Line)
	assert.Equal(t, in, out)
}

func TestArcSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"simple", 0, 90, 90},
		{"wraps zero", 270, 45, 135},
		{"full turn start", 30, 30, 0},
		{"negative end", 90, -90, 180},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arc := &Arc{StartAngle: &tc.start, EndAngle: &tc.end}
			assert.InDelta(t, tc.want, arc.Sweep(), 1e-9)
		})
	}
}

func TestCircleRoundTrip(t *testing.T) {
	center := core.Point3D(10, 20, 0)
	radius := 4.5
	in := &Circle{
		Common: Common{Handle: "C1", Layer: "Round"},
		Center: &center,
		Radius: &radius,
	}
	out := reparse(t, in).(*Circle)
	assert.Equal(t, in, out)
}

func TestTextGenerationFlags(t *testing.T) {
	flags := int64(6) // backwards and upside down
	txt := &Text{GenerationFlags: &flags}
	assert.True(t, txt.Backwards())
	assert.True(t, txt.UpsideDown())

	txt.SetBackwards(false)
	assert.False(t, txt.Backwards())
	assert.True(t, txt.UpsideDown(), "clearing one bit must not touch the other")
}

func TestMTextChunkedRoundTrip(t *testing.T) {
	long := strings.Repeat("x", 260) + strings.Repeat("y", 260)
	height := 2.5
	in := &MText{
		Common: Common{Handle: "M1"},
		Value:  long,
		Height: &height,
	}

	groups := in.Groups()
	chunkCodes := 0
	for _, g := range groups {
		if g.Code == 1 || g.Code == 3 {
			chunkCodes++
		}
	}
	assert.Equal(t, 3, chunkCodes, "520 runes split into three chunks")

	out := reparse(t, in).(*MText)
	assert.Equal(t, long, out.Value)
}

func TestEntityUnhandledCodeWarnsAndContinues(t *testing.T) {
	sink := &core.Collector{}
	s := scanBody(sink,
		"10", "0.0",
		"20", "0.0",
		"7777", "mystery", // unknown code: one scanner warning
		"40", "3.0",
	)

	var c Circle
	require.NoError(t, c.Parse(s, sink))
	require.NotNil(t, c.Radius)
	assert.Equal(t, 3.0, *c.Radius)

	// One warning from the scanner for the unknown code, one from the
	// entity for the unhandled group. Parsing still succeeds.
	require.Len(t, sink.Warnings, 2)
	assert.Contains(t, sink.Warnings[0].Message, "no defined type")
	assert.Contains(t, sink.Warnings[1].Message, "unhandled group")
}

func TestSolidParse(t *testing.T) {
	sink := &core.Collector{}
	s := scanBody(sink,
		"10", "0.0", "20", "0.0",
		"11", "1.0", "21", "0.0",
		"12", "1.0", "22", "1.0",
		"13", "0.0", "23", "1.0",
	)

	var so Solid
	require.NoError(t, so.Parse(s, sink))
	assert.Empty(t, sink.Warnings)
	for i, c := range so.Corners {
		require.NotNil(t, c, "corner %d", i)
	}
	assert.Equal(t, core.Point2D(1, 1), *so.Corners[2])
}

func TestFaceEdgeVisibility(t *testing.T) {
	sink := &core.Collector{}
	s := scanBody(sink,
		"10", "0.0", "20", "0.0",
		"11", "1.0", "21", "0.0",
		"12", "1.0", "22", "1.0",
		"13", "1.0", "23", "1.0",
		"70", "5", // edges 1 and 3 hidden
	)

	var f Face
	require.NoError(t, f.Parse(s, sink))
	assert.False(t, f.EdgeVisible(1))
	assert.True(t, f.EdgeVisible(2))
	assert.False(t, f.EdgeVisible(3))
	assert.True(t, f.EdgeVisible(4))

	f.SetEdgeVisible(1, true)
	assert.True(t, f.EdgeVisible(1))
	assert.False(t, f.EdgeVisible(3), "other bits untouched")
}

func TestFaceEdgesDefaultVisible(t *testing.T) {
	var f Face
	for edge := 1; edge <= 4; edge++ {
		assert.True(t, f.EdgeVisible(edge))
	}
}

func TestLWPolylineVertexRuns(t *testing.T) {
	sink := &core.Collector{}
	// The bulge after the second vertex's position belongs to the second
	// vertex, not the first.
	s := scanBody(sink,
		"90", "3",
		"70", "1",
		"10", "0.0", "20", "0.0",
		"10", "5.0", "20", "0.0",
		"42", "1.0",
		"10", "5.0", "20", "5.0",
		"40", "0.1",
		"41", "0.2",
	)

	var p LWPolyline
	require.NoError(t, p.Parse(s, sink))
	assert.Empty(t, sink.Warnings)
	require.Len(t, p.Vertices, 3)

	assert.Nil(t, p.Vertices[0].Bulge)
	require.NotNil(t, p.Vertices[1].Bulge)
	assert.Equal(t, 1.0, *p.Vertices[1].Bulge)
	require.NotNil(t, p.Vertices[2].StartWidth)
	assert.Equal(t, 0.1, *p.Vertices[2].StartWidth)
	require.NotNil(t, p.Vertices[2].EndWidth)
	assert.Equal(t, 0.2, *p.Vertices[2].EndWidth)
	assert.True(t, p.Closed())
}

func TestLWPolylineCountMismatchWarns(t *testing.T) {
	sink := &core.Collector{}
	s := scanBody(sink,
		"90", "5",
		"10", "0.0", "20", "0.0",
		"10", "1.0", "20", "1.0",
	)

	var p LWPolyline
	require.NoError(t, p.Parse(s, sink))
	require.Len(t, p.Vertices, 2)
	require.Len(t, sink.Warnings, 1)
	assert.Contains(t, sink.Warnings[0].Message, "declared 5 vertices, found 2")
}

func TestLWPolylineRoundTripEmitsActualCount(t *testing.T) {
	bad := int64(9)
	p := &LWPolyline{
		DeclaredVertexCount: &bad,
		Vertices: []*LWVertex{
			{X: 0, Y: 0},
			{X: 1, Y: 1},
		},
	}
	for _, g := range p.Groups() {
		if g.Code == 90 {
			n, _ := g.Int()
			assert.Equal(t, int64(2), n, "serialization recounts vertices")
		}
	}
}

func TestPolylineWithVerticesAndSeqEnd(t *testing.T) {
	sink := &core.Collector{}
	lines := []string{
		"5", "P1",
		"70", "1",
		"0", "VERTEX",
		"5", "V1",
		"10", "0.0", "20", "0.0",
		"0", "VERTEX",
		"5", "V2",
		"10", "3.0", "20", "4.0",
		"42", "0.5",
		"0", "SEQEND",
		"5", "S1",
		"330", "P1",
		"0", core.EndOfFileToken,
	}
	s := core.NewScanner(lines, sink)

	var p Polyline
	require.NoError(t, p.Parse(s, sink))
	assert.Empty(t, sink.Warnings)
	assert.True(t, p.Closed())
	require.Len(t, p.Vertices, 2)
	assert.Equal(t, "V2", p.Vertices[1].Handle)
	assert.Equal(t, "S1", p.SeqEndHandle)
	assert.Equal(t, "P1", p.SeqEndOwner)

	// The SEQEND was consumed with the polyline; the next read is the
	// stream terminator.
	g, err := s.Next()
	require.NoError(t, err)
	assert.True(t, g.IsEndOfFile())
}

func TestPolylineMissingSeqEndWarns(t *testing.T) {
	sink := &core.Collector{}
	lines := []string{
		"0", "VERTEX",
		"10", "0.0", "20", "0.0",
		"0", "LINE",
		"0", core.EndOfFileToken,
	}
	s := core.NewScanner(lines, sink)

	var p Polyline
	require.NoError(t, p.Parse(s, sink))
	require.Len(t, sink.Warnings, 1)
	assert.Contains(t, sink.Warnings[0].Message, "missing SEQEND")

	// The LINE marker stays unread for the caller.
	g, err := s.Next()
	require.NoError(t, err)
	name, _ := g.Text()
	assert.Equal(t, "LINE", name)
}

func TestMLeaderNestedBlocks(t *testing.T) {
	sink := &core.Collector{}
	s := scanBody(sink,
		"340", "5D",
		"170", "1",
		"300", "CONTEXT_DATA{",
		"40", "1.0",
		"10", "0.0", "20", "0.0",
		"302", "LEADER{",
		"290", "1",
		"10", "8.0", "20", "8.0",
		"304", "LEADER_LINE{",
		"10", "1.0", "20", "1.0",
		"10", "2.0", "20", "2.0",
		"91", "0",
		"305", "}",
		"303", "}",
		"301", "}",
	)

	var m MLeader
	require.NoError(t, m.Parse(s, sink))
	assert.Empty(t, sink.Warnings)

	assert.Equal(t, "5D", m.StyleHandle)
	require.NotNil(t, m.Context)
	require.Len(t, m.Context.Leaders, 1)

	ld := m.Context.Leaders[0]
	require.NotNil(t, ld.HasLastPoint)
	assert.True(t, *ld.HasLastPoint)
	require.Len(t, ld.Lines, 1)
	assert.Len(t, ld.Lines[0].Points, 2)
	assert.Equal(t, core.Point2D(2, 2), *ld.Lines[0].Points[1])
}

func TestMLeaderContextRoundTrip(t *testing.T) {
	scale := 2.0
	base := core.Point3D(1, 2, 3)
	mat := core.Matrix{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	in := &MLeader{
		Common:      Common{Handle: "ML1"},
		StyleHandle: "5D",
		Context: &MLeaderContext{
			ScaleFactor: &scale,
			BasePoint:   &base,
			TextMatrix:  &mat,
			Leaders: []*Leader{
				{Lines: []*LeaderLine{{Points: []*core.Point{
					ptr(core.Point2D(0, 0)),
					ptr(core.Point2D(4, 4)),
				}}}},
			},
		},
	}

	out := reparse(t, in).(*MLeader)
	require.NotNil(t, out.Context)
	assert.Equal(t, in.Context.Leaders, out.Context.Leaders)
	require.NotNil(t, out.Context.TextMatrix)
	assert.Equal(t, mat, *out.Context.TextMatrix)
}

func ptr[T any](v T) *T { return &v }

func TestRegistryExtension(t *testing.T) {
	assert.Nil(t, New("WIDGET"))

	Register("WIDGET", func() Entity { return &Line{} })
	defer delete(registry, "WIDGET")

	e := New("WIDGET")
	require.NotNil(t, e)
	assert.Contains(t, Kinds(), "WIDGET")
}

func TestInsertRoundTrip(t *testing.T) {
	pos := core.Point2D(5, 5)
	xs, rot := 2.0, 45.0
	cols := int64(3)
	in := &Insert{
		Common:      Common{Handle: "I1", Layer: "0"},
		BlockName:   "DOOR",
		Position:    &pos,
		XScale:      &xs,
		Rotation:    &rot,
		ColumnCount: &cols,
	}
	out := reparse(t, in).(*Insert)
	assert.Equal(t, in, out)
}
