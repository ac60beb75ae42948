package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Marker values used by the MULTILEADER context data grammar. Opening
// markers are text groups whose value names the nested block; each block
// runs until its matching closing marker.
const (
	mleaderContextOpen  = "CONTEXT_DATA{"
	mleaderContextClose = "}"
	mleaderLeaderOpen   = "LEADER{"
	mleaderLineOpen     = "LEADER_LINE{"
)

// LeaderLine is one polyline of leader geometry inside a leader block.
type LeaderLine struct {
	Points []*core.Point // repeated code 10
	Index  *int64        // code 91
}

// Leader is one leader inside the context data block.
type Leader struct {
	Lines        []*LeaderLine
	LastPoint    *core.Point // code 10
	DoglegVector *core.Point // code 11
	DoglegLength *float64    // code 40
	Index        *int64      // code 90
	HasLastPoint *bool       // code 290
	HasDogleg    *bool       // code 291
}

// MLeaderContext is the CONTEXT_DATA block of a MULTILEADER.
type MLeaderContext struct {
	Leaders      []*Leader
	ScaleFactor  *float64    // code 40
	BasePoint    *core.Point // code 10
	TextHeight   *float64    // code 41
	ArrowSize    *float64    // code 140
	LandingGap   *float64    // code 145
	HasText      *bool       // code 290
	Text         string      // code 304, chunked with 303
	hasText      bool
	TextLocation *core.Point  // code 12
	TextMatrix   *core.Matrix // 16 groups of code 47
	TextRotation *float64     // code 42
}

// MLeader is the MULTILEADER entity: leader geometry plus its content,
// wrapped in nested brace-delimited blocks on the wire.
type MLeader struct {
	Common
	StyleHandle   string   // code 340
	PropertyFlags *int64   // code 90
	LeaderType    *int64   // code 170
	LineColor     *int64   // code 91
	EnableLanding *bool    // code 290
	EnableDogleg  *bool    // code 291
	DoglegLength  *float64 // code 41
	ArrowSize     *float64 // code 42
	ContentType   *int64   // code 172
	Context       *MLeaderContext
}

func (m *MLeader) Kind() string { return "MULTILEADER" }

func (m *MLeader) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			return nil
		}

		if g.Code == 300 {
			if name, _ := g.Text(); name == mleaderContextOpen {
				m.Context = &MLeaderContext{}
				if err := m.parseContext(s, sink); err != nil {
					return err
				}
				continue
			}
		}

		switch g.Code {
		case 340:
			m.StyleHandle, _ = g.Text()
		case 90:
			m.PropertyFlags = intOf(g)
		case 170:
			m.LeaderType = intOf(g)
		case 91:
			m.LineColor = intOf(g)
		case 290:
			m.EnableLanding = boolOf(g)
		case 291:
			m.EnableDogleg = boolOf(g)
		case 41:
			m.DoglegLength = floatOf(g)
		case 42:
			m.ArrowSize = floatOf(g)
		case 172:
			m.ContentType = intOf(g)
		default:
			if !m.Common.apply(g) {
				sink.Warnf("MULTILEADER: unhandled group %s", g)
			}
		}
	}
}

// parseContext reads the CONTEXT_DATA block up to its closing brace.
func (m *MLeader) parseContext(s *core.Scanner, sink core.DiagnosticSink) error {
	ctx := m.Context
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			sink.Warnf("MULTILEADER: unterminated context data")
			s.Rewind(1)
			return nil
		}

		if g.Code == 301 {
			return nil
		}
		if g.Code == 302 {
			if name, _ := g.Text(); name == mleaderLeaderOpen {
				ld := &Leader{}
				if err := m.parseLeader(s, ld, sink); err != nil {
					return err
				}
				ctx.Leaders = append(ctx.Leaders, ld)
				continue
			}
		}

		switch g.Code {
		case 40:
			ctx.ScaleFactor = floatOf(g)
		case 10:
			if ctx.BasePoint, err = pointOf(s, g); err != nil {
				return err
			}
		case 41:
			ctx.TextHeight = floatOf(g)
		case 140:
			ctx.ArrowSize = floatOf(g)
		case 145:
			ctx.LandingGap = floatOf(g)
		case 290:
			ctx.HasText = boolOf(g)
		case 304, 303:
			chunk, _ := g.Text()
			ctx.Text += chunk
			ctx.hasText = true
		case 12:
			if ctx.TextLocation, err = pointOf(s, g); err != nil {
				return err
			}
		case 47:
			mat, err := core.ParseMatrix(s, 47)
			if err != nil {
				return err
			}
			ctx.TextMatrix = &mat
		case 42:
			ctx.TextRotation = floatOf(g)
		default:
			sink.Warnf("MULTILEADER: unhandled context group %s", g)
		}
	}
}

// parseLeader reads one LEADER{ block up to its closing brace.
func (m *MLeader) parseLeader(s *core.Scanner, ld *Leader, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			sink.Warnf("MULTILEADER: unterminated leader block")
			s.Rewind(1)
			return nil
		}

		if g.Code == 303 {
			return nil
		}
		if g.Code == 304 {
			if name, _ := g.Text(); name == mleaderLineOpen {
				line := &LeaderLine{}
				if err := m.parseLeaderLine(s, line, sink); err != nil {
					return err
				}
				ld.Lines = append(ld.Lines, line)
				continue
			}
		}

		switch g.Code {
		case 10:
			if ld.LastPoint, err = pointOf(s, g); err != nil {
				return err
			}
		case 11:
			if ld.DoglegVector, err = pointOf(s, g); err != nil {
				return err
			}
		case 40:
			ld.DoglegLength = floatOf(g)
		case 90:
			ld.Index = intOf(g)
		case 290:
			ld.HasLastPoint = boolOf(g)
		case 291:
			ld.HasDogleg = boolOf(g)
		default:
			sink.Warnf("MULTILEADER: unhandled leader group %s", g)
		}
	}
}

// parseLeaderLine reads one LEADER_LINE{ block up to its closing brace.
func (m *MLeader) parseLeaderLine(s *core.Scanner, line *LeaderLine, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			sink.Warnf("MULTILEADER: unterminated leader line block")
			s.Rewind(1)
			return nil
		}

		if g.Code == 305 {
			return nil
		}

		switch g.Code {
		case 10:
			pt, err := pointOf(s, g)
			if err != nil {
				return err
			}
			line.Points = append(line.Points, pt)
		case 91:
			line.Index = intOf(g)
		default:
			sink.Warnf("MULTILEADER: unhandled leader line group %s", g)
		}
	}
}

func (m *MLeader) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "MULTILEADER")}
	dst = m.Common.appendGroups(dst)
	if m.StyleHandle != "" {
		dst = append(dst, core.TextGroup(340, m.StyleHandle))
	}
	dst = appendInt(dst, 90, m.PropertyFlags)
	dst = appendInt(dst, 170, m.LeaderType)
	dst = appendInt(dst, 91, m.LineColor)
	dst = appendBool(dst, 290, m.EnableLanding)
	dst = appendBool(dst, 291, m.EnableDogleg)
	dst = appendFloat(dst, 41, m.DoglegLength)
	dst = appendFloat(dst, 42, m.ArrowSize)
	dst = appendInt(dst, 172, m.ContentType)
	if m.Context != nil {
		dst = m.Context.appendGroups(dst)
	}
	return dst
}

func (c *MLeaderContext) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(300, mleaderContextOpen))
	dst = appendFloat(dst, 40, c.ScaleFactor)
	dst = appendPoint(dst, 10, c.BasePoint)
	dst = appendFloat(dst, 41, c.TextHeight)
	dst = appendFloat(dst, 140, c.ArrowSize)
	dst = appendFloat(dst, 145, c.LandingGap)
	dst = appendBool(dst, 290, c.HasText)
	if c.hasText || c.Text != "" {
		dst = core.AppendChunkedGroups(dst, 304, 303, c.Text)
	}
	dst = appendPoint(dst, 12, c.TextLocation)
	if c.TextMatrix != nil {
		dst = core.AppendMatrixGroups(dst, 47, *c.TextMatrix)
	}
	dst = appendFloat(dst, 42, c.TextRotation)
	for _, ld := range c.Leaders {
		dst = ld.appendGroups(dst)
	}
	dst = append(dst, core.TextGroup(301, mleaderContextClose))
	return dst
}

func (ld *Leader) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(302, mleaderLeaderOpen))
	dst = appendBool(dst, 290, ld.HasLastPoint)
	dst = appendBool(dst, 291, ld.HasDogleg)
	dst = appendPoint(dst, 10, ld.LastPoint)
	dst = appendPoint(dst, 11, ld.DoglegVector)
	dst = appendFloat(dst, 40, ld.DoglegLength)
	dst = appendInt(dst, 90, ld.Index)
	for _, line := range ld.Lines {
		dst = line.appendGroups(dst)
	}
	dst = append(dst, core.TextGroup(303, mleaderContextClose))
	return dst
}

func (l *LeaderLine) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(304, mleaderLineOpen))
	for _, pt := range l.Points {
		dst = appendPoint(dst, 10, pt)
	}
	dst = appendInt(dst, 91, l.Index)
	dst = append(dst, core.TextGroup(305, mleaderContextClose))
	return dst
}
