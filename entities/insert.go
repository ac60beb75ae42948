package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Insert places a block reference at a point, optionally as a rectangular
// array.
type Insert struct {
	Common
	BlockName     string      // code 2
	Position      *core.Point // code 10
	XScale        *float64    // code 41
	YScale        *float64    // code 42
	ZScale        *float64    // code 43
	Rotation      *float64    // code 50, degrees
	ColumnCount   *int64      // code 70
	RowCount      *int64      // code 71
	ColumnSpacing *float64    // code 44
	RowSpacing    *float64    // code 45
	Extrusion     *core.Point // code 210
}

func (i *Insert) Kind() string { return "INSERT" }

func (i *Insert) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
		case 2:
			i.BlockName, _ = g.Text()
		case 10:
			if i.Position, err = pointOf(s, g); err != nil {
				return err
			}
		case 41:
			i.XScale = floatOf(g)
		case 42:
			i.YScale = floatOf(g)
		case 43:
			i.ZScale = floatOf(g)
		case 50:
			i.Rotation = floatOf(g)
		case 70:
			i.ColumnCount = intOf(g)
		case 71:
			i.RowCount = intOf(g)
		case 44:
			i.ColumnSpacing = floatOf(g)
		case 45:
			i.RowSpacing = floatOf(g)
		case 210:
			if i.Extrusion, err = pointOf(s, g); err != nil {
				return err
			}
		default:
			if !i.Common.apply(g) {
				sink.Warnf("INSERT: unhandled group %s", g)
			}
		}
	}
}

func (i *Insert) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "INSERT")}
	dst = i.Common.appendGroups(dst)
	if i.BlockName != "" {
		dst = append(dst, core.TextGroup(2, i.BlockName))
	}
	dst = appendPoint(dst, 10, i.Position)
	dst = appendFloat(dst, 41, i.XScale)
	dst = appendFloat(dst, 42, i.YScale)
	dst = appendFloat(dst, 43, i.ZScale)
	dst = appendFloat(dst, 50, i.Rotation)
	dst = appendInt(dst, 70, i.ColumnCount)
	dst = appendInt(dst, 71, i.RowCount)
	dst = appendFloat(dst, 44, i.ColumnSpacing)
	dst = appendFloat(dst, 45, i.RowSpacing)
	dst = appendPoint(dst, 210, i.Extrusion)
	return dst
}
