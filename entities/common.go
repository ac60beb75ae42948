package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Common holds the properties shared by every entity kind. Fields left
// unset stay absent and are never emitted, so a record round-trips without
// acquiring placeholder groups.
type Common struct {
	Handle        string // code 5
	OwnerHandle   string // code 330
	Layer         string // code 8
	LineTypeName  string // code 6
	LineTypeScale *float64
	Visible       *bool // code 60, inverted on the wire: 0 means visible
	ColorIndex    *int64
	InPaperSpace  *bool // code 67
	Lineweight    *int64
	TrueColor     *int64
}

// apply consumes a shared-property group, reporting whether it was
// recognized. Subclass markers (code 100) are consumed but not retained.
func (c *Common) apply(g core.Group) bool {
	switch g.Code {
	case 5:
		c.Handle, _ = g.Text()
	case 330:
		c.OwnerHandle, _ = g.Text()
	case 8:
		c.Layer, _ = g.Text()
	case 6:
		c.LineTypeName, _ = g.Text()
	case 48:
		c.LineTypeScale = floatOf(g)
	case 60:
		if v, ok := g.Int(); ok {
			visible := v == 0
			c.Visible = &visible
		}
	case 62:
		c.ColorIndex = intOf(g)
	case 67:
		if v, ok := g.Int(); ok {
			paper := v != 0
			c.InPaperSpace = &paper
		}
	case 370:
		c.Lineweight = intOf(g)
	case 420:
		c.TrueColor = intOf(g)
	case 100:
		// subclass marker
	default:
		return false
	}
	return true
}

// appendGroups emits the present shared properties in a stable order.
func (c *Common) appendGroups(dst []core.Group) []core.Group {
	if c.Handle != "" {
		dst = append(dst, core.TextGroup(5, c.Handle))
	}
	if c.OwnerHandle != "" {
		dst = append(dst, core.TextGroup(330, c.OwnerHandle))
	}
	if c.Layer != "" {
		dst = append(dst, core.TextGroup(8, c.Layer))
	}
	if c.LineTypeName != "" {
		dst = append(dst, core.TextGroup(6, c.LineTypeName))
	}
	if c.LineTypeScale != nil {
		dst = append(dst, core.FloatGroup(48, *c.LineTypeScale))
	}
	if c.Visible != nil {
		v := int64(1)
		if *c.Visible {
			v = 0
		}
		dst = append(dst, core.IntGroup(60, v))
	}
	if c.ColorIndex != nil {
		dst = append(dst, core.IntGroup(62, *c.ColorIndex))
	}
	if c.InPaperSpace != nil {
		v := int64(0)
		if *c.InPaperSpace {
			v = 1
		}
		dst = append(dst, core.IntGroup(67, v))
	}
	if c.Lineweight != nil {
		dst = append(dst, core.IntGroup(370, *c.Lineweight))
	}
	if c.TrueColor != nil {
		dst = append(dst, core.IntGroup(420, *c.TrueColor))
	}
	return dst
}

// Typed pointer extraction for optional fields.

func floatOf(g core.Group) *float64 {
	if v, ok := g.Float(); ok {
		return &v
	}
	return nil
}

func intOf(g core.Group) *int64 {
	if v, ok := g.Int(); ok {
		return &v
	}
	return nil
}

func boolOf(g core.Group) *bool {
	if v, ok := g.Bool(); ok {
		return &v
	}
	return nil
}

func pointOf(s *core.Scanner, g core.Group) (*core.Point, error) {
	p, err := core.ParsePoint(s, g)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// appendFloat, appendInt, appendBool, appendPoint emit a group only when
// the field is present.

func appendFloat(dst []core.Group, code int, v *float64) []core.Group {
	if v == nil {
		return dst
	}
	return append(dst, core.FloatGroup(code, *v))
}

func appendInt(dst []core.Group, code int, v *int64) []core.Group {
	if v == nil {
		return dst
	}
	return append(dst, core.IntGroup(code, *v))
}

func appendBool(dst []core.Group, code int, v *bool) []core.Group {
	if v == nil {
		return dst
	}
	return append(dst, core.BoolGroup(code, *v))
}

func appendPoint(dst []core.Group, code int, p *core.Point) []core.Group {
	if p == nil {
		return dst
	}
	return core.AppendPointGroups(dst, code, *p)
}
