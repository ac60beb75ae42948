package model

import (
	"github.com/wmeredith/dxf/core"
)

// Pointer extraction and emit-if-present helpers shared by the record
// types in this package.

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

func appendText(dst []core.Group, code int, v string) []core.Group {
	if v == "" {
		return dst
	}
	return append(dst, core.TextGroup(code, v))
}
