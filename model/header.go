package model

import (
	"github.com/wmeredith/dxf/core"
)

// HeaderVariable is one $NAME entry of the header section. Point-valued
// variables store a Point; everything else stores the typed group value.
// Exactly one of Point and Value is set.
type HeaderVariable struct {
	Name  string // with leading $
	Code  int
	Point *core.Point
	Value core.Value
}

// HeaderSection preserves the header variables in file order, so a round
// trip reproduces them without reordering.
type HeaderSection struct {
	Variables []*HeaderVariable
}

// Var returns the first variable with the given name, or nil.
func (h *HeaderSection) Var(name string) *HeaderVariable {
	for _, v := range h.Variables {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// StringVar returns the text value of a named variable.
func (h *HeaderSection) StringVar(name string) (string, bool) {
	v := h.Var(name)
	if v == nil || v.Value == nil {
		return "", false
	}
	t, ok := v.Value.(core.Text)
	return string(t), ok
}

// SetString sets or replaces a text-valued variable.
func (h *HeaderSection) SetString(name string, code int, value string) {
	if v := h.Var(name); v != nil {
		v.Code = code
		v.Point = nil
		v.Value = core.Text(value)
		return
	}
	h.Variables = append(h.Variables, &HeaderVariable{
		Name: name, Code: code, Value: core.Text(value),
	})
}

// Parse reads header variables up to the next record boundary. Each
// variable is a (9, $NAME) group followed by one value group; value codes
// 10 through 18 start a point.
func (h *HeaderSection) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			return nil
		}
		if g.Code != 9 {
			sink.Warnf("header: expected variable name, got %s; skipping", g)
			continue
		}
		name, _ := g.Text()

		val, err := s.Next()
		if err != nil {
			return err
		}
		v := &HeaderVariable{Name: name, Code: val.Code}
		if val.Code >= 10 && val.Code <= 18 {
			pt, err := core.ParsePoint(s, val)
			if err != nil {
				return err
			}
			v.Point = &pt
		} else {
			v.Value = val.Value
		}
		h.Variables = append(h.Variables, v)
	}
}

func (h *HeaderSection) appendGroups(dst []core.Group) []core.Group {
	for _, v := range h.Variables {
		dst = append(dst, core.TextGroup(9, v.Name))
		if v.Point != nil {
			dst = core.AppendPointGroups(dst, v.Code, *v.Point)
			continue
		}
		dst = append(dst, core.Group{Code: v.Code, Value: v.Value})
	}
	return dst
}
