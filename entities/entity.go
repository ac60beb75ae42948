package entities

import (
	"github.com/wmeredith/dxf/core"
)

// Entity is one graphical record reconstructed from a contiguous run of
// groups. Parse consumes groups from the scanner until the start of the
// next sibling record (a code-0 group), leaving that group unread; Groups
// returns the full wire form, beginning with the (0, kind) marker.
type Entity interface {
	Kind() string
	Parse(s *core.Scanner, sink core.DiagnosticSink) error
	Groups() []core.Group
}

// Factory produces a fresh, empty entity of one kind.
type Factory func() Entity

// The registry maps entity-kind tokens to factories. It is populated once
// at setup (init plus any host Register calls) and read-only afterwards;
// mutating it concurrently with an in-flight parse is not supported.
var registry = map[string]Factory{}

// Register adds or replaces the factory for an entity-kind token. Hosts
// use it to add support for additional kinds without modifying this
// package.
func Register(kind string, factory Factory) {
	registry[kind] = factory
}

// New returns a fresh entity for the kind token, or nil if the kind is
// unregistered.
func New(kind string) Entity {
	if factory, ok := registry[kind]; ok {
		return factory()
	}
	return nil
}

// Kinds returns the registered kind tokens in unspecified order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	return kinds
}

func init() {
	Register("LINE", func() Entity { return &Line{} })
	Register("POINT", func() Entity { return &Point{} })
	Register("CIRCLE", func() Entity { return &Circle{} })
	Register("ARC", func() Entity { return &Arc{} })
	Register("TEXT", func() Entity { return &Text{} })
	Register("MTEXT", func() Entity { return &MText{} })
	Register("INSERT", func() Entity { return &Insert{} })
	Register("SOLID", func() Entity { return &Solid{} })
	Register("3DFACE", func() Entity { return &Face{} })
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{} })
	Register("POLYLINE", func() Entity { return &Polyline{} })
	Register("MULTILEADER", func() Entity { return &MLeader{} })
}
