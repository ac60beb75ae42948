package model

import (
	"github.com/wmeredith/dxf/core"
	"github.com/wmeredith/dxf/entities"
)

// Document is the in-memory form of one drawing. Each section pointer is
// nil when the section was absent from the input, and an absent section
// stays absent on output.
type Document struct {
	Header   *HeaderSection
	Classes  *ClassesSection
	Tables   *TableSection
	Blocks   *BlocksSection
	Entities *EntitiesSection
}

// EntitiesSection holds the top-level entities in file order.
type EntitiesSection struct {
	Entities []entities.Entity
}

// Parse reads entity records up to the section terminator, which is left
// unread. Unregistered entity kinds are skipped with a diagnostic.
func (es *EntitiesSection) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			sink.Warnf("entities: stray group %s between records", g)
			continue
		}
		name, _ := g.Text()
		if name == "ENDSEC" || name == core.EndOfFileToken {
			s.Rewind(1)
			return nil
		}

		e := entities.New(name)
		if e == nil {
			sink.Warnf("entities: unsupported entity kind %q; skipping", name)
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}
		if err := e.Parse(s, sink); err != nil {
			return err
		}
		es.Entities = append(es.Entities, e)
	}
}

// Parse reads CLASS records up to the section terminator, which is left
// unread.
func (cs *ClassesSection) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			sink.Warnf("classes: stray group %s between records", g)
			continue
		}
		name, _ := g.Text()
		if name == "ENDSEC" || name == core.EndOfFileToken {
			s.Rewind(1)
			return nil
		}
		if name != "CLASS" {
			sink.Warnf("classes: expected CLASS record, got %q; skipping", name)
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}

		c := &Class{}
		if err := c.Parse(s, sink); err != nil {
			return err
		}
		cs.Classes = append(cs.Classes, c)
	}
}

// Parse reads BLOCK records up to the section terminator, which is left
// unread.
func (bs *BlocksSection) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			sink.Warnf("blocks: stray group %s between records", g)
			continue
		}
		name, _ := g.Text()
		if name == "ENDSEC" || name == core.EndOfFileToken {
			s.Rewind(1)
			return nil
		}
		if name != "BLOCK" {
			sink.Warnf("blocks: expected BLOCK record, got %q; skipping", name)
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}

		b := &Block{}
		if err := b.Parse(s, sink); err != nil {
			return err
		}
		bs.Blocks = append(bs.Blocks, b)
	}
}

// Block looks a block up by name, or nil.
func (d *Document) Block(name string) *Block {
	if d.Blocks == nil {
		return nil
	}
	for _, b := range d.Blocks.Blocks {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Emitter produces one contiguous run of groups on demand. Emitters let
// serialization pull group runs record by record instead of materializing
// the whole stream up front.
type Emitter func() []core.Group

// Emitters returns the document's wire form as an ordered list of lazy
// group producers. Sections are emitted in the canonical order HEADER,
// CLASSES, TABLES, BLOCKS, ENTITIES, each wrapped in its SECTION and
// ENDSEC envelope, followed by the end-of-file marker. Absent sections
// contribute nothing.
func (d *Document) Emitters() []Emitter {
	var ems []Emitter

	if d.Header != nil {
		ems = append(ems, sectionOpen("HEADER"),
			func() []core.Group { return d.Header.appendGroups(nil) },
			sectionClose)
	}
	if d.Classes != nil {
		ems = append(ems, sectionOpen("CLASSES"))
		for _, c := range d.Classes.Classes {
			c := c
			ems = append(ems, func() []core.Group { return c.appendGroups(nil) })
		}
		ems = append(ems, sectionClose)
	}
	if d.Tables != nil {
		ems = append(ems, sectionOpen("TABLES"),
			func() []core.Group { return d.Tables.appendGroups(nil) },
			sectionClose)
	}
	if d.Blocks != nil {
		ems = append(ems, sectionOpen("BLOCKS"))
		for _, b := range d.Blocks.Blocks {
			b := b
			ems = append(ems, func() []core.Group { return b.appendGroups(nil) })
		}
		ems = append(ems, sectionClose)
	}
	if d.Entities != nil {
		ems = append(ems, sectionOpen("ENTITIES"))
		for _, e := range d.Entities.Entities {
			e := e
			ems = append(ems, func() []core.Group { return e.Groups() })
		}
		ems = append(ems, sectionClose)
	}

	ems = append(ems, func() []core.Group {
		return []core.Group{core.TextGroup(0, core.EndOfFileToken)}
	})
	return ems
}

func sectionOpen(name string) Emitter {
	return func() []core.Group {
		return []core.Group{
			core.TextGroup(0, "SECTION"),
			core.TextGroup(2, name),
		}
	}
}

func sectionClose() []core.Group {
	return []core.Group{core.TextGroup(0, "ENDSEC")}
}
