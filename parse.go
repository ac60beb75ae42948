package dxf

import (
	"fmt"

	"github.com/wmeredith/dxf/core"
	"github.com/wmeredith/dxf/model"
)

// parseDocument drives the section state machine: a stream is a sequence
// of SECTION envelopes terminated by the end-of-file marker. Sections of
// unrecognized kind are skipped whole, with a diagnostic; their content is
// not round-tripped.
func parseDocument(s *core.Scanner, sink core.DiagnosticSink) (*model.Document, error) {
	doc := &model.Document{}
	for {
		g, err := s.Next()
		if err != nil {
			return nil, err
		}
		if g.IsEndOfFile() {
			return doc, nil
		}
		if g.Code != 0 {
			sink.Warnf("document: stray group %s between sections", g)
			continue
		}
		name, _ := g.Text()
		if name != "SECTION" {
			sink.Warnf("document: expected SECTION, got %q; skipping record", name)
			if err := skipRecord(s); err != nil {
				return nil, err
			}
			continue
		}

		nameGroup, err := s.Next()
		if err != nil {
			return nil, err
		}
		if nameGroup.Code != 2 {
			sink.Warnf("document: SECTION without a name group; skipping")
			s.Rewind(1)
			if err := skipSection(s); err != nil {
				return nil, err
			}
			continue
		}
		sectionName, _ := nameGroup.Text()

		if err := parseSection(s, sink, doc, sectionName); err != nil {
			return nil, err
		}
	}
}

func parseSection(s *core.Scanner, sink core.DiagnosticSink, doc *model.Document, name string) error {
	var err error
	switch name {
	case "HEADER":
		doc.Header = &model.HeaderSection{}
		err = doc.Header.Parse(s, sink)
	case "CLASSES":
		doc.Classes = &model.ClassesSection{}
		err = doc.Classes.Parse(s, sink)
	case "TABLES":
		doc.Tables = &model.TableSection{}
		err = doc.Tables.Parse(s, sink)
	case "BLOCKS":
		doc.Blocks = &model.BlocksSection{}
		err = doc.Blocks.Parse(s, sink)
	case "ENTITIES":
		doc.Entities = &model.EntitiesSection{}
		err = doc.Entities.Parse(s, sink)
	default:
		sink.Warnf("document: unrecognized section %q; content skipped", name)
		return skipSection(s)
	}
	if err != nil {
		return fmt.Errorf("section %s: %w", name, err)
	}
	return consumeEndSec(s, sink, name)
}

// consumeEndSec reads the section terminator a section parser left behind.
func consumeEndSec(s *core.Scanner, sink core.DiagnosticSink, name string) error {
	g, err := s.Next()
	if err != nil {
		return err
	}
	if g.IsEndOfFile() {
		sink.Warnf("section %s: unterminated, end of stream reached", name)
		s.Rewind(1)
		return nil
	}
	if t, _ := g.Text(); g.Code != 0 || t != "ENDSEC" {
		return fmt.Errorf("section %s: expected ENDSEC, got %s", name, g)
	}
	return nil
}

// skipRecord consumes groups up to the next record boundary.
func skipRecord(s *core.Scanner) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			return nil
		}
	}
}

// skipSection consumes everything up to and including the next ENDSEC.
// A premature end-of-file marker is left unread for the caller.
func skipSection(s *core.Scanner) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			continue
		}
		if g.IsEndOfFile() {
			s.Rewind(1)
			return nil
		}
		if t, _ := g.Text(); t == "ENDSEC" {
			return nil
		}
	}
}
