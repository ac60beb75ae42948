package model

import (
	"github.com/wmeredith/dxf/core"
	"github.com/wmeredith/dxf/entities"
)

// Block flag bits (code 70).
const (
	BlockAnonymous    = 1
	BlockHasAttDefs   = 2
	BlockExternalRef  = 4
	BlockXRefOverlaid = 8
)

// Block is one BLOCK record: a named, reusable group of entities. On the
// wire the record runs from its 0 BLOCK marker through the matching
// 0 ENDBLK, whose own groups are consumed with it.
type Block struct {
	Handle      string // code 5
	OwnerHandle string // code 330
	Layer       string // code 8
	Name        string // code 2
	Flags       *int64 // code 70
	BasePoint   *core.Point
	Name2       string // code 3, historically a duplicate of Name
	XrefPath    string // code 1
	Entities    []entities.Entity

	// Handle and owner of the ENDBLK terminator, preserved for the
	// round trip.
	EndHandle string
	EndOwner  string
}

// Anonymous reports whether the anonymous flag bit is set.
func (b *Block) Anonymous() bool {
	return b.Flags != nil && core.HasFlag(*b.Flags, BlockAnonymous)
}

// BlocksSection holds the BLOCK records in file order.
type BlocksSection struct {
	Blocks []*Block
}

// Parse reads the block's own groups, its entities, and the ENDBLK
// terminator. Entity kinds without a registered factory are skipped with
// a diagnostic.
func (b *Block) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	if err := b.parseOwnGroups(s, sink); err != nil {
		return err
	}

	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			sink.Warnf("BLOCK %s: stray group %s between records", b.Name, g)
			continue
		}
		name, _ := g.Text()
		if name == "ENDBLK" {
			return b.parseEndBlk(s, sink)
		}
		if name == core.EndOfFileToken {
			sink.Warnf("BLOCK %s: unterminated block", b.Name)
			s.Rewind(1)
			return nil
		}

		e := entities.New(name)
		if e == nil {
			sink.Warnf("BLOCK %s: unsupported entity kind %q; skipping", b.Name, name)
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}
		if err := e.Parse(s, sink); err != nil {
			return err
		}
		b.Entities = append(b.Entities, e)
	}
}

func (b *Block) parseOwnGroups(s *core.Scanner, sink core.DiagnosticSink) error {
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
		case 5:
			b.Handle, _ = g.Text()
		case 330:
			b.OwnerHandle, _ = g.Text()
		case 8:
			b.Layer, _ = g.Text()
		case 2:
			b.Name, _ = g.Text()
		case 70:
			b.Flags = intOf(g)
		case 10:
			if b.BasePoint, err = pointOf(s, g); err != nil {
				return err
			}
		case 3:
			b.Name2, _ = g.Text()
		case 1:
			b.XrefPath, _ = g.Text()
		case 100:
			// subclass marker
		default:
			sink.Warnf("BLOCK: unhandled group %s", g)
		}
	}
}

func (b *Block) parseEndBlk(s *core.Scanner, sink core.DiagnosticSink) error {
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
		case 5:
			b.EndHandle, _ = g.Text()
		case 330:
			b.EndOwner, _ = g.Text()
		case 8, 100:
			// Subclass marker and layer of the terminator carry no
			// information beyond the block's own.
		default:
			sink.Warnf("ENDBLK: unhandled group %s", g)
		}
	}
}

func (b *Block) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(0, "BLOCK"))
	dst = appendText(dst, 5, b.Handle)
	dst = appendText(dst, 330, b.OwnerHandle)
	dst = appendText(dst, 8, b.Layer)
	dst = appendText(dst, 2, b.Name)
	dst = appendInt(dst, 70, b.Flags)
	dst = appendPoint(dst, 10, b.BasePoint)
	dst = appendText(dst, 3, b.Name2)
	dst = appendText(dst, 1, b.XrefPath)
	for _, e := range b.Entities {
		dst = append(dst, e.Groups()...)
	}
	dst = append(dst, core.TextGroup(0, "ENDBLK"))
	dst = appendText(dst, 5, b.EndHandle)
	dst = appendText(dst, 330, b.EndOwner)
	return dst
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
