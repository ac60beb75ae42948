package model

import (
	"github.com/wmeredith/dxf/core"
)

// Layer flag bits (code 70).
const (
	LayerFrozen = 1
	LayerLocked = 4
)

// Layer is one LAYER table record.
type Layer struct {
	Handle       string // code 5
	OwnerHandle  string // code 330
	Name         string // code 2
	Flags        *int64 // code 70
	ColorIndex   *int64 // code 62, negative while the layer is off
	LineTypeName string // code 6
	Plottable    *bool  // code 290
	Lineweight   *int64 // code 370
}

// Frozen reports whether the frozen flag bit is set.
func (l *Layer) Frozen() bool {
	return l.Flags != nil && core.HasFlag(*l.Flags, LayerFrozen)
}

// Locked reports whether the locked flag bit is set.
func (l *Layer) Locked() bool {
	return l.Flags != nil && core.HasFlag(*l.Flags, LayerLocked)
}

// On reports whether the layer is on. The state rides on the sign of the
// color index rather than a flag bit.
func (l *Layer) On() bool {
	return l.ColorIndex == nil || *l.ColorIndex >= 0
}

func (l *Layer) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			l.Handle, _ = g.Text()
		case 330:
			l.OwnerHandle, _ = g.Text()
		case 2:
			l.Name, _ = g.Text()
		case 70:
			l.Flags = intOf(g)
		case 62:
			l.ColorIndex = intOf(g)
		case 6:
			l.LineTypeName, _ = g.Text()
		case 290:
			l.Plottable = boolOf(g)
		case 370:
			l.Lineweight = intOf(g)
		case 100:
		default:
			sink.Warnf("LAYER: unhandled group %s", g)
		}
	}
}

func (l *Layer) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(0, "LAYER"))
	dst = appendText(dst, 5, l.Handle)
	dst = appendText(dst, 330, l.OwnerHandle)
	dst = appendText(dst, 2, l.Name)
	dst = appendInt(dst, 70, l.Flags)
	dst = appendInt(dst, 62, l.ColorIndex)
	dst = appendText(dst, 6, l.LineTypeName)
	dst = appendBool(dst, 290, l.Plottable)
	dst = appendInt(dst, 370, l.Lineweight)
	return dst
}

// LineType is one LTYPE table record. Its dash pattern is the sequence of
// code 49 element lengths in file order.
type LineType struct {
	Handle      string // code 5
	OwnerHandle string // code 330
	Name        string // code 2
	// Description commonly encodes the pattern as ASCII art whose
	// trailing spaces are significant.
	Description   string   // code 3
	Flags         *int64   // code 70
	AlignmentCode *int64   // code 72
	PatternLength *float64 // code 40
	Elements      []float64

	// DeclaredElementCount preserves the code 73 value as read. It is
	// diagnosed against len(Elements) but never trusted for allocation.
	DeclaredElementCount *int64
}

func (lt *LineType) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			break
		}

		switch g.Code {
		case 5:
			lt.Handle, _ = g.Text()
		case 330:
			lt.OwnerHandle, _ = g.Text()
		case 2:
			lt.Name, _ = g.Text()
		case 3:
			lt.Description, _ = g.Text()
		case 70:
			lt.Flags = intOf(g)
		case 72:
			lt.AlignmentCode = intOf(g)
		case 73:
			lt.DeclaredElementCount = intOf(g)
		case 40:
			lt.PatternLength = floatOf(g)
		case 49:
			if v, ok := g.Float(); ok {
				lt.Elements = append(lt.Elements, v)
			}
		case 74:
			// complex element type, shape and text elements not modeled
		case 100:
		default:
			sink.Warnf("LTYPE: unhandled group %s", g)
		}
	}

	if lt.DeclaredElementCount != nil && int(*lt.DeclaredElementCount) != len(lt.Elements) {
		sink.Warnf("LTYPE %s: declared %d pattern elements, found %d",
			lt.Name, *lt.DeclaredElementCount, len(lt.Elements))
	}
	return nil
}

func (lt *LineType) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(0, "LTYPE"))
	dst = appendText(dst, 5, lt.Handle)
	dst = appendText(dst, 330, lt.OwnerHandle)
	dst = appendText(dst, 2, lt.Name)
	if lt.Description != "" {
		dst = append(dst, core.TextGroup(3, lt.Description))
	}
	dst = appendInt(dst, 70, lt.Flags)
	dst = appendInt(dst, 72, lt.AlignmentCode)
	dst = append(dst, core.IntGroup(73, int64(len(lt.Elements))))
	dst = appendFloat(dst, 40, lt.PatternLength)
	for _, e := range lt.Elements {
		dst = append(dst, core.FloatGroup(49, e))
	}
	return dst
}

// Viewport is one VPORT table record.
type Viewport struct {
	Handle        string      // code 5
	OwnerHandle   string      // code 330
	Name          string      // code 2
	Flags         *int64      // code 70
	LowerLeft     *core.Point // code 10
	UpperRight    *core.Point // code 11
	Center        *core.Point // code 12
	SnapBase      *core.Point // code 13
	SnapSpacing   *core.Point // code 14
	GridSpacing   *core.Point // code 15
	ViewDirection *core.Point // code 16
	ViewTarget    *core.Point // code 17
	Height        *float64    // code 40
	AspectRatio   *float64    // code 41
	LensLength    *float64    // code 42
	SnapAngle     *float64    // code 50
	TwistAngle    *float64    // code 51
	CircleSides   *int64      // code 72
}

func (vp *Viewport) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
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
			vp.Handle, _ = g.Text()
		case 330:
			vp.OwnerHandle, _ = g.Text()
		case 2:
			vp.Name, _ = g.Text()
		case 70:
			vp.Flags = intOf(g)
		case 10, 11, 12, 13, 14, 15, 16, 17:
			pt, err := pointOf(s, g)
			if err != nil {
				return err
			}
			switch g.Code {
			case 10:
				vp.LowerLeft = pt
			case 11:
				vp.UpperRight = pt
			case 12:
				vp.Center = pt
			case 13:
				vp.SnapBase = pt
			case 14:
				vp.SnapSpacing = pt
			case 15:
				vp.GridSpacing = pt
			case 16:
				vp.ViewDirection = pt
			case 17:
				vp.ViewTarget = pt
			}
		case 40:
			vp.Height = floatOf(g)
		case 41:
			vp.AspectRatio = floatOf(g)
		case 42:
			vp.LensLength = floatOf(g)
		case 50:
			vp.SnapAngle = floatOf(g)
		case 51:
			vp.TwistAngle = floatOf(g)
		case 72:
			vp.CircleSides = intOf(g)
		case 100:
		default:
			sink.Warnf("VPORT: unhandled group %s", g)
		}
	}
}

func (vp *Viewport) appendGroups(dst []core.Group) []core.Group {
	dst = append(dst, core.TextGroup(0, "VPORT"))
	dst = appendText(dst, 5, vp.Handle)
	dst = appendText(dst, 330, vp.OwnerHandle)
	dst = appendText(dst, 2, vp.Name)
	dst = appendInt(dst, 70, vp.Flags)
	dst = appendPoint(dst, 10, vp.LowerLeft)
	dst = appendPoint(dst, 11, vp.UpperRight)
	dst = appendPoint(dst, 12, vp.Center)
	dst = appendPoint(dst, 13, vp.SnapBase)
	dst = appendPoint(dst, 14, vp.SnapSpacing)
	dst = appendPoint(dst, 15, vp.GridSpacing)
	dst = appendPoint(dst, 16, vp.ViewDirection)
	dst = appendPoint(dst, 17, vp.ViewTarget)
	dst = appendFloat(dst, 40, vp.Height)
	dst = appendFloat(dst, 41, vp.AspectRatio)
	dst = appendFloat(dst, 42, vp.LensLength)
	dst = appendFloat(dst, 50, vp.SnapAngle)
	dst = appendFloat(dst, 51, vp.TwistAngle)
	dst = appendInt(dst, 72, vp.CircleSides)
	return dst
}

// tableHeader carries the groups of the TABLE record itself, before its
// member records begin.
type tableHeader struct {
	Handle      string // code 5
	OwnerHandle string // code 330

	// DeclaredCount preserves the code 70 value as read; serialization
	// recounts the records.
	DeclaredCount *int64
}

func (th *tableHeader) parse(s *core.Scanner, sink core.DiagnosticSink, tableName string) error {
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
			th.Handle, _ = g.Text()
		case 330:
			th.OwnerHandle, _ = g.Text()
		case 70:
			th.DeclaredCount = intOf(g)
		case 100:
		default:
			sink.Warnf("TABLE %s: unhandled group %s", tableName, g)
		}
	}
}

func (th *tableHeader) appendGroups(dst []core.Group, tableName string, count int) []core.Group {
	dst = append(dst, core.TextGroup(0, "TABLE"), core.TextGroup(2, tableName))
	dst = appendText(dst, 5, th.Handle)
	dst = appendText(dst, 330, th.OwnerHandle)
	dst = append(dst, core.IntGroup(70, int64(count)))
	return dst
}

// ViewportTable is the VPORT table.
type ViewportTable struct {
	tableHeader
	Viewports []*Viewport
}

// LineTypeTable is the LTYPE table.
type LineTypeTable struct {
	tableHeader
	LineTypes []*LineType
}

// LayerTable is the LAYER table.
type LayerTable struct {
	tableHeader
	Layers []*Layer
}

// TableSection holds the symbol tables the model represents. Tables of
// other kinds are skipped at parse time with a diagnostic.
type TableSection struct {
	Viewports *ViewportTable
	LineTypes *LineTypeTable
	Layers    *LayerTable
}

// Layer looks a layer up by name across the layer table, or nil.
func (t *TableSection) Layer(name string) *Layer {
	if t.Layers == nil {
		return nil
	}
	for _, l := range t.Layers.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Parse reads TABLE records up to the section terminator, which is left
// unread for the caller.
func (t *TableSection) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			sink.Warnf("tables: stray group %s between tables", g)
			continue
		}
		name, _ := g.Text()
		if name == "ENDSEC" || name == core.EndOfFileToken {
			s.Rewind(1)
			return nil
		}
		if name != "TABLE" {
			sink.Warnf("tables: expected TABLE record, got %q; skipping", name)
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}

		nameGroup, err := s.Next()
		if err != nil {
			return err
		}
		tableName, _ := nameGroup.Text()
		if nameGroup.Code != 2 {
			sink.Warnf("tables: TABLE without a name group; skipping")
			s.Rewind(1)
			if err := t.skipTable(s, sink); err != nil {
				return err
			}
			continue
		}

		if err := t.parseTable(s, sink, tableName); err != nil {
			return err
		}
	}
}

func (t *TableSection) parseTable(s *core.Scanner, sink core.DiagnosticSink, tableName string) error {
	var th tableHeader
	if err := th.parse(s, sink, tableName); err != nil {
		return err
	}

	var table interface{ record(kind string) recordParser }
	declared := th.DeclaredCount
	count := 0
	switch tableName {
	case "VPORT":
		vt := &ViewportTable{tableHeader: th}
		t.Viewports = vt
		table = vt
	case "LTYPE":
		lt := &LineTypeTable{tableHeader: th}
		t.LineTypes = lt
		table = lt
	case "LAYER":
		la := &LayerTable{tableHeader: th}
		t.Layers = la
		table = la
	default:
		sink.Warnf("tables: unsupported table %q; skipping", tableName)
		return t.skipTable(s, sink)
	}

	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			sink.Warnf("TABLE %s: stray group %s between records", tableName, g)
			continue
		}
		name, _ := g.Text()
		if name == "ENDTAB" {
			break
		}
		if name == "ENDSEC" || name == core.EndOfFileToken {
			sink.Warnf("TABLE %s: missing ENDTAB", tableName)
			s.Rewind(1)
			break
		}

		rec := table.record(name)
		if rec == nil {
			sink.Warnf("TABLE %s: unexpected record %q; skipping", tableName, name)
			if err := skipRecord(s); err != nil {
				return err
			}
			continue
		}
		if err := rec.Parse(s, sink); err != nil {
			return err
		}
		count++
	}

	if declared != nil && int(*declared) != count {
		sink.Warnf("TABLE %s: declared %d records, found %d", tableName, *declared, count)
	}
	return nil
}

// skipTable consumes records up to and including ENDTAB.
func (t *TableSection) skipTable(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code != 0 {
			continue
		}
		name, _ := g.Text()
		if name == "ENDTAB" {
			return nil
		}
		if name == "ENDSEC" || name == core.EndOfFileToken {
			s.Rewind(1)
			return nil
		}
	}
}

// recordParser is the record-level slice of the parse contract, used to
// route table members without reflection.
type recordParser interface {
	Parse(s *core.Scanner, sink core.DiagnosticSink) error
}

func (vt *ViewportTable) record(kind string) recordParser {
	if kind != "VPORT" {
		return nil
	}
	vp := &Viewport{}
	vt.Viewports = append(vt.Viewports, vp)
	return vp
}

func (lt *LineTypeTable) record(kind string) recordParser {
	if kind != "LTYPE" {
		return nil
	}
	rec := &LineType{}
	lt.LineTypes = append(lt.LineTypes, rec)
	return rec
}

func (la *LayerTable) record(kind string) recordParser {
	if kind != "LAYER" {
		return nil
	}
	rec := &Layer{}
	la.Layers = append(la.Layers, rec)
	return rec
}

func (t *TableSection) appendGroups(dst []core.Group) []core.Group {
	if t.Viewports != nil {
		dst = t.Viewports.appendGroups(dst, "VPORT", len(t.Viewports.Viewports))
		for _, vp := range t.Viewports.Viewports {
			dst = vp.appendGroups(dst)
		}
		dst = append(dst, core.TextGroup(0, "ENDTAB"))
	}
	if t.LineTypes != nil {
		dst = t.LineTypes.appendGroups(dst, "LTYPE", len(t.LineTypes.LineTypes))
		for _, lt := range t.LineTypes.LineTypes {
			dst = lt.appendGroups(dst)
		}
		dst = append(dst, core.TextGroup(0, "ENDTAB"))
	}
	if t.Layers != nil {
		dst = t.Layers.appendGroups(dst, "LAYER", len(t.Layers.Layers))
		for _, l := range t.Layers.Layers {
			dst = l.appendGroups(dst)
		}
		dst = append(dst, core.TextGroup(0, "ENDTAB"))
	}
	return dst
}
