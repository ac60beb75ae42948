package dxf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmeredith/dxf/core"
	"github.com/wmeredith/dxf/entities"
)

func TestParseHeaderOnlyDocument(t *testing.T) {
	in := "0\nSECTION\n2\nHEADER\n9\n$ACADVER\n1\nAC1014\n0\nENDSEC\n0\nEOF"

	doc, warnings, err := Parse(in)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, doc.Header)
	ver, ok := doc.Header.StringVar("$ACADVER")
	require.True(t, ok)
	assert.Equal(t, "AC1014", ver)

	assert.Nil(t, doc.Classes)
	assert.Nil(t, doc.Tables)
	assert.Nil(t, doc.Blocks)
	assert.Nil(t, doc.Entities)

	out := SerializeToString(doc)
	assert.Equal(t, in, out)
}

const sampleDrawing = "0\nSECTION\n2\nHEADER\n" +
	"9\n$ACADVER\n1\nAC1027\n" +
	"9\n$EXTMIN\n10\n0.0\n20\n0.0\n30\n0.0\n" +
	"0\nENDSEC\n" +
	"0\nSECTION\n2\nCLASSES\n" +
	"0\nCLASS\n1\nMLEADERSTYLE\n2\nAcDbMLeaderStyle\n90\n0\n" +
	"0\nENDSEC\n" +
	"0\nSECTION\n2\nTABLES\n" +
	"0\nTABLE\n2\nLAYER\n70\n1\n" +
	"0\nLAYER\n2\nWalls\n70\n0\n62\n3\n" +
	"0\nENDTAB\n" +
	"0\nENDSEC\n" +
	"0\nSECTION\n2\nBLOCKS\n" +
	"0\nBLOCK\n2\nDOOR\n70\n0\n10\n0.0\n20\n0.0\n" +
	"0\nLINE\n10\n0.0\n20\n0.0\n11\n1.0\n21\n1.0\n" +
	"0\nENDBLK\n" +
	"0\nENDSEC\n" +
	"0\nSECTION\n2\nENTITIES\n" +
	"0\nINSERT\n2\nDOOR\n10\n5.0\n20\n5.0\n" +
	"0\nCIRCLE\n8\nWalls\n10\n2.0\n20\n2.0\n40\n1.5\n" +
	"0\nENDSEC\n" +
	"0\nEOF"

func TestParseFullDocument(t *testing.T) {
	doc, warnings, err := Parse(sampleDrawing)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, doc.Classes)
	require.Len(t, doc.Classes.Classes, 1)
	assert.Equal(t, "MLEADERSTYLE", doc.Classes.Classes[0].RecordName)

	require.NotNil(t, doc.Tables)
	require.NotNil(t, doc.Tables.Layers)
	require.NotNil(t, doc.Tables.Layer("Walls"))

	require.NotNil(t, doc.Blocks)
	block := doc.Block("DOOR")
	require.NotNil(t, block)
	require.Len(t, block.Entities, 1)

	require.NotNil(t, doc.Entities)
	require.Len(t, doc.Entities.Entities, 2)
	assert.Equal(t, "INSERT", doc.Entities.Entities[0].Kind())
	assert.Equal(t, "CIRCLE", doc.Entities.Entities[1].Kind())
}

func TestRoundTripIdempotence(t *testing.T) {
	doc, _, err := Parse(sampleDrawing)
	require.NoError(t, err)

	first := SerializeToString(doc)
	doc2, warnings, err := Parse(first)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	second := SerializeToString(doc2)

	assert.Equal(t, first, second)
	assert.Equal(t, doc, doc2)
}

func TestUnknownSectionSkippedWithWarning(t *testing.T) {
	in := "0\nSECTION\n2\nOBJECTS\n0\nDICTIONARY\n5\nC\n0\nENDSEC\n" +
		"0\nSECTION\n2\nENTITIES\n0\nPOINT\n10\n1.0\n20\n2.0\n0\nENDSEC\n0\nEOF"

	doc, warnings, err := Parse(in)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, `unrecognized section "OBJECTS"`)

	require.NotNil(t, doc.Entities)
	require.Len(t, doc.Entities.Entities, 1)

	// The skipped section is not round-tripped.
	out := SerializeToString(doc)
	assert.NotContains(t, out, "OBJECTS")
}

func TestSectionPresenceRoundTrip(t *testing.T) {
	in := "0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF"
	doc, _, err := Parse(in)
	require.NoError(t, err)

	require.NotNil(t, doc.Entities, "an empty present section stays present")
	assert.Nil(t, doc.Header)
	assert.Equal(t, in, SerializeToString(doc))
}

func TestParseTruncatedStreamFails(t *testing.T) {
	_, _, err := Parse("0\nSECTION\n2\nENTITIES\n0")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnexpectedEndOfInput)
}

func TestParseUnknownCodeInsideRecord(t *testing.T) {
	in := "0\nSECTION\n2\nENTITIES\n" +
		"0\nPOINT\n10\n1.0\n20\n2.0\n7777\nmystery\n" +
		"0\nENDSEC\n0\nEOF"

	doc, warnings, err := Parse(in)
	require.NoError(t, err)
	require.NotNil(t, doc.Entities)
	require.Len(t, doc.Entities.Entities, 1)

	var unknownCode int
	for _, w := range warnings {
		if w.Message == "group code 7777 has no defined type; treating value as text" {
			unknownCode++
		}
	}
	assert.Equal(t, 1, unknownCode)
}

func TestParseBytesHonorsDeclaredCodepage(t *testing.T) {
	// 0xE9 is é in windows-1252.
	data := []byte("0\nSECTION\n2\nHEADER\n" +
		"9\n$DWGCODEPAGE\n3\nANSI_1252\n" +
		"9\n$PROJECTNAME\n1\ncaf\xE9\n" +
		"0\nENDSEC\n0\nEOF")

	doc, warnings, err := ParseBytes(data)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	name, ok := doc.Header.StringVar("$PROJECTNAME")
	require.True(t, ok)
	assert.Equal(t, "café", name)
}

func TestParseBytesCodepageOverride(t *testing.T) {
	data := []byte("0\nSECTION\n2\nHEADER\n9\n$PROJECTNAME\n1\n\xC0\n0\nENDSEC\n0\nEOF")

	opts := defaultParseOptions()
	opts.Codepage = "ANSI_1251"
	doc, _, err := ParseBytesWithOptions(data, opts)
	require.NoError(t, err)

	name, _ := doc.Header.StringVar("$PROJECTNAME")
	assert.Equal(t, "А", name)
}

func TestParseBytesRejectsBinaryDXF(t *testing.T) {
	data := []byte("AutoCAD Binary DXF\r\n\x1a\x00\x00\x01\x02")
	_, _, err := ParseBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binary DXF is not supported")
}

func TestParseWithOptionsTeesSink(t *testing.T) {
	extra := &core.Collector{}
	opts := defaultParseOptions()
	opts.Sink = extra

	in := "0\nSECTION\n2\nWIDGETS\n0\nENDSEC\n0\nEOF"
	_, warnings, err := Parse(in)
	require.NoError(t, err)
	require.Len(t, warnings, 1)

	_, warnings2, err := ParseWithOptions(in, opts)
	require.NoError(t, err)
	assert.Equal(t, warnings, warnings2)
	assert.Equal(t, warnings, extra.Warnings)
}

// shaft is a custom entity kind used to exercise registry extension.
type shaft struct {
	entities.Common
	Length *float64 // code 40
}

func (sh *shaft) Kind() string { return "SHAFT" }

func (sh *shaft) Parse(s *core.Scanner, sink core.DiagnosticSink) error {
	for {
		g, err := s.Next()
		if err != nil {
			return err
		}
		if g.Code == 0 {
			s.Rewind(1)
			return nil
		}
		if g.Code == 40 {
			if v, ok := g.Float(); ok {
				sh.Length = &v
			}
			continue
		}
		sink.Warnf("SHAFT: unhandled group %s", g)
	}
}

func (sh *shaft) Groups() []core.Group {
	dst := []core.Group{core.TextGroup(0, "SHAFT")}
	if sh.Length != nil {
		dst = append(dst, core.FloatGroup(40, *sh.Length))
	}
	return dst
}

func TestRegisterEntityHandler(t *testing.T) {
	RegisterEntityHandler("SHAFT", func() entities.Entity { return &shaft{} })

	in := "0\nSECTION\n2\nENTITIES\n0\nSHAFT\n40\n12.5\n0\nENDSEC\n0\nEOF"
	doc, warnings, err := Parse(in)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, doc.Entities.Entities, 1)
	sh, ok := doc.Entities.Entities[0].(*shaft)
	require.True(t, ok)
	require.NotNil(t, sh.Length)
	assert.Equal(t, 12.5, *sh.Length)

	assert.Equal(t, in, SerializeToString(doc))
}

func TestMustPanicsOnError(t *testing.T) {
	assert.NotPanics(t, func() {
		doc := MustParse(Parse("0\nEOF"))
		require.NotNil(t, doc)
	})
	assert.Panics(t, func() {
		MustParse(Parse("0"))
	})
}
