package dxf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmeredith/dxf/entities"
	"github.com/wmeredith/dxf/model"
)

func TestTokenStreamGranularity(t *testing.T) {
	doc := &model.Document{
		Entities: &model.EntitiesSection{Entities: []entities.Entity{
			&entities.Point{Common: entities.Common{Handle: "A1"}},
			&entities.Line{Common: entities.Common{Handle: "A2"}},
		}},
	}

	ts := Serialize(doc)
	var tokens []string
	for {
		tok, ok := ts.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	require.Equal(t, []string{
		"0\nSECTION\n2\nENTITIES",
		"0\nPOINT\n5\nA1",
		"0\nLINE\n5\nA2",
		"0\nENDSEC",
		"0\nEOF",
	}, tokens)

	// Exhausted streams stay exhausted.
	_, ok := ts.Next()
	assert.False(t, ok)
}

func TestTokenStreamPullsLazily(t *testing.T) {
	doc := &model.Document{
		Entities: &model.EntitiesSection{Entities: []entities.Entity{
			&entities.Point{Common: entities.Common{Handle: "A1"}},
			&entities.Point{Common: entities.Common{Handle: "A2"}},
		}},
	}

	ts := Serialize(doc)
	tok, ok := ts.Next()
	require.True(t, ok)
	assert.Equal(t, "0\nSECTION\n2\nENTITIES", tok)

	// Groups not yet pulled reflect mutations made after stream creation.
	doc.Entities.Entities[1].(*entities.Point).Handle = "B2"

	tok, _ = ts.Next()
	assert.Equal(t, "0\nPOINT\n5\nA1", tok)
	tok, _ = ts.Next()
	assert.Equal(t, "0\nPOINT\n5\nB2", tok)
}

func TestSerializeToStringFraming(t *testing.T) {
	out := SerializeToString(&model.Document{})
	assert.Equal(t, "0\nEOF", out)
	assert.False(t, strings.HasSuffix(out, "\n"), "no trailing newline")
}
