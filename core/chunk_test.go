package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		wantLens []int
	}{
		{"empty", 0, []int{0}},
		{"short", 10, []int{10}},
		{"exact boundary", 250, []int{250}},
		{"one over", 251, []int{250, 1}},
		{"six hundred", 600, []int{250, 250, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.Repeat("x", tt.length)
			chunks := SplitChunks(in)
			require.Len(t, chunks, len(tt.wantLens))
			for i, want := range tt.wantLens {
				assert.Len(t, chunks[i], want)
			}
			assert.Equal(t, in, strings.Join(chunks, ""))
		})
	}
}

func TestAppendChunkedGroupsSingle(t *testing.T) {
	groups := AppendChunkedGroups(nil, 1, 3, "short text")
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Code)
}

func TestAppendChunkedGroupsLong(t *testing.T) {
	in := strings.Repeat("a", 600)
	groups := AppendChunkedGroups(nil, 1, 3, in)

	require.Len(t, groups, 3)
	var rejoined strings.Builder
	for i, g := range groups {
		assert.Equal(t, 3, g.Code, "chunk %d", i)
		txt, ok := g.Text()
		require.True(t, ok)
		rejoined.WriteString(txt)
	}
	assert.Len(t, groups[0].Value.Wire(), 250)
	assert.Len(t, groups[1].Value.Wire(), 250)
	assert.Len(t, groups[2].Value.Wire(), 100)
	assert.Equal(t, in, rejoined.String())
}

func TestSplitChunksMultibyte(t *testing.T) {
	// Chunk boundaries count characters, not bytes.
	in := strings.Repeat("é", 260)
	chunks := SplitChunks(in)
	require.Len(t, chunks, 2)
	assert.Equal(t, 250, len([]rune(chunks[0])))
	assert.Equal(t, 10, len([]rune(chunks[1])))
	assert.Equal(t, in, strings.Join(chunks, ""))
}
