package core

// ChunkSize is the maximum number of characters one string group may carry.
// Longer strings arrive split across multiple groups and are reassembled in
// encounter order.
const ChunkSize = 250

// SplitChunks splits a string into wire chunks of at most ChunkSize
// characters (runes, not bytes).
func SplitChunks(s string) []string {
	runes := []rune(s)
	if len(runes) <= ChunkSize {
		return []string{s}
	}
	var chunks []string
	for len(runes) > ChunkSize {
		chunks = append(chunks, string(runes[:ChunkSize]))
		runes = runes[ChunkSize:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// AppendChunkedGroups appends the wire groups for a long string field. A
// string that fits in one chunk uses the single-group form under
// singleCode; longer strings are emitted entirely as continuation groups
// under contCode.
func AppendChunkedGroups(dst []Group, singleCode, contCode int, s string) []Group {
	chunks := SplitChunks(s)
	if len(chunks) == 1 {
		return append(dst, TextGroup(singleCode, chunks[0]))
	}
	for _, c := range chunks {
		dst = append(dst, TextGroup(contCode, c))
	}
	return dst
}
