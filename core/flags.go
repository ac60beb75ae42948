package core

// Flag bitfield decomposition: deriving named boolean fields from one
// integer's bits. Purely combinational, no scanner interaction.

// HasFlag reports whether the masked bits are set.
func HasFlag(flags, mask int64) bool {
	return flags&mask != 0
}

// FlagClear reports whether the masked bits are clear. Used by the one
// record kind whose flags carry an inverted sense (bit set means the
// feature is off).
func FlagClear(flags, mask int64) bool {
	return flags&mask == 0
}

// SetFlag returns flags with the masked bits set or cleared. Bits outside
// the mask are untouched, so undocumented bits survive a round trip.
func SetFlag(flags, mask int64, on bool) int64 {
	if on {
		return flags | mask
	}
	return flags &^ mask
}

// Decompose derives one boolean per named mask.
func Decompose(flags int64, masks map[string]int64) map[string]bool {
	out := make(map[string]bool, len(masks))
	for name, mask := range masks {
		out[name] = HasFlag(flags, mask)
	}
	return out
}
