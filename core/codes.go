package core

import (
	"fmt"
	"strconv"
)

// codeRange is one contiguous run of group codes sharing a value kind.
type codeRange struct {
	lo, hi int
	kind   Kind
}

// The group-code space partitions into disjoint documented ranges. Codes
// outside every range fall back to Text (see TypeOf).
var codeRanges = []codeRange{
	{0, 9, KindText},
	{10, 59, KindFloat},
	{60, 99, KindInteger},
	{100, 109, KindText},
	{110, 149, KindFloat},
	{160, 179, KindInteger},
	{210, 239, KindFloat},
	{270, 289, KindInteger},
	{290, 299, KindBoolean},
	{300, 369, KindText},
	{370, 389, KindInteger},
	{390, 399, KindText},
	{400, 409, KindInteger},
	{410, 419, KindText},
	{420, 429, KindInteger},
	{430, 439, KindText},
	{440, 459, KindInteger},
	{460, 469, KindFloat},
	{470, 481, KindText},
	{999, 999, KindText},
	{1000, 1009, KindText},
	{1010, 1059, KindFloat},
	{1060, 1071, KindInteger},
}

// TypeOf maps a group code to the kind of value it carries. Codes outside
// every documented range yield KindText; use KnownCode to distinguish the
// fallback from a genuine string code.
func TypeOf(code int) Kind {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return r.kind
		}
	}
	return KindText
}

// KnownCode reports whether the code falls inside a documented range.
func KnownCode(code int) bool {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return true
		}
	}
	return false
}

// ParseValue converts raw wire text into a typed value keyed on the group
// code. It is the exact inverse of RenderValue up to canonical numeric
// formatting.
func ParseValue(code int, raw string) (Value, error) {
	switch TypeOf(code) {
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("code %d: invalid float %q: %w", code, raw, err)
		}
		return Float(f), nil

	case KindInteger:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("code %d: invalid integer %q: %w", code, raw, err)
		}
		return Integer(i), nil

	case KindBoolean:
		switch raw {
		case "0":
			return Boolean(false), nil
		case "1":
			return Boolean(true), nil
		default:
			return nil, fmt.Errorf("code %d: %w: %q", code, ErrInvalidBoolean, raw)
		}

	default:
		return Text(raw), nil
	}
}

// RenderValue returns the canonical wire text for a value.
func RenderValue(v Value) string {
	return v.Wire()
}
