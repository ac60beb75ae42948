package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Value represents a typed group value. The concrete type is determined by
// the group code via TypeOf.
type Value interface {
	Kind() Kind
	// Wire returns the canonical wire text for the value.
	Wire() string
}

// Kind represents the type of a group value.
type Kind int

const (
	// KindText indicates a string value.
	KindText Kind = iota
	// KindFloat indicates a floating-point value.
	KindFloat
	// KindInteger indicates an integer value.
	KindInteger
	// KindBoolean indicates a boolean value.
	KindBoolean
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Text represents a string group value. Trailing whitespace is significant
// and preserved (line-type pattern descriptions rely on it).
type Text string

func (t Text) Kind() Kind   { return KindText }
func (t Text) Wire() string { return string(t) }

// Float represents a floating-point group value.
type Float float64

func (f Float) Kind() Kind { return KindFloat }

// Wire renders the float with at least one fractional digit, so an
// integer-valued float 4 renders as "4.0".
func (f Float) Wire() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Integer represents an integer group value.
type Integer int64

func (i Integer) Kind() Kind   { return KindInteger }
func (i Integer) Wire() string { return strconv.FormatInt(int64(i), 10) }

// Boolean represents a boolean group value.
type Boolean bool

func (b Boolean) Kind() Kind { return KindBoolean }
func (b Boolean) Wire() string {
	if b {
		return "1"
	}
	return "0"
}

// Group is one (code, typed value) pair, the atomic unit of the stream.
// Groups are immutable once produced by the Scanner.
type Group struct {
	Code  int
	Value Value
}

// String returns a debug representation of the group.
func (g Group) String() string {
	return fmt.Sprintf("(%d, %s)", g.Code, g.Value.Wire())
}

// Text retrieves the value as a string.
func (g Group) Text() (string, bool) {
	t, ok := g.Value.(Text)
	return string(t), ok
}

// Float retrieves the value as a float64.
func (g Group) Float() (float64, bool) {
	f, ok := g.Value.(Float)
	return float64(f), ok
}

// Int retrieves the value as an int64.
func (g Group) Int() (int64, bool) {
	i, ok := g.Value.(Integer)
	return int64(i), ok
}

// Bool retrieves the value as a bool.
func (g Group) Bool() (bool, bool) {
	b, ok := g.Value.(Boolean)
	return bool(b), ok
}

// IsEndOfFile reports whether the group is the end-of-file marker (0, "EOF").
func (g Group) IsEndOfFile() bool {
	t, ok := g.Text()
	return g.Code == 0 && ok && t == EndOfFileToken
}

// TextGroup builds a string-valued group.
func TextGroup(code int, value string) Group {
	return Group{Code: code, Value: Text(value)}
}

// FloatGroup builds a float-valued group.
func FloatGroup(code int, value float64) Group {
	return Group{Code: code, Value: Float(value)}
}

// IntGroup builds an integer-valued group.
func IntGroup(code int, value int64) Group {
	return Group{Code: code, Value: Integer(value)}
}

// BoolGroup builds a boolean-valued group.
func BoolGroup(code int, value bool) Group {
	return Group{Code: code, Value: Boolean(value)}
}
