package core

import (
	"fmt"
	"strconv"
	"strings"
)

// EndOfFileToken is the value of the code-0 group that terminates a stream.
const EndOfFileToken = "EOF"

// SplitLines splits a raw text blob into lines, accepting LF, CRLF, and
// bare-CR line endings. Leading whitespace on each line is insignificant
// and stripped at read time; trailing whitespace is preserved.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Scanner is a sequential cursor over a flat array of raw (code, value)
// line pairs. It converts each pair into a typed Group and supports
// one-step lookahead (Peek) and bounded backtracking (Rewind).
//
// A Scanner is created once per parse pass and discarded afterwards. It is
// not safe for concurrent use.
type Scanner struct {
	lines     []string
	pos       int // index of the next unread code line; advances 2 per group
	exhausted bool
	last      *Group
	sink      DiagnosticSink
	warnedPos int // highest position an unknown-code notice was issued for
}

// NewScanner creates a scanner over the given lines. A nil sink discards
// diagnostics.
func NewScanner(lines []string, sink DiagnosticSink) *Scanner {
	if sink == nil {
		sink = Discard
	}
	return &Scanner{lines: lines, sink: sink, warnedPos: -1}
}

// Next consumes two lines (code, value), converts the value via the typing
// function keyed on code, and returns the group. It fails with
// ErrUnexpectedEndOfInput if fewer than two lines remain before the
// end-of-file token has been seen, and with ErrReadPastEnd if called after
// the end-of-file token has been consumed.
func (s *Scanner) Next() (Group, error) {
	g, err := s.read(true)
	if err != nil {
		return Group{}, err
	}
	s.pos += 2
	s.last = &g
	if g.IsEndOfFile() {
		s.exhausted = true
	}
	return g, nil
}

// Peek returns the group Next would return without advancing the cursor or
// updating the last-read group. Failure conditions match Next.
func (s *Scanner) Peek() (Group, error) {
	return s.read(false)
}

// Rewind moves the cursor back by n groups. Callers must rewind only by
// amounts they know were validly read forward; moving the cursor before
// the start of the input is a programming error and panics.
func (s *Scanner) Rewind(n int) {
	if n < 0 {
		panic("dxf/core: negative scanner rewind")
	}
	next := s.pos - 2*n
	if next < 0 {
		panic("dxf/core: scanner rewind past start of input")
	}
	s.pos = next
	s.exhausted = false
}

// IsExhausted reports whether the end-of-file token has been read.
func (s *Scanner) IsExhausted() bool {
	return s.exhausted
}

// Last returns the most recently consumed group, if any.
func (s *Scanner) Last() (Group, bool) {
	if s.last == nil {
		return Group{}, false
	}
	return *s.last, true
}

// read converts the pair at the current position without moving the
// cursor. Unknown-code diagnostics are only emitted on a consuming read,
// and only the first time the position is consumed.
func (s *Scanner) read(consuming bool) (Group, error) {
	if s.exhausted {
		return Group{}, ErrReadPastEnd
	}
	if s.pos+1 >= len(s.lines) {
		return Group{}, fmt.Errorf("%w: %d line(s) remain, need a code/value pair", ErrUnexpectedEndOfInput, len(s.lines)-s.pos)
	}

	codeText := strings.TrimSpace(s.lines[s.pos])
	code, err := strconv.Atoi(codeText)
	if err != nil {
		return Group{}, fmt.Errorf("line %d: invalid group code %q: %w", s.pos+1, codeText, err)
	}

	// Leading whitespace is insignificant; trailing whitespace is data.
	raw := strings.TrimLeft(s.lines[s.pos+1], " \t")

	// Warn at most once per position, so neither a Peek-then-Next nor a
	// speculative read pushed back by Rewind reports the same group twice.
	if consuming && !KnownCode(code) && s.pos > s.warnedPos {
		s.sink.Warnf("group code %d has no defined type; treating value as text", code)
		s.warnedPos = s.pos
	}

	value, err := ParseValue(code, raw)
	if err != nil {
		return Group{}, fmt.Errorf("line %d: %w", s.pos+2, err)
	}
	return Group{Code: code, Value: value}, nil
}
