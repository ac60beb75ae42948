package core

import (
	"errors"
	"fmt"
)

// Structural scanner errors are fatal: the input is truncated or the
// scanner was misused.
var (
	// ErrUnexpectedEndOfInput indicates the input ran out before the
	// end-of-file marker was seen.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrReadPastEnd indicates a read was attempted after the end-of-file
	// marker had been consumed.
	ErrReadPastEnd = errors.New("read past end of input")

	// ErrInvalidBoolean indicates a boolean-typed group carried text other
	// than the literal "0" or "1".
	ErrInvalidBoolean = errors.New("invalid boolean value")
)

// MalformedPointError reports a point component arriving under the wrong
// group code.
type MalformedPointError struct {
	Expected int
	Actual   int
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("malformed point: expected group code %d, got %d", e.Expected, e.Actual)
}

// MalformedMatrixError reports a matrix element arriving under the wrong
// group code.
type MalformedMatrixError struct {
	Expected int
	Actual   int
}

func (e *MalformedMatrixError) Error() string {
	return fmt.Sprintf("malformed matrix: expected group code %d, got %d", e.Expected, e.Actual)
}
