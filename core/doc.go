// Package core provides the low-level primitives for reading and writing
// the DXF tag/value group stream.
//
// # Groups and Values
//
// The atomic unit of the stream is the [Group]: one (integer code, typed
// value) pair. The code determines the value's type through a fixed, total
// partition of the code space ([TypeOf]); the concrete value types are
// [Text], [Float], [Integer], and [Boolean], all satisfying the [Value]
// interface. [ParseValue] and [RenderValue] are exact inverses up to
// canonical numeric formatting (floats always carry at least one
// fractional digit).
//
// # Scanning
//
// The [Scanner] type is a sequential cursor over the flat line array of a
// stream. It supports one-step lookahead via Peek and bounded backtracking
// via Rewind. Rewind is a deliberately unsafe, low-level primitive: higher
// layers pair every speculative Next with at most one compensating Rewind.
//
// # Structural sub-protocols
//
// Reusable parsers layered on the Scanner each consume a known-shape run
// of groups and leave the scanner positioned deterministically:
//
//   - [ParsePoint] - 2 or 3 float components; z presence is detected by a
//     speculative read that is pushed back exactly once when absent
//   - [ParseMatrix] - exactly 16 floats under one repeated code
//   - [SplitChunks] / [AppendChunkedGroups] - long strings split across
//     size-bounded groups
//   - [HasFlag] / [FlagClear] / [Decompose] - bitfield decomposition
//
// # Diagnostics
//
// Non-fatal conditions (unknown codes, count mismatches) are reported to
// an injected [DiagnosticSink] rather than ambient log state. [Collector]
// accumulates them as [Warning] values.
package core
