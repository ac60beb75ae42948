// Package model holds the in-memory representation of a drawing: the
// document, its sections, and the table, class, and block records they
// contain.
//
// The model is a faithful mirror of the wire form rather than a cleaned-up
// view of it. Optional fields are pointers, records keep their file order,
// and declared counts that disagree with reality are reported but not
// repaired, so a parse and re-serialize reproduces the input.
package model
