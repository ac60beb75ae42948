package core

import "fmt"

// Warning describes a non-fatal condition noticed during parsing or
// serialization: an unhandled group code, a declared-vs-actual count
// mismatch, a group code with no defined type.
type Warning struct {
	Message string
}

// DiagnosticSink receives non-fatal diagnostics. A sink is injected into a
// parse or serialize call; there is no ambient log state.
type DiagnosticSink interface {
	Warnf(format string, args ...interface{})
}

// Collector is a DiagnosticSink that accumulates warnings in order.
type Collector struct {
	Warnings []Warning
}

// Warnf records one warning.
func (c *Collector) Warnf(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, Warning{Message: fmt.Sprintf(format, args...)})
}

// Discard is a DiagnosticSink that drops everything.
var Discard DiagnosticSink = discardSink{}

type discardSink struct{}

func (discardSink) Warnf(string, ...interface{}) {}

// TeeSink fans diagnostics out to multiple sinks. Nil entries are skipped.
func TeeSink(sinks ...DiagnosticSink) DiagnosticSink {
	var active []DiagnosticSink
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return teeSink(active)
}

type teeSink []DiagnosticSink

func (t teeSink) Warnf(format string, args ...interface{}) {
	for _, s := range t {
		s.Warnf(format, args...)
	}
}
