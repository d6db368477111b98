// Package debugstream forwards debug output to an application-selected sink.
//
// Call sites use Print, PrintP and Printf everywhere. Exactly one backend is
// selected per program, either by a build tag (debugstream_serial,
// debugstream_uart) or by calling SetSink during initialisation. Building
// with the nodebug tag turns every call into an empty function.
package debugstream

// Sink is a destination for debug output.
type Sink interface {
	// Enabled reports whether the sink currently accepts output.
	Enabled() bool
	// WriteLiteral writes s verbatim.
	WriteLiteral(s string)
	// WriteFormatted writes format with args substituted printf-style.
	WriteFormatted(format string, args ...any)
}

// Discard is the sink used when no backend has been selected.
var Discard Sink = discardSink{}

var current Sink = Discard

// SetSink sets the process-wide sink. A nil sink installs Discard.
// It is meant to be called once, before any debug output.
func SetSink(s Sink) {
	if s == nil {
		current = Discard
		return
	}
	current = s
}

// CurrentSink returns the installed sink.
func CurrentSink() Sink {
	return current
}

type discardSink struct{}

func (discardSink) Enabled() bool                { return false }
func (discardSink) WriteLiteral(string)           {}
func (discardSink) WriteFormatted(string, ...any) {}
