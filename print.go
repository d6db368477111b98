//go:build !nodebug

package debugstream

// Enabled reports whether debug output was compiled in.
const Enabled = true

// Print writes the literal string s to the installed sink.
func Print(s string) {
	if sink := current; sink != Discard && sink.Enabled() {
		sink.WriteLiteral(s)
	}
}

// PrintP writes an already stored string. A nil pointer writes nothing.
func PrintP(s *string) {
	if s == nil {
		return
	}
	if sink := current; sink != Discard && sink.Enabled() {
		sink.WriteLiteral(*s)
	}
}

// Printf writes format with args substituted, like fmt.Printf.
func Printf(format string, args ...any) {
	if sink := current; sink != Discard && sink.Enabled() {
		sink.WriteFormatted(format, args...)
	}
}
