//go:build nodebug

package debugstream

// Enabled reports whether debug output was compiled in.
const Enabled = false

// Print is a no-op in nodebug builds.
func Print(s string) {}

// PrintP is a no-op in nodebug builds.
func PrintP(s *string) {}

// Printf is a no-op in nodebug builds.
func Printf(format string, args ...any) {}
