//go:build nodebug

package debugstream

import "testing"

type countingSink struct{ calls int }

func (s *countingSink) Enabled() bool                { s.calls++; return true }
func (s *countingSink) WriteLiteral(string)           { s.calls++ }
func (s *countingSink) WriteFormatted(string, ...any) { s.calls++ }

func TestNoDebugDropsCalls(t *testing.T) {
	if Enabled {
		t.Fatal("Expected Enabled to be false with the nodebug tag")
	}

	s := &countingSink{}
	SetSink(s)
	defer SetSink(nil)

	msg := "stored"
	Print("hello")
	PrintP(&msg)
	Printf("x=%d", 5)

	if s.calls != 0 {
		t.Errorf("Expected the sink to be untouched, got %d calls", s.calls)
	}
}
