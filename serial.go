package debugstream

import (
	"fmt"
	"io"
)

// SerialSink forwards debug output to a SerialWrapper.
type SerialSink struct {
	w SerialWrapper
}

// NewSerialSink returns a sink that writes through w.
func NewSerialSink(w SerialWrapper) *SerialSink {
	return &SerialSink{w: w}
}

// Enabled always returns true; serial ports have no disabled state.
func (s *SerialSink) Enabled() bool { return true }

func (s *SerialSink) WriteLiteral(str string) {
	s.w.Print(str)
}

func (s *SerialSink) WriteFormatted(format string, args ...any) {
	s.w.VPrintf(format, args)
}

// writerSerial adapts an io.Writer such as machine.Serial or os.Stderr.
type writerSerial struct {
	w io.Writer
}

// NewSerialWrapper wraps a platform serial port.
// Write errors are dropped: the port owns its own failure handling.
func NewSerialWrapper(w io.Writer) SerialWrapper {
	return &writerSerial{w: w}
}

func (s *writerSerial) Print(str string) {
	io.WriteString(s.w, str)
}

func (s *writerSerial) VPrintf(format string, args []any) {
	fmt.Fprintf(s.w, format, args...)
}
