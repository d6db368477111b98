package debugstream

// UARTSink forwards debug output to a UART driver, honouring its
// runtime disabled flag.
type UARTSink struct {
	u UART
}

// NewUARTSink returns a sink that writes through u.
func NewUARTSink(u UART) *UARTSink {
	return &UARTSink{u: u}
}

func (s *UARTSink) Enabled() bool {
	return !s.u.IsDisabled()
}

func (s *UARTSink) WriteLiteral(str string) {
	if s.u.IsDisabled() {
		return
	}
	s.u.PutString(str)
}

func (s *UARTSink) WriteFormatted(format string, args ...any) {
	if s.u.IsDisabled() {
		return
	}
	s.u.VPrintf(format, args)
}
