package debugstream

// SerialWrapper is a print-capable wrapper around a serial port.
type SerialWrapper interface {
	// Print writes s as is.
	Print(s string)
	// VPrintf formats args according to format and writes the result.
	VPrintf(format string, args []any)
}

// UART is a UART driver with an explicit enable/disable lifecycle.
type UART interface {
	// IsDisabled reports whether the UART is muted, powered down or unconfigured.
	IsDisabled() bool
	// PutString writes s.
	PutString(s string)
	// VPrintf formats args according to format and writes the result.
	VPrintf(format string, args []any)
}
