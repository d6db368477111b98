//go:build debugstream_uart && tinygo

package debugstream

import "machine"

const selectedBackend = "uart"

// DefaultUART is the driver behind the automatically selected UART sink.
// Call DefaultUART.Disable before sleeping the peripheral.
var DefaultUART = NewTinyGoUART(machine.DefaultUART)

func init() {
	SetSink(NewUARTSink(DefaultUART))
}
