//go:build debugstream_serial && tinygo

package debugstream

import "machine"

const selectedBackend = "serial"

// The serial wrapper writes to machine.Serial directly; the application
// configures the port before the first debug call if the board needs it.
func init() {
	SetSink(NewSerialSink(NewSerialWrapper(machine.Serial)))
}
