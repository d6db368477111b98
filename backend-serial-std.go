//go:build debugstream_serial && !tinygo

package debugstream

import "os"

const selectedBackend = "serial"

func init() {
	SetSink(NewSerialSink(NewSerialWrapper(os.Stderr)))
}
