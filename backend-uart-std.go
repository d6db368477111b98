//go:build debugstream_uart && !tinygo

package debugstream

const selectedBackend = "uart"

// Linux boards have no canonical debug UART. The application opens one
// with OpenUART and installs it with SetSink(NewUARTSink(u)).
