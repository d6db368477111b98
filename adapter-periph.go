//go:build !tinygo

package debugstream

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// ErrConfig is returned by OpenUART when the Config describes an unsupported
// line setting.
var ErrConfig = errors.New("invalid UART config")

// Config holds the configuration for a Linux UART opened through periph.io.
type Config struct {
	// Port is the registered UART name (e.g. "UART0" or "/dev/ttyAMA0").
	// Defaults to the first registered port if not provided.
	Port string
	// BaudRate is the line speed in bits per second.
	// Defaults to 115200 if not provided.
	BaudRate int
	// DataBits is the number of data bits per character.
	// Range: 5 to 8.
	// Defaults to 8 if not provided.
	DataBits int
	// Parity is one of "N", "E", "O", "M" or "S".
	// Defaults to "N" if not provided.
	Parity string
	// StopBits is 1 or 2.
	// Defaults to 1 if not provided.
	StopBits int
}

func (c *Config) applyDefaults() {
	if c.BaudRate == 0 {
		c.BaudRate = 115200
	}
	if c.DataBits == 0 {
		c.DataBits = 8
	}
	if c.Parity == "" {
		c.Parity = "N"
	}
	if c.StopBits == 0 {
		c.StopBits = 1
	}
}

func (c Config) parity() (uart.Parity, error) {
	switch c.Parity {
	case "N", "n":
		return uart.NoParity, nil
	case "E", "e":
		return uart.Even, nil
	case "O", "o":
		return uart.Odd, nil
	case "M", "m":
		return uart.Mark, nil
	case "S", "s":
		return uart.Space, nil
	default:
		return 0, fmt.Errorf("%w: parity %q", ErrConfig, c.Parity)
	}
}

func (c Config) stop() (uart.Stop, error) {
	switch c.StopBits {
	case 1:
		return uart.One, nil
	case 2:
		return uart.Two, nil
	default:
		return 0, fmt.Errorf("%w: %d stop bits", ErrConfig, c.StopBits)
	}
}

// PeriphUART implements UART on top of a periph.io connection.
type PeriphUART struct {
	disabled atomic.Bool

	mu   sync.Mutex // guards c, port and err; held across Tx
	c    conn.Conn
	port uart.PortCloser
	err  error
}

// OpenUART initialises the periph.io host, opens the configured port and
// connects to it. The returned UART starts enabled.
func OpenUART(c Config) (*PeriphUART, error) {
	c.applyDefaults()
	if c.DataBits < 5 || c.DataBits > 8 {
		return nil, fmt.Errorf("%w: %d data bits", ErrConfig, c.DataBits)
	}
	parity, err := c.parity()
	if err != nil {
		return nil, err
	}
	stop, err := c.stop()
	if err != nil {
		return nil, err
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	p, err := uartreg.Open(c.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port %q: %w", c.Port, err)
	}

	cn, err := p.Connect(physic.Frequency(c.BaudRate)*physic.Hertz, stop, parity, uart.NoFlow, c.DataBits)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to create UART connection: %w", err)
	}

	u := NewPeriphUART(cn)
	u.port = p
	return u, nil
}

// NewPeriphUART wraps an already connected UART. A nil conn yields a
// permanently disabled UART.
func NewPeriphUART(c conn.Conn) *PeriphUART {
	u := &PeriphUART{c: c}
	if c == nil {
		u.disabled.Store(true)
	}
	return u
}

func (u *PeriphUART) IsDisabled() bool {
	return u.disabled.Load()
}

// Disable mutes the UART, e.g. before powering it down.
func (u *PeriphUART) Disable() {
	u.disabled.Store(true)
}

// Enable unmutes the UART. It has no effect after Close.
func (u *PeriphUART) Enable() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.c == nil {
		return
	}
	u.disabled.Store(false)
}

func (u *PeriphUART) PutString(s string) {
	u.write([]byte(s))
}

func (u *PeriphUART) VPrintf(format string, args []any) {
	u.write(fmt.Appendf(nil, format, args...))
}

func (u *PeriphUART) write(b []byte) {
	if u.IsDisabled() {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	// Close may have run between the flag check and the lock.
	if u.c == nil {
		return
	}
	if err := u.c.Tx(b, nil); err != nil {
		u.err = err
	}
}

// Err returns the last transport error seen by a write, if any.
func (u *PeriphUART) Err() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.err
}

// Close disables the UART and releases the port if OpenUART opened it.
// It waits for an in-flight write to finish.
func (u *PeriphUART) Close() error {
	u.disabled.Store(true)
	u.mu.Lock()
	defer u.mu.Unlock()
	u.c = nil
	p := u.port
	u.port = nil
	if p != nil {
		return p.Close()
	}
	return nil
}

func (u *PeriphUART) String() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.c == nil {
		return "uart(closed)"
	}
	return u.c.String()
}
