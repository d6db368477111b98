//go:build tinygo

package debugstream

import (
	"fmt"
	"machine"
)

// TinyGoUART implements UART on top of a machine.UART.
type TinyGoUART struct {
	uart     *machine.UART
	disabled bool
}

// NewTinyGoUART wraps u, which must already be configured.
// The returned UART starts enabled.
func NewTinyGoUART(u *machine.UART) *TinyGoUART {
	return &TinyGoUART{uart: u}
}

func (u *TinyGoUART) IsDisabled() bool { return u.disabled }

// Disable mutes the UART, e.g. before entering sleep.
func (u *TinyGoUART) Disable() { u.disabled = true }

// Enable unmutes the UART.
func (u *TinyGoUART) Enable() { u.disabled = false }

func (u *TinyGoUART) PutString(s string) {
	if u.disabled {
		return
	}
	u.uart.Write([]byte(s))
}

func (u *TinyGoUART) VPrintf(format string, args []any) {
	if u.disabled {
		return
	}
	fmt.Fprintf(u.uart, format, args...)
}
