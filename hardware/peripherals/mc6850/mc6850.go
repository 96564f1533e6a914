// This file is part of Gopher8Bit.
//
// Gopher8Bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8Bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8Bit.  If not, see <https://www.gnu.org/licenses/>.

// Package mc6850 emulates the Motorola MC6850 ACIA: a status/control
// register at offset zero and a data register at offset one. Timing is not
// emulated. The transmitter is always ready and a received character is
// available as soon as the terminal has one.
package mc6850

import (
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
)

// the bits of the status register.
const (
	statRDRF uint8 = 0x01
	statTDRE uint8 = 0x02
)

// UART is an instance of the MC6850.
type UART struct {
	term peripherals.Terminal

	control uint8

	// a received character is staged here until the data register is
	// read. -1 when the stage is empty.
	pending int
}

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(term peripherals.Terminal) *UART {
	return &UART{term: term, pending: -1}
}

// stage pulls the next character from the terminal. line feeds become
// carriage returns and lower case is folded to upper case, which is what
// the software of the period expects of its teletype.
func (u *UART) stage() {
	if u.pending >= 0 {
		return
	}

	c := u.term.NextChar()
	if c < 0 {
		return
	}

	if c == 0x0a {
		c = 0x0d
	} else if c >= 'a' && c <= 'z' {
		c -= 0x20
	}

	u.pending = c
}

// Read8 implements the bus.Device interface.
func (u *UART) Read8(address uint16) uint8 {
	u.stage()

	switch address {
	case 0:
		// the transmitter is always empty
		val := statTDRE
		if u.pending >= 0 {
			val |= statRDRF
		}
		return val
	case 1:
		if u.pending >= 0 {
			val := uint8(u.pending)
			u.pending = -1
			return val
		}
	}
	return 0
}

// Write8 implements the bus.Device interface.
func (u *UART) Write8(address uint16, data uint8) {
	switch address {
	case 0:
		// baud rate and word format have no effect on the emulation
		u.control = data
	case 1:
		// transmit as 7-bit characters
		u.term.Putchar(data & 0x7f)
	}
}
