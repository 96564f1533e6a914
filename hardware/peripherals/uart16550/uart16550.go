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

// Package uart16550 emulates the National Semiconductor 16550 UART. The
// eight register window is mirrored over however much address space the
// device is given. The divisor latch is banked behind the DLAB bit of the
// line control register, and is stored but has no effect on the emulation.
package uart16550

import (
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
)

// register indices. the divisor latch halves live beyond the 8 register
// window and are reachable only with DLAB set.
const (
	regRBR = 0 // read: receive buffer. write: transmit hold
	regIER = 1
	regIIR = 2 // read: interrupt status. write: fifo control
	regLCR = 3
	regMCR = 4
	regLSR = 5
	regMSR = 6
	regSCR = 7
	regDLL = 8
	regDLM = 9
)

const lcrDLAB uint8 = 0x80

// the bits of the line status register.
const (
	lsrDataReady uint8 = 0x01
	lsrTHREmpty  uint8 = 0x20
	lsrTxEmpty   uint8 = 0x40
)

// UART is an instance of the 16550.
type UART struct {
	term peripherals.Terminal

	registers [10]uint8

	// a received character is staged here until the receive buffer is
	// read. -1 when the stage is empty.
	pending int
}

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(term peripherals.Terminal) *UART {
	return &UART{term: term, pending: -1}
}

// stage pulls the next character from the terminal, translating line
// feeds to carriage returns.
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
	}

	u.pending = c
}

func (u *UART) dlab() bool {
	return u.registers[regLCR]&lcrDLAB == lcrDLAB
}

// Read8 implements the bus.Device interface.
func (u *UART) Read8(address uint16) uint8 {
	address &= 0x07

	u.stage()

	switch address {
	case regRBR:
		if u.dlab() {
			return u.registers[regDLL]
		}
		if u.pending >= 0 {
			val := uint8(u.pending)
			u.pending = -1
			return val
		}
	case regIER:
		if u.dlab() {
			return u.registers[regDLM]
		}
		return u.registers[regIER]
	case regIIR:
		// no interrupt is ever pending
		return 0
	case regLCR:
		return u.registers[regLCR]
	case regMCR:
		return u.registers[regMCR]
	case regLSR:
		// the transmitter is always empty
		val := lsrTHREmpty | lsrTxEmpty
		if u.pending >= 0 {
			val |= lsrDataReady
		}
		return val
	case regMSR:
		return 0
	case regSCR:
		return u.registers[regSCR]
	}
	return 0
}

// Write8 implements the bus.Device interface.
func (u *UART) Write8(address uint16, data uint8) {
	address &= 0x07

	switch address {
	case regRBR:
		if u.dlab() {
			u.registers[regDLL] = data
		} else {
			u.term.Putchar(data)
		}
	case regIER:
		if u.dlab() {
			u.registers[regDLM] = data
		} else {
			u.registers[regIER] = data
		}
	case regIIR:
		u.registers[regIIR] = data
	case regLCR:
		u.registers[regLCR] = data
	case regMCR:
		u.registers[regMCR] = data
	case regLSR, regMSR:
		// read only
	case regSCR:
		u.registers[regSCR] = data
	}
}
