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

// Package sio emulates channel A of the Zilog SIO/2 as fitted to the
// RC2014, just enough of it for the factory ROMs: a status port, a data
// port, and an interrupt on received data.
//
// Unlike the polled UARTs, reception is driven from outside: NotifyInput
// is called when terminal input arrives, stages a character and raises
// the interrupt line. NotifyInput is called from the terminal's goroutine
// so the staging is guarded by a mutex.
package sio

import (
	"sync"

	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/logger"
)

// the IO ports of the SIO/2.
const (
	PortAControl = 0x80
	PortAData    = 0x81
	PortBControl = 0x82
	PortBData    = 0x83
)

// the bits of the channel A status port.
const (
	statRxAvailable uint8 = 0x01
	statInterrupt   uint8 = 0x02
)

// SIO is an instance of the SIO/2. It implements the bus.IO interface and
// acts as the whole IO space of the machine it is fitted to.
type SIO struct {
	term peripherals.Terminal
	irq  bus.InterruptLine

	mu      sync.Mutex
	pending int
}

// NewSIO is the preferred method of initialisation for the SIO type.
func NewSIO(term peripherals.Terminal, irq bus.InterruptLine) *SIO {
	return &SIO{term: term, irq: irq, pending: -1}
}

// NotifyInput stages a received character and raises the interrupt line.
// Safe to call from any goroutine.
func (s *SIO) NotifyInput() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending >= 0 {
		return
	}

	c := s.term.NextChar()
	if c < 0 {
		return
	}

	s.pending = c
	s.irq.RaiseIRQ()
}

// IORead8 implements the bus.IO interface.
func (s *SIO) IORead8(port uint8) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch port {
	case PortAControl:
		if s.pending >= 0 {
			return statRxAvailable | statInterrupt
		}
		return 0
	case PortAData:
		if s.pending >= 0 {
			val := uint8(s.pending)
			s.pending = -1
			s.irq.LowerIRQ()
			return val
		}
		return 0
	case PortBControl, PortBData:
		// channel B is not connected
		return 0
	}

	logger.Logf("sio", "read from unknown port %#02x", port)
	return 0
}

// IOWrite8 implements the bus.IO interface.
func (s *SIO) IOWrite8(port uint8, data uint8) {
	switch port {
	case PortAControl:
		// channel configuration has no effect on the emulation
	case PortAData:
		s.term.Putchar(data)
	case PortBControl, PortBData:
		// channel B is not connected
	default:
		logger.Logf("sio", "write to unknown port %#02x", port)
	}
}
