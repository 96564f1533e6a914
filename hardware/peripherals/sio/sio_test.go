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

package sio_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/peripherals/sio"
	"github.com/jetsetilly/gopher8bit/test"
)

type scriptedTerminal struct {
	input  []uint8
	output []uint8
}

func (term *scriptedTerminal) NextChar() int {
	if len(term.input) == 0 {
		return -1
	}
	c := term.input[0]
	term.input = term.input[1:]
	return int(c)
}

func (term *scriptedTerminal) Putchar(c uint8) {
	term.output = append(term.output, c)
}

type mockInterruptLine struct {
	raised bool
}

func (irq *mockInterruptLine) RaiseIRQ() {
	irq.raised = true
}

func (irq *mockInterruptLine) LowerIRQ() {
	irq.raised = false
}

func TestReceiveInterrupt(t *testing.T) {
	term := &scriptedTerminal{input: []uint8{'g'}}
	irq := &mockInterruptLine{}
	s := sio.NewSIO(term, irq)

	test.Equate(t, s.IORead8(sio.PortAControl), 0x00)

	s.NotifyInput()
	test.Equate(t, irq.raised, true)
	test.Equate(t, s.IORead8(sio.PortAControl), 0x03)

	// reading the data port lowers the interrupt
	test.Equate(t, s.IORead8(sio.PortAData), 'g')
	test.Equate(t, irq.raised, false)
	test.Equate(t, s.IORead8(sio.PortAControl), 0x00)
}

func TestStagedCharacterIsNotOverwritten(t *testing.T) {
	term := &scriptedTerminal{input: []uint8{'a', 'b'}}
	irq := &mockInterruptLine{}
	s := sio.NewSIO(term, irq)

	s.NotifyInput()
	s.NotifyInput()

	// the second character stays queued at the terminal
	test.Equate(t, s.IORead8(sio.PortAData), 'a')
	s.NotifyInput()
	test.Equate(t, s.IORead8(sio.PortAData), 'b')
}

func TestTransmit(t *testing.T) {
	term := &scriptedTerminal{}
	s := sio.NewSIO(term, &mockInterruptLine{})

	s.IOWrite8(sio.PortAData, 'o')
	s.IOWrite8(sio.PortAData, 'k')
	test.Equate(t, string(term.output), "ok")
}

func TestChannelBIgnored(t *testing.T) {
	term := &scriptedTerminal{}
	s := sio.NewSIO(term, &mockInterruptLine{})

	s.IOWrite8(sio.PortBData, 'x')
	test.Equate(t, len(term.output), 0)
	test.Equate(t, s.IORead8(sio.PortBControl), 0x00)
}
