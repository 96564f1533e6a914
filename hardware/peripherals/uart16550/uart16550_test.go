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

package uart16550_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/peripherals/uart16550"
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

func TestLineStatus(t *testing.T) {
	term := &scriptedTerminal{}
	u := uart16550.NewUART(term)

	// transmitter empty, no receive data
	test.Equate(t, u.Read8(5), 0x60)

	term.input = []uint8{'x'}
	test.Equate(t, u.Read8(5), 0x61)

	test.Equate(t, u.Read8(0), 'x')
	test.Equate(t, u.Read8(5), 0x60)
}

func TestLineFeedTranslation(t *testing.T) {
	term := &scriptedTerminal{input: []uint8{0x0a}}
	u := uart16550.NewUART(term)

	test.Equate(t, u.Read8(0), 0x0d)
}

func TestTransmit(t *testing.T) {
	term := &scriptedTerminal{}
	u := uart16550.NewUART(term)

	u.Write8(0, 'h')
	u.Write8(0, 'i')
	test.Equate(t, string(term.output), "hi")
}

func TestDivisorLatch(t *testing.T) {
	term := &scriptedTerminal{}
	u := uart16550.NewUART(term)

	// with DLAB set the first two registers bank to the divisor latch
	u.Write8(3, 0x80)
	u.Write8(0, 0x0c)
	u.Write8(1, 0x00)
	test.Equate(t, u.Read8(0), 0x0c)
	test.Equate(t, u.Read8(1), 0x00)
	test.Equate(t, len(term.output), 0)

	// clearing DLAB restores the data registers
	u.Write8(3, 0x00)
	u.Write8(0, 'z')
	test.Equate(t, string(term.output), "z")
}

func TestMirroring(t *testing.T) {
	term := &scriptedTerminal{}
	u := uart16550.NewUART(term)

	u.Write8(7, 0x42)

	// the register window repeats every eight addresses
	test.Equate(t, u.Read8(0x7ff), 0x42)
}

func TestScratchRegister(t *testing.T) {
	term := &scriptedTerminal{}
	u := uart16550.NewUART(term)

	u.Write8(7, 0xa5)
	test.Equate(t, u.Read8(7), 0xa5)
}
