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

package alu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/hardware/cpu/alu"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestAddition(t *testing.T) {
	// 0x7f + 0x01 overflows as a signed operation but does not carry
	a := uint32(0x7f)
	b := uint32(0x01)
	r := a + b
	test.Equate(t, alu.Carry8(r), false)
	test.Equate(t, alu.Overflow8(a, b, r), true)
	test.Equate(t, alu.Negative8(r), true)
	test.Equate(t, alu.HalfCarry(a, b, r), true)

	// 0xff + 0x01 carries but does not overflow
	a = 0xff
	b = 0x01
	r = a + b
	test.Equate(t, alu.Carry8(r), true)
	test.Equate(t, alu.Overflow8(a, b, r), false)
	test.Equate(t, alu.Zero8(r), true)
}

func TestSubtraction(t *testing.T) {
	// subtraction happens directly in the widened arithmetic. the carry out
	// is the borrow: set when the subtrahend is larger than the minuend.
	a := uint32(0x10)
	b := uint32(0x20)
	r := a - b
	test.Equate(t, alu.Carry8(r), true)
	test.Equate(t, alu.Negative8(r), true)

	a = 0x20
	b = 0x10
	r = a - b
	test.Equate(t, alu.Carry8(r), false)

	// 0x80 - 0x01 overflows as a signed operation
	a = 0x80
	b = 0x01
	r = a - b
	test.Equate(t, alu.Overflow8(a, b, r), true)
}

// exhaustive check that the widened arithmetic round-trips: for every pair
// of corner operands the flags agree with the signed and unsigned facts of
// the operation.
func TestFlagConsistency(t *testing.T) {
	corners := []uint8{0x00, 0x01, 0x7f, 0x80, 0xff}

	for _, x := range corners {
		for _, y := range corners {
			a := uint32(x)
			b := uint32(y)
			r := a + b

			test.Equate(t, alu.Carry8(r), int(x)+int(y) > 0xff)
			test.Equate(t, alu.Zero8(r), uint8(x+y) == 0)
			test.Equate(t, alu.Negative8(r), int8(x+y) < 0)

			s := int(int8(x)) + int(int8(y))
			test.Equate(t, alu.Overflow8(a, b, r), s < -128 || s > 127)

			r = a - b
			test.Equate(t, alu.Carry8(r), x < y)
			test.Equate(t, alu.Zero8(r), x == y)

			s = int(int8(x)) - int(int8(y))
			test.Equate(t, alu.Overflow8(a, b, r), s < -128 || s > 127)
		}
	}
}

func TestCarry16(t *testing.T) {
	a := uint32(0xffff)
	r := a + 1
	test.Equate(t, alu.Carry16(r), true)
	test.Equate(t, alu.Zero16(r), true)

	// a sixteen-bit addition that carries out of the low byte does not carry
	// out of the word
	a = 0x00ff
	r = a + 1
	test.Equate(t, alu.Carry16(r), false)
	test.Equate(t, alu.Negative16(r), false)

	a = 0x7fff
	b := uint32(0x0001)
	r = a + b
	test.Equate(t, alu.Overflow16(a, b, r), true)
	test.Equate(t, alu.Negative16(r), true)
}

func TestParity(t *testing.T) {
	test.Equate(t, alu.Parity(0x00), true)
	test.Equate(t, alu.Parity(0x01), false)
	test.Equate(t, alu.Parity(0x03), true)
	test.Equate(t, alu.Parity(0xff), true)
	test.Equate(t, alu.Parity(0xfe), false)
}
