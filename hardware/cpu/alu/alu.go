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

// Package alu provides the flag arithmetic shared by the CPU cores. Every
// core performs arithmetic in a uint32 that is wide enough to hold the carry
// out of the top bit of the operation, and derives its status flags from the
// operands and the widened result with the functions in this package.
//
// Subtraction is performed directly in the widened arithmetic:
//
//	r := uint32(acc) - uint32(operand)
//
// With both operands confined to the operation width, Carry8() of the
// result is the borrow of the subtraction and Overflow8() and HalfCarry()
// work unchanged for both directions. Operands must not be negated before
// the flag functions see them. The formulas recover the carry and borrow
// chains from the exclusive-or of the operands and the result, which only
// works when the operands occupy the operation width alone.
package alu

// Carry8 is true if the operation carried out of bit seven. For a
// subtraction this is the borrow.
func Carry8(r uint32) bool {
	return r&0x100 == 0x100
}

// Carry16 is true if the operation carried out of bit fifteen.
func Carry16(r uint32) bool {
	return r&0x10000 == 0x10000
}

// Zero8 is true if the low eight bits of the result are zero.
func Zero8(r uint32) bool {
	return r&0xff == 0
}

// Zero16 is true if the low sixteen bits of the result are zero.
func Zero16(r uint32) bool {
	return r&0xffff == 0
}

// Negative8 is true if bit seven of the result is set.
func Negative8(r uint32) bool {
	return r&0x80 == 0x80
}

// Negative16 is true if bit fifteen of the result is set.
func Negative16(r uint32) bool {
	return r&0x8000 == 0x8000
}

// Overflow8 is true if the operation overflowed as a signed eight-bit
// operation. The expression XORs away every bit that is not the carry into
// or out of the sign bit, leaving their disagreement.
func Overflow8(a uint32, b uint32, r uint32) bool {
	return (a^b^r^(r>>1))&0x80 == 0x80
}

// Overflow16 is true if the operation overflowed as a signed sixteen-bit
// operation.
func Overflow16(a uint32, b uint32, r uint32) bool {
	return (a^b^r^(r>>1))&0x8000 == 0x8000
}

// HalfCarry is true if the operation carried out of bit three. Only the
// eight-bit form exists because no implemented CPU records a sixteen-bit
// half-carry.
func HalfCarry(a uint32, b uint32, r uint32) bool {
	return (a^b^r)&0x10 == 0x10
}

// Parity is true if the low eight bits of the value contain an even number
// of set bits. This is the sense of the Z80 parity/overflow flag.
func Parity(r uint32) bool {
	r &= 0xff
	r ^= r >> 4
	r ^= r >> 2
	r ^= r >> 1
	return r&0x01 == 0
}
