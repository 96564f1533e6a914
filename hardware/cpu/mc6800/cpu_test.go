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

package mc6800_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/mc6800"
	"github.com/jetsetilly/gopher8bit/test"
)

// mockMem is a flat 64k memory with helper functions for planting test
// programs.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) Read8(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write8(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Read16(address uint16, endian bus.Endian) uint16 {
	a := mem.internal[address]
	b := mem.internal[address+1]
	if endian == bus.Big {
		return uint16(a)<<8 | uint16(b)
	}
	return uint16(b)<<8 | uint16(a)
}

func (mem *mockMem) Write16(address uint16, data uint16, endian bus.Endian) {
	if endian == bus.Big {
		mem.internal[address] = uint8(data >> 8)
		mem.internal[address+1] = uint8(data)
	} else {
		mem.internal[address] = uint8(data)
		mem.internal[address+1] = uint8(data >> 8)
	}
}

// putInstructions is a helper function to add a sequence of bytes to memory,
// returning the address of the first byte after the sequence.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// newTestCPU creates a CPU with the reset vector pointing at the given
// origin and performs the reset step so the first instruction executed is
// the one at the origin.
func newTestCPU(mem *mockMem, origin uint16) *mc6800.CPU {
	mem.Write16(0xfffe, origin, bus.Big)
	return mc6800.NewCPU(mem)
}

func step(t *testing.T, mc *mc6800.CPU) {
	t.Helper()
	if err := mc.Step(); err != nil {
		t.Fatalf("unexpected error stepping cpu: %v", err)
	}
}

func TestResetVector(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100, 0x01) // nop
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	test.Equate(t, mc.PC, 0x0101)
}

func TestAddHalfCarry(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0x0f, // lda #$0f
		0x8b, 0x01, // adda #$01
	)
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.A, 0x10)
	test.Equate(t, mc.CC&0x20, 0x20) // H
	test.Equate(t, mc.CC&0x01, 0x00) // C
	test.Equate(t, mc.CC&0x04, 0x00) // Z
}

func TestBranchTaken(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x4f,       // clra (sets Z)
		0x27, 0x01, // beq +1
	)
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC, 0x0104)
}

func TestBranchNotTaken(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0x01, // lda #$01 (clears Z)
		0x27, 0x10, // beq +16
	)
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC, 0x0104)
}

func TestSubtract(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0x10, // lda #$10
		0x80, 0x20, // suba #$20
	)
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.A, 0xf0)
	test.Equate(t, mc.CC&0x01, 0x01) // C (borrow)
	test.Equate(t, mc.CC&0x08, 0x08) // N
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0x80, // lda #$80
		0x81, 0x01, // cmpa #$01
	)
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	step(t, mc)

	// compare does not change the accumulator. 0x80 - 0x01 overflows as a
	// signed operation.
	test.Equate(t, mc.A, 0x80)
	test.Equate(t, mc.CC&0x02, 0x02) // V
	test.Equate(t, mc.CC&0x01, 0x00) // C
}

// the arithmetic and its flags agree with the signed and unsigned facts of
// the operation for every pair of corner operands.
func TestArithmeticFlags(t *testing.T) {
	corners := []uint8{0x00, 0x01, 0x7f, 0x80, 0xff}

	for _, x := range corners {
		for _, y := range corners {
			mem := newMockMem()
			mem.putInstructions(0x0100,
				0x86, x, // lda #x
				0x8b, y, // adda #y
			)
			mc := newTestCPU(mem, 0x0100)
			step(t, mc)
			step(t, mc)

			test.Equate(t, mc.A, uint8(x+y))
			test.Equate(t, mc.CC&0x01 == 0x01, int(x)+int(y) > 0xff)
			test.Equate(t, mc.CC&0x04 == 0x04, uint8(x+y) == 0)

			s := int(int8(x)) + int(int8(y))
			test.Equate(t, mc.CC&0x02 == 0x02, s < -128 || s > 127)

			mem = newMockMem()
			mem.putInstructions(0x0100,
				0x86, x, // lda #x
				0x80, y, // suba #y
			)
			mc = newTestCPU(mem, 0x0100)
			step(t, mc)
			step(t, mc)

			test.Equate(t, mc.A, uint8(x-y))
			test.Equate(t, mc.CC&0x01 == 0x01, x < y)
			test.Equate(t, mc.CC&0x04 == 0x04, x == y)

			s = int(int8(x)) - int(int8(y))
			test.Equate(t, mc.CC&0x02 == 0x02, s < -128 || s > 127)
		}
	}
}

func TestShifts(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0x81, // lda #$81
		0x47, // asra
	)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	// arithmetic shift preserves the sign bit
	test.Equate(t, mc.A, 0xc0)
	test.Equate(t, mc.CC&0x01, 0x01) // C from bit 0

	mem = newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0x81, // lda #$81
		0x44, // lsra
	)
	mc = newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	// logical shift does not
	test.Equate(t, mc.A, 0x40)
	test.Equate(t, mc.CC&0x01, 0x01)
}

func TestTstClearsCarry(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x0d, // sec
		0x4d, // tsta
	)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.CC&0x01, 0x00)
	test.Equate(t, mc.CC&0x04, 0x04) // Z: accumulator is zero
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x8e, 0x20, 0x00, // lds #$2000
		0x86, 0x5a, // lda #$5a
		0x36, // psha
		0x4f, // clra
		0x32, // pula
	)
	mc := newTestCPU(mem, 0x0100)
	for i := 0; i < 5; i++ {
		step(t, mc)
	}

	test.Equate(t, mc.A, 0x5a)
	test.Equate(t, mc.SP, 0x2000)
}

func TestSubroutine(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x8e, 0x20, 0x00, // lds #$2000
		0xbd, 0x02, 0x00, // jsr $0200
	)
	mem.putInstructions(0x0200,
		0x39, // rts
	)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.PC, 0x0200)
	test.Equate(t, mc.SP, 0x1ffe)

	// the return address on the stack is the instruction after the jsr
	test.Equate(t, mem.Read16(0x1fff, bus.Big), 0x0106)

	step(t, mc)
	test.Equate(t, mc.PC, 0x0106)
	test.Equate(t, mc.SP, 0x2000)
}

func TestConditionCodeTransfer(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x0d, // sec
		0x07, // tpa
	)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	// the two undefined bits of CC read as set
	test.Equate(t, mc.A&0xc0, 0xc0)
	test.Equate(t, mc.A&0x01, 0x01)

	mem = newMockMem()
	mem.putInstructions(0x0100,
		0x86, 0xff, // lda #$ff
		0x06, // tap
	)
	mc = newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	// only the six defined bits are written
	test.Equate(t, mc.CC, 0x3f)
}

func TestFlagSetClear(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x0d, // sec
		0x0f, // sei
		0x0b, // sev
	)
	mc := newTestCPU(mem, 0x0100)

	step(t, mc)
	test.Equate(t, mc.CC&0x01, 0x01) // C
	step(t, mc)
	test.Equate(t, mc.CC&0x10, 0x10) // I
	step(t, mc)
	test.Equate(t, mc.CC&0x02, 0x02) // V

	// setting a flag leaves the others alone
	test.Equate(t, mc.CC, 0x13)

	mem.putInstructions(0x0103,
		0x0c, // clc
		0x0e, // cli
		0x0a, // clv
	)

	step(t, mc)
	test.Equate(t, mc.CC&0x01, 0x00)
	step(t, mc)
	test.Equate(t, mc.CC&0x10, 0x00)
	step(t, mc)
	test.Equate(t, mc.CC&0x02, 0x00)

	test.Equate(t, mc.CC, 0x00)
}

func TestIndexRegister(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0xce, 0x00, 0x01, // ldx #$0001
		0x0d, // sec
		0x09, // dex
	)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	// dex updates Z but no other flag
	test.Equate(t, mc.IX, 0x0000)
	test.Equate(t, mc.CC&0x04, 0x04)
	test.Equate(t, mc.CC&0x01, 0x01) // carry untouched
}

func TestStackPointerTransfer(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x8e, 0x20, 0x00, // lds #$2000
		0x30, // tsx
	)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	// tsx loads X with SP+1
	test.Equate(t, mc.IX, 0x2001)

	mem.putInstructions(0x0104,
		0x35, // txs
	)
	step(t, mc)
	test.Equate(t, mc.SP, 0x2000)
}

func TestIndexedAddressing(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0xce, 0x10, 0x00, // ldx #$1000
		0xa6, 0x05, // lda 5,x
	)
	mem.Write8(0x1005, 0x42)
	mc := newTestCPU(mem, 0x0100)
	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.A, 0x42)
}

func TestProgramTrap(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100,
		0x20, 0xfe, // bra -2 (branch to self)
	)
	mc := newTestCPU(mem, 0x0100)

	err := mc.Step()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, mc6800.ProgramTrap), true)
	}

	// jump to self traps the same way
	mem = newMockMem()
	mem.putInstructions(0x0100,
		0x7e, 0x01, 0x00, // jmp $0100
	)
	mc = newTestCPU(mem, 0x0100)

	err = mc.Step()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, mc6800.ProgramTrap), true)
	}
}

func TestUnknownOpcode(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0100, 0x02)
	mc := newTestCPU(mem, 0x0100)

	err := mc.Step()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, mc6800.UnknownOpcode), true)
	}
}
