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

// Package mc6809 emulates the Motorola MC6809. Like the mc6800 package it
// is a table driven interpreter, but the table has three pages: the prefix
// bytes 0x10 and 0x11 select the second and third pages for the next
// opcode byte.
//
// The D register is the concatenation of A and B and is not stored
// separately. Reads and writes of D go through the A and B fields, so the
// coupling between the registers holds at all times.
package mc6809

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/alu"
)

// the bits of the condition code register.
const (
	flagC uint8 = 0x01
	flagV uint8 = 0x02
	flagZ uint8 = 0x04
	flagN uint8 = 0x08
	flagI uint8 = 0x10
	flagH uint8 = 0x20
	flagF uint8 = 0x40
	flagE uint8 = 0x80
)

// the reset vector is read big-endian on the first Step() after a reset.
const resetVector = 0xfffe

// Error patterns for the mc6809 package.
const (
	UnknownOpcode = "mc6809: unknown opcode %#02x at address %#04x"
	BadIndexMode  = "mc6809: unsupported indexed submode in post-byte %#02x at address %#04x"
	ProgramTrap   = "mc6809: program trapped at address %#04x"
)

// CPU is an instance of the MC6809.
type CPU struct {
	mem bus.Memory

	A  uint8
	B  uint8
	X  uint16
	Y  uint16
	U  uint16
	S  uint16
	PC uint16
	DP uint8
	CC uint8

	pendingReset bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// CPU is created in the reset state.
func NewCPU(mem bus.Memory) *CPU {
	mc := &CPU{mem: mem}
	mc.Reset()
	return mc
}

// Reset puts the CPU into the reset state. The reset vector is not read
// until the next call to Step().
func (mc *CPU) Reset() {
	mc.A = 0
	mc.B = 0
	mc.X = 0
	mc.Y = 0
	mc.U = 0
	mc.S = 0
	mc.PC = 0
	mc.DP = 0
	mc.CC = 0
	mc.pendingReset = true
}

// D is the concatenation of the A and B accumulators.
func (mc *CPU) D() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.B)
}

// SetD writes through to the A and B accumulators.
func (mc *CPU) SetD(val uint16) {
	mc.A = uint8(val >> 8)
	mc.B = uint8(val)
}

func (mc *CPU) String() string {
	return fmt.Sprintf("A %02x B %02x D %04x X %04x Y %04x U %04x S %04x DP %02x CC %02x (%c%c%c%c%c) PC %04x",
		mc.A, mc.B, mc.D(), mc.X, mc.Y, mc.U, mc.S, mc.DP, mc.CC,
		flagRune(mc.CC, flagH, 'h'), flagRune(mc.CC, flagN, 'n'),
		flagRune(mc.CC, flagZ, 'z'), flagRune(mc.CC, flagV, 'v'),
		flagRune(mc.CC, flagC, 'c'),
		mc.PC)
}

func flagRune(cc uint8, flag uint8, r rune) rune {
	if cc&flag == flag {
		return r
	}
	return ' '
}

func (mc *CPU) flag(flag uint8) bool {
	return mc.CC&flag == flag
}

func (mc *CPU) setFlag(flag uint8, on bool) {
	if on {
		mc.CC |= flag
	} else {
		mc.CC &^= flag
	}
}

func (mc *CPU) setNZ8(r uint32) {
	mc.setFlag(flagN, alu.Negative8(r))
	mc.setFlag(flagZ, alu.Zero8(r))
}

func (mc *CPU) setNZ16(r uint32) {
	mc.setFlag(flagN, alu.Negative16(r))
	mc.setFlag(flagZ, alu.Zero16(r))
}

// access to registers by the table's register tag.
func (mc *CPU) reg(r register) uint16 {
	switch r {
	case regA:
		return uint16(mc.A)
	case regB:
		return uint16(mc.B)
	case regD:
		return mc.D()
	case regX:
		return mc.X
	case regY:
		return mc.Y
	case regU:
		return mc.U
	case regS:
		return mc.S
	case regPC:
		return mc.PC
	case regDP:
		return uint16(mc.DP)
	case regCC:
		return uint16(mc.CC)
	}
	return 0
}

func (mc *CPU) setReg(r register, val uint16) {
	switch r {
	case regA:
		mc.A = uint8(val)
	case regB:
		mc.B = uint8(val)
	case regD:
		mc.SetD(val)
	case regX:
		mc.X = val
	case regY:
		mc.Y = val
	case regU:
		mc.U = val
	case regS:
		mc.S = val
	case regPC:
		mc.PC = val
	case regDP:
		mc.DP = uint8(val)
	case regCC:
		mc.CC = uint8(val)
	}
}

// the 6809 stack pointers point at the last used location. push
// pre-decrements and pull post-increments. a pushed 16-bit value has its
// high byte at the lower address: big-endian, matching the rest of the
// address space.
func (mc *CPU) push8(stack register, val uint8) {
	sp := mc.reg(stack) - 1
	mc.mem.Write8(sp, val)
	mc.setReg(stack, sp)
}

func (mc *CPU) push16(stack register, val uint16) {
	sp := mc.reg(stack) - 1
	mc.mem.Write8(sp, uint8(val))
	sp--
	mc.mem.Write8(sp, uint8(val>>8))
	mc.setReg(stack, sp)
}

func (mc *CPU) pull8(stack register) uint8 {
	sp := mc.reg(stack)
	val := mc.mem.Read8(sp)
	mc.setReg(stack, sp+1)
	return val
}

func (mc *CPU) pull16(stack register) uint16 {
	sp := mc.reg(stack)
	val := uint16(mc.mem.Read8(sp)) << 8
	sp++
	val |= uint16(mc.mem.Read8(sp))
	mc.setReg(stack, sp+1)
	return val
}

func (mc *CPU) testBranchCond(cond int) bool {
	c := mc.flag(flagC)
	n := mc.flag(flagN)
	z := mc.flag(flagZ)
	v := mc.flag(flagV)

	switch cond {
	case condAlways:
		return true
	case condNever:
		return false
	case condHI:
		return !(c || z)
	case condLS:
		return c || z
	case condCC:
		return !c
	case condCS:
		return c
	case condNE:
		return !z
	case condEQ:
		return z
	case condVC:
		return !v
	case condVS:
		return v
	case condPL:
		return !n
	case condMI:
		return n
	case condGE:
		return n == v
	case condLT:
		return n != v
	case condGT:
		return !((n != v) || z)
	case condLE:
		return (n != v) || z
	}
	return false
}

// indexedAddress decodes the post-byte of the indexed addressing mode and
// returns the effective address. Pre-decrement and post-increment forms
// update the base register as a side effect.
func (mc *CPU) indexedAddress(startPC uint16) (uint16, error) {
	post := mc.mem.Read8(mc.PC)
	mc.PC++

	// the base register is selected by bits 6-5 of the post-byte
	var baseReg register
	switch (post >> 5) & 0x03 {
	case 0:
		baseReg = regX
	case 1:
		baseReg = regY
	case 2:
		baseReg = regU
	case 3:
		baseReg = regS
	}

	if post&0x80 == 0x00 {
		// 5-bit signed offset. this form is never indirect.
		off := uint16(post & 0x1f)
		if post&0x10 == 0x10 {
			off |= 0xffe0
		}
		return mc.reg(baseReg) + off, nil
	}

	indirect := post&0x10 == 0x10
	var addr uint16

	switch post & 0x0f {
	case 0x00: // ,R+
		addr = mc.reg(baseReg)
		mc.setReg(baseReg, addr+1)
		indirect = false
	case 0x01: // ,R++
		addr = mc.reg(baseReg)
		mc.setReg(baseReg, addr+2)
	case 0x02: // ,-R
		addr = mc.reg(baseReg) - 1
		mc.setReg(baseReg, addr)
		indirect = false
	case 0x03: // ,--R
		addr = mc.reg(baseReg) - 2
		mc.setReg(baseReg, addr)
	case 0x04: // ,R
		addr = mc.reg(baseReg)
	case 0x05: // B,R
		addr = mc.reg(baseReg) + uint16(int8(mc.B))
	case 0x06: // A,R
		addr = mc.reg(baseReg) + uint16(int8(mc.A))
	case 0x08: // n,R (8-bit offset)
		addr = mc.reg(baseReg) + uint16(int8(mc.mem.Read8(mc.PC)))
		mc.PC++
	case 0x09: // n,R (16-bit offset)
		addr = mc.reg(baseReg) + mc.mem.Read16(mc.PC, bus.Big)
		mc.PC += 2
	case 0x0b: // D,R
		addr = mc.reg(baseReg) + mc.D()
	case 0x0c: // n,PC (8-bit offset)
		off := uint16(int8(mc.mem.Read8(mc.PC)))
		mc.PC++
		addr = mc.PC + off
	case 0x0d: // n,PC (16-bit offset)
		off := mc.mem.Read16(mc.PC, bus.Big)
		mc.PC += 2
		addr = mc.PC + off
	case 0x0f: // [n] (16-bit absolute indirect)
		addr = mc.mem.Read16(mc.PC, bus.Big)
		mc.PC += 2
		indirect = true
	default:
		// submodes 0x7, 0xa and 0xe belong to the 6309
		return 0, curated.Errorf(BadIndexMode, post, startPC)
	}

	if indirect {
		addr = mc.mem.Read16(addr, bus.Big)
	}

	return addr, nil
}

// interRegRead resolves a source nibble of the tfr/exg post-byte. The 8-bit
// accumulators are sign extended so that a transfer into a 16-bit register
// carries the sign.
func (mc *CPU) interRegRead(nib uint8) uint16 {
	switch nib {
	case 0x0:
		return mc.D()
	case 0x1:
		return mc.X
	case 0x2:
		return mc.Y
	case 0x3:
		return mc.U
	case 0x4:
		return mc.S
	case 0x5:
		return mc.PC
	case 0x8:
		return uint16(int8(mc.A))
	case 0x9:
		return uint16(int8(mc.B))
	case 0xa:
		return uint16(mc.CC)
	case 0xb:
		return uint16(mc.DP)
	}
	return 0
}

// interRegWrite resolves a destination nibble of the tfr/exg post-byte.
func (mc *CPU) interRegWrite(nib uint8, val uint16) {
	switch nib {
	case 0x0:
		mc.SetD(val)
	case 0x1:
		mc.X = val
	case 0x2:
		mc.Y = val
	case 0x3:
		mc.U = val
	case 0x4:
		mc.S = val
	case 0x5:
		mc.PC = val
	case 0x8:
		mc.A = uint8(val)
	case 0x9:
		mc.B = uint8(val)
	case 0xa:
		mc.CC = uint8(val)
	case 0xb:
		mc.DP = uint8(val)
	}
}

func (mc *CPU) rmwRead(e *instruction, arg uint16) uint8 {
	if e.mode == modeImplied {
		return uint8(mc.reg(e.target))
	}
	return mc.mem.Read8(arg)
}

func (mc *CPU) rmwWrite(e *instruction, arg uint16, val uint8) {
	if e.mode == modeImplied {
		mc.setReg(e.target, uint16(val))
	} else {
		mc.mem.Write8(arg, val)
	}
}

// Step executes a single instruction. A pending reset is actioned before
// the instruction fetch.
func (mc *CPU) Step() error {
	if mc.pendingReset {
		mc.pendingReset = false
		mc.PC = mc.mem.Read16(resetVector, bus.Big)
	}

	startPC := mc.PC
	opcode := mc.mem.Read8(mc.PC)
	mc.PC++

	// the prefix bytes select the second and third pages of the table
	idx := int(opcode)
	switch opcode {
	case prefixPage2:
		opcode = mc.mem.Read8(mc.PC)
		mc.PC++
		idx = 0x100 + int(opcode)
	case prefixPage3:
		opcode = mc.mem.Read8(mc.PC)
		mc.PC++
		idx = 0x200 + int(opcode)
	}

	e := &ops[idx]
	if e.effect == opBad {
		return curated.Errorf(UnknownOpcode, opcode, startPC)
	}

	// addressing stage
	var arg uint16

	switch e.mode {
	case modeImplied:
		// no operand

	case modeImmediate:
		if e.width == 1 {
			arg = uint16(mc.mem.Read8(mc.PC))
			mc.PC++
		} else {
			arg = mc.mem.Read16(mc.PC, bus.Big)
			mc.PC += 2
		}

	case modeDirect:
		ea := uint16(mc.DP)<<8 | uint16(mc.mem.Read8(mc.PC))
		mc.PC++
		arg = mc.operand(e, ea)

	case modeExtended:
		ea := mc.mem.Read16(mc.PC, bus.Big)
		mc.PC += 2
		arg = mc.operand(e, ea)

	case modeIndexed:
		ea, err := mc.indexedAddress(startPC)
		if err != nil {
			return err
		}
		arg = mc.operand(e, ea)

	case modeBranch:
		if e.width == 1 {
			arg = uint16(int8(mc.mem.Read8(mc.PC)))
			mc.PC++
		} else {
			arg = mc.mem.Read16(mc.PC, bus.Big)
			mc.PC += 2
		}
	}

	// execution stage
	switch e.effect {
	case opNop:
		// no operation

	case opAdd, opAdc:
		a := uint32(mc.reg(e.target))
		b := uint32(arg)
		r := a + b
		if e.effect == opAdc && mc.flag(flagC) {
			r++
		}
		if e.width == 1 {
			mc.setFlag(flagH, alu.HalfCarry(a, b, r))
			mc.setNZ8(r)
			mc.setFlag(flagV, alu.Overflow8(a, b, r))
			mc.setFlag(flagC, alu.Carry8(r))
		} else {
			mc.setNZ16(r)
			mc.setFlag(flagV, alu.Overflow16(a, b, r))
			mc.setFlag(flagC, alu.Carry16(r))
		}
		mc.setReg(e.target, uint16(r))

	case opSub, opCmp:
		a := uint32(mc.reg(e.target))
		b := uint32(arg)
		r := a - b
		if e.width == 1 {
			mc.setFlag(flagH, alu.HalfCarry(a, b, r))
			mc.setNZ8(r)
			mc.setFlag(flagV, alu.Overflow8(a, b, r))
			mc.setFlag(flagC, alu.Carry8(r))
		} else {
			mc.setNZ16(r)
			mc.setFlag(flagV, alu.Overflow16(a, b, r))
			mc.setFlag(flagC, alu.Carry16(r))
		}
		if e.effect == opSub {
			mc.setReg(e.target, uint16(r))
		}

	case opAnd:
		r := uint32(mc.reg(e.target)) & uint32(arg)
		mc.setNZ8(r)
		mc.setFlag(flagV, false)
		// for andcc the assignment below replaces the flags wholesale,
		// which is the point of the instruction
		mc.setReg(e.target, uint16(r))

	case opBit:
		r := uint32(mc.reg(e.target)) & uint32(arg)
		mc.setNZ8(r)
		mc.setFlag(flagV, false)

	case opOr:
		r := uint32(mc.reg(e.target)) | uint32(arg)
		mc.setNZ8(r)
		mc.setFlag(flagV, false)
		mc.setReg(e.target, uint16(r))

	case opEor:
		r := uint32(mc.reg(e.target)) ^ uint32(arg)
		mc.setNZ8(r)
		mc.setFlag(flagV, false)
		mc.setReg(e.target, uint16(r))

	case opTst:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagV, false)
		mc.setNZ8(uint32(v))

	case opClr:
		mc.setFlag(flagV, false)
		mc.setFlag(flagC, false)
		mc.setNZ8(0)
		mc.rmwWrite(e, arg, 0)

	case opCom:
		v := ^mc.rmwRead(e, arg)
		mc.setFlag(flagV, false)
		mc.setFlag(flagC, true)
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opNeg:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagV, v == 0x80)
		mc.setFlag(flagC, v != 0x00)
		v = -v
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opAsl:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagV, (v>>6)&0x01 != (v>>7)&0x01)
		mc.setFlag(flagC, v&0x80 == 0x80)
		v <<= 1
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opAsr:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagC, v&0x01 == 0x01)
		v = (v & 0x80) | v>>1
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opLsr:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagC, v&0x01 == 0x01)
		v >>= 1
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opRol:
		v := mc.rmwRead(e, arg)
		oldc := mc.flag(flagC)
		mc.setFlag(flagV, (v>>6)&0x01 != (v>>7)&0x01)
		mc.setFlag(flagC, v&0x80 == 0x80)
		v <<= 1
		if oldc {
			v |= 0x01
		}
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opRor:
		v := mc.rmwRead(e, arg)
		oldc := mc.flag(flagC)
		mc.setFlag(flagC, v&0x01 == 0x01)
		v >>= 1
		if oldc {
			v |= 0x80
		}
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opDec:
		v := mc.rmwRead(e, arg) - 1
		mc.setFlag(flagV, v == 0x7f)
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opInc:
		v := mc.rmwRead(e, arg) + 1
		mc.setFlag(flagV, v == 0x80)
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opLea:
		mc.setReg(e.target, arg)
		// only leax and leay touch the zero flag
		if e.target == regX || e.target == regY {
			mc.setFlag(flagZ, arg == 0)
		}

	case opAbx:
		mc.X += uint16(mc.B)

	case opSex:
		if mc.B&0x80 == 0x80 {
			mc.A = 0xff
		} else {
			mc.A = 0x00
		}
		mc.setNZ16(uint32(mc.D()))
		mc.setFlag(flagV, false)

	case opMul:
		r := uint16(mc.A) * uint16(mc.B)
		mc.SetD(r)
		mc.setFlag(flagZ, r == 0)
		mc.setFlag(flagC, r&0x80 == 0x80)

	case opTfr:
		post := mc.mem.Read8(mc.PC)
		mc.PC++
		mc.interRegWrite(post&0x0f, mc.interRegRead(post>>4))

	case opExg:
		post := mc.mem.Read8(mc.PC)
		mc.PC++
		a := mc.interRegRead(post >> 4)
		b := mc.interRegRead(post & 0x0f)
		mc.interRegWrite(post&0x0f, a)
		mc.interRegWrite(post>>4, b)

	case opPush:
		// the mask is pushed in the order PC, U/S, Y, X, DP, B, A, CC
		if arg&0x80 == 0x80 {
			mc.push16(e.target, mc.PC)
		}
		if arg&0x40 == 0x40 {
			if e.target == regU {
				mc.push16(e.target, mc.S)
			} else {
				mc.push16(e.target, mc.U)
			}
		}
		if arg&0x20 == 0x20 {
			mc.push16(e.target, mc.Y)
		}
		if arg&0x10 == 0x10 {
			mc.push16(e.target, mc.X)
		}
		if arg&0x08 == 0x08 {
			mc.push8(e.target, mc.DP)
		}
		if arg&0x04 == 0x04 {
			mc.push8(e.target, mc.B)
		}
		if arg&0x02 == 0x02 {
			mc.push8(e.target, mc.A)
		}
		if arg&0x01 == 0x01 {
			mc.push8(e.target, mc.CC)
		}

	case opPull:
		// pull order is the reverse of push
		if arg&0x01 == 0x01 {
			mc.CC = mc.pull8(e.target)
		}
		if arg&0x02 == 0x02 {
			mc.A = mc.pull8(e.target)
		}
		if arg&0x04 == 0x04 {
			mc.B = mc.pull8(e.target)
		}
		if arg&0x08 == 0x08 {
			mc.DP = mc.pull8(e.target)
		}
		if arg&0x10 == 0x10 {
			mc.X = mc.pull16(e.target)
		}
		if arg&0x20 == 0x20 {
			mc.Y = mc.pull16(e.target)
		}
		if arg&0x40 == 0x40 {
			if e.target == regU {
				mc.S = mc.pull16(e.target)
			} else {
				mc.U = mc.pull16(e.target)
			}
		}
		if arg&0x80 == 0x80 {
			mc.PC = mc.pull16(e.target)
		}

	case opBra:
		if mc.testBranchCond(e.cond) {
			target := mc.PC + arg
			mc.PC = target
			if target == startPC {
				return curated.Errorf(ProgramTrap, startPC)
			}
		}

	case opBsr:
		mc.push16(regS, mc.PC)
		mc.PC += arg

	case opJmp:
		mc.PC = arg
		if arg == startPC {
			return curated.Errorf(ProgramTrap, startPC)
		}

	case opJsr:
		mc.push16(regS, mc.PC)
		mc.PC = arg

	case opRts:
		mc.PC = mc.pull16(regS)

	case opLd:
		if e.width == 1 {
			mc.setNZ8(uint32(arg))
		} else {
			mc.setNZ16(uint32(arg))
		}
		mc.setFlag(flagV, false)
		mc.setReg(e.target, arg)

	case opSt:
		if e.width == 1 {
			v := uint8(mc.reg(e.target))
			mc.mem.Write8(arg, v)
			mc.setNZ8(uint32(v))
		} else {
			v := mc.reg(e.target)
			mc.mem.Write16(arg, v, bus.Big)
			mc.setNZ16(uint32(v))
		}
		mc.setFlag(flagV, false)

	default:
		// a table entry with no matching case is a decode fault, not a nop
		return curated.Errorf(UnknownOpcode, opcode, startPC)
	}

	return nil
}

// operand resolves the effective address stage for the direct, extended and
// indexed modes. opcodes marked calcAddr receive the address itself.
func (mc *CPU) operand(e *instruction, ea uint16) uint16 {
	if e.calcAddr {
		return ea
	}
	if e.width == 1 {
		return uint16(mc.mem.Read8(ea))
	}
	return mc.mem.Read16(ea, bus.Big)
}
