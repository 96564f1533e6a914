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

// Package mc6800 emulates the Motorola MC6800. The CPU is implemented as a
// table driven interpreter: every opcode byte indexes the table in
// instructions.go and the Step() function executes the decoded entry.
//
// The emulation is at the instruction level. There is no concept of cycles
// or of the phases of instruction execution. Step() executes one whole
// instruction and returns.
package mc6800

import (
	"fmt"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/alu"
)

// the bits of the condition code register. the two undefined high bits read
// as set, which is visible through the tpa instruction.
const (
	flagC uint8 = 0x01
	flagV uint8 = 0x02
	flagZ uint8 = 0x04
	flagN uint8 = 0x08
	flagI uint8 = 0x10
	flagH uint8 = 0x20
)

// the reset vector is read big-endian on the first Step() after a reset.
const resetVector = 0xfffe

// Error patterns for the mc6800 package. ProgramTrap is returned when the
// program branches or jumps to its own address. With no interrupts to break
// the loop the instruction would execute forever, so the CPU treats it as
// the program's way of saying it has finished.
const (
	UnknownOpcode = "mc6800: unknown opcode %#02x at address %#04x"
	ProgramTrap   = "mc6800: program trapped at address %#04x"
)

// CPU is an instance of the MC6800. Registers are exported and can be
// inspected or poked between calls to Step().
type CPU struct {
	mem bus.Memory

	A  uint8
	B  uint8
	IX uint16
	SP uint16
	PC uint16
	CC uint8

	// set by Reset() and acted on by the next Step()
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
	mc.IX = 0
	mc.SP = 0
	mc.PC = 0
	mc.CC = 0
	mc.pendingReset = true
}

func (mc *CPU) String() string {
	return fmt.Sprintf("A %02x B %02x X %04x S %04x CC %02x (%c%c%c%c%c) PC %04x",
		mc.A, mc.B, mc.IX, mc.SP, mc.CC,
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

func (mc *CPU) setNZVC8(a uint32, b uint32, r uint32) {
	mc.setNZ8(r)
	mc.setFlag(flagV, alu.Overflow8(a, b, r))
	mc.setFlag(flagC, alu.Carry8(r))
}

// for the shift and rotate group the overflow flag is N xor C after the
// operation.
func (mc *CPU) setShiftV() {
	mc.setFlag(flagV, mc.flag(flagN) != mc.flag(flagC))
}

// access to registers by the table's register tag. registers narrower than
// the return type are zero extended.
func (mc *CPU) reg(r register) uint16 {
	switch r {
	case regA:
		return uint16(mc.A)
	case regB:
		return uint16(mc.B)
	case regIX:
		return mc.IX
	case regSP:
		return mc.SP
	case regPC:
		return mc.PC
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
	case regIX:
		mc.IX = val
	case regSP:
		mc.SP = val
	case regPC:
		mc.PC = val
	case regCC:
		mc.CC = uint8(val)
	}
}

// the stack pointer points at the next free location. push decrements after
// the write and pull increments before the read.
func (mc *CPU) push8(val uint8) {
	mc.mem.Write8(mc.SP, val)
	mc.SP--
}

func (mc *CPU) push16(val uint16) {
	mc.mem.Write8(mc.SP, uint8(val))
	mc.SP--
	mc.mem.Write8(mc.SP, uint8(val>>8))
	mc.SP--
}

func (mc *CPU) pull8() uint8 {
	mc.SP++
	return mc.mem.Read8(mc.SP)
}

func (mc *CPU) pull16() uint16 {
	mc.SP++
	val := uint16(mc.mem.Read8(mc.SP)) << 8
	mc.SP++
	val |= uint16(mc.mem.Read8(mc.SP))
	return val
}

// testBranchCond evaluates one of the sixteen branch conditions against the
// condition code register.
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

// source value for the read-modify-write group. arg is the effective
// address for the memory forms and is unused for the accumulator forms.
func (mc *CPU) rmwRead(e *instruction, arg uint16) uint8 {
	if e.mode == modeImplied {
		return uint8(mc.reg(e.target))
	}
	return mc.mem.Read8(arg)
}

// writeback for the read-modify-write group.
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

	e := &ops[opcode]
	if e.effect == opBad {
		return curated.Errorf(UnknownOpcode, opcode, startPC)
	}

	// addressing stage. arg is the operand value or, for opcodes marked
	// calcAddr, the effective address. for branches it is the sign extended
	// offset.
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
		ea := uint16(mc.mem.Read8(mc.PC))
		mc.PC++
		arg = mc.operand(e, ea)

	case modeExtended:
		ea := mc.mem.Read16(mc.PC, bus.Big)
		mc.PC += 2
		arg = mc.operand(e, ea)

	case modeIndexed:
		ea := mc.IX + uint16(mc.mem.Read8(mc.PC))
		mc.PC++
		arg = mc.operand(e, ea)

	case modeBranch:
		arg = uint16(int8(mc.mem.Read8(mc.PC)))
		mc.PC++
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
		mc.setFlag(flagH, alu.HalfCarry(a, b, r))
		mc.setNZVC8(a, b, r)
		mc.setReg(e.target, uint16(r))

	case opAddAccum: // aba
		a := uint32(mc.A)
		b := uint32(mc.B)
		r := a + b
		mc.setFlag(flagH, alu.HalfCarry(a, b, r))
		mc.setNZVC8(a, b, r)
		mc.A = uint8(r)

	case opSub, opSbc:
		a := uint32(mc.reg(e.target))
		b := uint32(arg)
		r := a - b
		if e.effect == opSbc && mc.flag(flagC) {
			r--
		}
		mc.setNZVC8(a, b, r)
		mc.setReg(e.target, uint16(r))

	case opSubAccum: // sba
		a := uint32(mc.A)
		b := uint32(mc.B)
		r := a - b
		mc.setNZVC8(a, b, r)
		mc.A = uint8(r)

	case opCmp:
		a := uint32(mc.reg(e.target))
		b := uint32(arg)
		r := a - b
		if e.width == 1 {
			mc.setNZVC8(a, b, r)
		} else {
			// cpx does not affect the carry flag
			mc.setNZ16(r)
			mc.setFlag(flagV, alu.Overflow16(a, b, r))
		}

	case opCmpAccum: // cba
		a := uint32(mc.A)
		b := uint32(mc.B)
		r := a - b
		mc.setNZVC8(a, b, r)

	case opAnd:
		r := uint32(mc.reg(e.target)) & uint32(arg)
		mc.setNZ8(r)
		mc.setFlag(flagV, false)
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

	case opAsl:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagC, v&0x80 == 0x80)
		v <<= 1
		mc.setNZ8(uint32(v))
		mc.setShiftV()
		mc.rmwWrite(e, arg, v)

	case opAsr:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagC, v&0x01 == 0x01)
		v = (v & 0x80) | v>>1
		mc.setNZ8(uint32(v))
		mc.setShiftV()
		mc.rmwWrite(e, arg, v)

	case opLsr:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagC, v&0x01 == 0x01)
		v >>= 1
		mc.setNZ8(uint32(v))
		mc.setShiftV()
		mc.rmwWrite(e, arg, v)

	case opRol:
		v := mc.rmwRead(e, arg)
		oldc := mc.flag(flagC)
		mc.setFlag(flagC, v&0x80 == 0x80)
		v <<= 1
		if oldc {
			v |= 0x01
		}
		mc.setNZ8(uint32(v))
		mc.setShiftV()
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
		mc.setShiftV()
		mc.rmwWrite(e, arg, v)

	case opDec:
		if e.width == 1 {
			v := mc.rmwRead(e, arg) - 1
			mc.setFlag(flagV, v == 0x7f)
			mc.setNZ8(uint32(v))
			mc.rmwWrite(e, arg, v)
		} else {
			// of the 16-bit decrements only dex updates a flag, and then
			// only Z
			v := mc.reg(e.target) - 1
			if e.target == regIX {
				mc.setFlag(flagZ, v == 0)
			}
			mc.setReg(e.target, v)
		}

	case opInc:
		if e.width == 1 {
			v := mc.rmwRead(e, arg) + 1
			mc.setFlag(flagV, v == 0x80)
			mc.setNZ8(uint32(v))
			mc.rmwWrite(e, arg, v)
		} else {
			v := mc.reg(e.target) + 1
			if e.target == regIX {
				mc.setFlag(flagZ, v == 0)
			}
			mc.setReg(e.target, v)
		}

	case opClr:
		mc.setFlag(flagN, false)
		mc.setFlag(flagV, false)
		mc.setFlag(flagC, false)
		mc.setFlag(flagZ, true)
		mc.rmwWrite(e, arg, 0)

	case opCom:
		v := ^mc.rmwRead(e, arg)
		mc.setNZ8(uint32(v))
		mc.setFlag(flagV, false)
		mc.setFlag(flagC, true)
		mc.rmwWrite(e, arg, v)

	case opNeg:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagV, v == 0x80)
		mc.setFlag(flagC, v != 0x00)
		v = -v
		mc.setNZ8(uint32(v))
		mc.rmwWrite(e, arg, v)

	case opTst:
		v := mc.rmwRead(e, arg)
		mc.setFlag(flagV, false)
		mc.setFlag(flagC, false)
		mc.setNZ8(uint32(v))

	case opTfr:
		if e.width == 1 { // tab, tba
			var v uint8
			if e.target == regA {
				v = mc.B
			} else {
				v = mc.A
			}
			mc.setReg(e.target, uint16(v))
			mc.setNZ8(uint32(v))
			mc.setFlag(flagV, false)
		} else { // tsx, txs
			if e.target == regSP {
				mc.SP = mc.IX - 1
			} else {
				mc.IX = mc.SP + 1
			}
		}

	case opTfrCC: // tap, tpa
		if e.target == regA {
			// the two undefined bits of CC read as set
			mc.A = mc.CC | 0xc0
		} else {
			mc.CC = mc.A & 0x3f
		}

	case opSetCC:
		mc.CC |= e.flag

	case opClearCC:
		mc.CC &^= e.flag

	case opPush:
		mc.push8(uint8(mc.reg(e.target)))

	case opPull:
		mc.setReg(e.target, uint16(mc.pull8()))

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

	case opBra:
		if mc.testBranchCond(e.cond) {
			target := mc.PC + arg
			mc.PC = target
			if target == startPC {
				return curated.Errorf(ProgramTrap, startPC)
			}
		}

	case opBsr:
		mc.push16(mc.PC)
		mc.PC += arg

	case opJmp:
		mc.PC = arg
		if arg == startPC {
			return curated.Errorf(ProgramTrap, startPC)
		}

	case opJsr:
		mc.push16(mc.PC)
		mc.PC = arg

	case opRts:
		mc.PC = mc.pull16()

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
