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

// Package z80 emulates the Zilog Z80. In addition to the memory bus the
// Z80 has a separate IO space, addressed with the in and out instructions,
// and a maskable interrupt line that devices on the IO bus can raise.
//
// The DD and FD prefix bytes redirect the following instruction's (HL)
// operand to an indexed form of the IX or IY register. Only the
// instructions that consume the prefix are valid behind it. A prefix in
// front of any other instruction is a decode fault.
package z80

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/alu"
)

// the bits of the F register.
const (
	flagC  uint8 = 0x01
	flagN  uint8 = 0x02
	flagPV uint8 = 0x04
	flagH  uint8 = 0x10
	flagZ  uint8 = 0x40
	flagS  uint8 = 0x80
)

// interrupts vector through a rst 0x38 in interrupt mode one, the only
// mode the emulation implements.
const irqVector = 0x0038

// Error patterns for the z80 package.
const (
	UnknownOpcode    = "z80: unknown opcode %#02x at address %#04x"
	UnconsumedPrefix = "z80: index prefix not consumed by opcode %#02x at address %#04x"
	ProgramTrap      = "z80: program trapped at address %#04x"
	Halt             = "z80: halt at address %#04x"
)

// CPU is an instance of the Z80.
type CPU struct {
	mem bus.Memory
	io  bus.IO

	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	IX uint16
	IY uint16
	SP uint16
	PC uint16

	// the alternate register set, reachable with ex af,af' and exx
	altA, altF uint8
	altB, altC uint8
	altD, altE uint8
	altH, altL uint8

	// interrupt enable flip-flop
	IFF bool

	// level of the maskable interrupt line. accessed atomically because
	// devices raise it from outside the emulation goroutine.
	irq int32

	// level of the non-maskable interrupt line. none of the supported
	// machines wires a device to it so the level is tracked but never
	// dispatched.
	nmi int32
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// Z80 has no reset vector: execution begins at address zero.
func NewCPU(mem bus.Memory, io bus.IO) *CPU {
	mc := &CPU{mem: mem, io: io}
	mc.Reset()
	return mc
}

// AttachIO connects the IO bus after construction. An IO device that raises
// the CPU's interrupt line needs the CPU to exist before it can be built, so
// for those machines the io argument to NewCPU is nil and the bus is
// attached once the device exists.
func (mc *CPU) AttachIO(io bus.IO) {
	mc.io = io
}

// Reset puts the CPU into the reset state.
func (mc *CPU) Reset() {
	mc.A = 0
	mc.F = 0
	mc.B = 0
	mc.C = 0
	mc.D = 0
	mc.E = 0
	mc.H = 0
	mc.L = 0
	mc.IX = 0
	mc.IY = 0
	mc.SP = 0
	mc.PC = 0
	mc.IFF = false
}

// RaiseIRQ implements the bus.InterruptLine interface. The interrupt is
// serviced before the next instruction fetch if interrupts are enabled.
func (mc *CPU) RaiseIRQ() {
	atomic.StoreInt32(&mc.irq, 1)
}

// LowerIRQ implements the bus.InterruptLine interface.
func (mc *CPU) LowerIRQ() {
	atomic.StoreInt32(&mc.irq, 0)
}

// RaiseNMI records the level of the non-maskable interrupt line. The line is
// tracked but not dispatched.
func (mc *CPU) RaiseNMI() {
	atomic.StoreInt32(&mc.nmi, 1)
}

// LowerNMI records the level of the non-maskable interrupt line.
func (mc *CPU) LowerNMI() {
	atomic.StoreInt32(&mc.nmi, 0)
}

func (mc *CPU) String() string {
	return fmt.Sprintf("f %02x (%c%c%c%c%c%c) a %02x bc %04x de %04x hl %04x ix %04x iy %04x sp %04x pc %04x",
		mc.F,
		flagRune(mc.F, flagC, 'c'), flagRune(mc.F, flagN, 'n'),
		flagRune(mc.F, flagPV, 'p'), flagRune(mc.F, flagH, 'h'),
		flagRune(mc.F, flagZ, 'z'), flagRune(mc.F, flagS, 's'),
		mc.A, mc.BC(), mc.DE(), mc.HL(), mc.IX, mc.IY, mc.SP, mc.PC)
}

func flagRune(f uint8, flag uint8, r rune) rune {
	if f&flag == flag {
		return r
	}
	return ' '
}

// BC returns the B and C registers as a pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B)<<8 | uint16(mc.C)
}

// DE returns the D and E registers as a pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D)<<8 | uint16(mc.E)
}

// HL returns the H and L registers as a pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H)<<8 | uint16(mc.L)
}

// AF returns the A and F registers as a pair.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.F)
}

// SetBC writes the B and C registers as a pair.
func (mc *CPU) SetBC(val uint16) {
	mc.B = uint8(val >> 8)
	mc.C = uint8(val)
}

// SetDE writes the D and E registers as a pair.
func (mc *CPU) SetDE(val uint16) {
	mc.D = uint8(val >> 8)
	mc.E = uint8(val)
}

// SetHL writes the H and L registers as a pair.
func (mc *CPU) SetHL(val uint16) {
	mc.H = uint8(val >> 8)
	mc.L = uint8(val)
}

// SetAF writes the A and F registers as a pair.
func (mc *CPU) SetAF(val uint16) {
	mc.A = uint8(val >> 8)
	mc.F = uint8(val)
}

func (mc *CPU) flag(flag uint8) bool {
	return mc.F&flag == flag
}

func (mc *CPU) setFlag(flag uint8, on bool) {
	if on {
		mc.F |= flag
	} else {
		mc.F &^= flag
	}
}

func (mc *CPU) setSZ(val uint8) {
	mc.setFlag(flagS, val&0x80 == 0x80)
	mc.setFlag(flagZ, val == 0)
}

// the register encoding of bits 2-0 and 5-3. encoding six is the hole
// where (HL) lives.
func (mc *CPU) readR(r int) uint8 {
	switch r {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case 6:
		return mc.mem.Read8(mc.HL())
	}
	return mc.A
}

func (mc *CPU) writeR(r int, val uint8) {
	switch r {
	case 0:
		mc.B = val
	case 1:
		mc.C = val
	case 2:
		mc.D = val
	case 3:
		mc.E = val
	case 4:
		mc.H = val
	case 5:
		mc.L = val
	case 6:
		mc.mem.Write8(mc.HL(), val)
	default:
		mc.A = val
	}
}

// the dd register pair encoding of bits 5-4: BC, DE, HL, SP.
func (mc *CPU) readDD(dd int) uint16 {
	switch dd {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	}
	return mc.SP
}

func (mc *CPU) writeDD(dd int, val uint16) {
	switch dd {
	case 0:
		mc.SetBC(val)
	case 1:
		mc.SetDE(val)
	case 2:
		mc.SetHL(val)
	default:
		mc.SP = val
	}
}

// the qq register pair encoding used by push and pop: BC, DE, HL, AF.
func (mc *CPU) readQQ(qq int) uint16 {
	if qq == 3 {
		return mc.AF()
	}
	return mc.readDD(qq)
}

func (mc *CPU) writeQQ(qq int, val uint16) {
	if qq == 3 {
		mc.SetAF(val)
		return
	}
	mc.writeDD(qq, val)
}

// the Z80 stack grows downwards with the low byte of a 16-bit value at the
// lower address, matching the little-endian data bus.
func (mc *CPU) push16(val uint16) {
	mc.SP--
	mc.mem.Write8(mc.SP, uint8(val>>8))
	mc.SP--
	mc.mem.Write8(mc.SP, uint8(val))
}

func (mc *CPU) pop16() uint16 {
	val := uint16(mc.mem.Read8(mc.SP))
	mc.SP++
	val |= uint16(mc.mem.Read8(mc.SP)) << 8
	mc.SP++
	return val
}

func (mc *CPU) fetch() uint8 {
	op := mc.mem.Read8(mc.PC)
	mc.PC++
	return op
}

func (mc *CPU) fetch16() uint16 {
	val := mc.mem.Read16(mc.PC, bus.Little)
	mc.PC += 2
	return val
}

// testCond decodes the three-bit condition field: NZ, Z, NC, C, PO, PE,
// P, M.
func (mc *CPU) testCond(cond int) bool {
	switch cond {
	case 0:
		return !mc.flag(flagZ)
	case 1:
		return mc.flag(flagZ)
	case 2:
		return !mc.flag(flagC)
	case 3:
		return mc.flag(flagC)
	case 4:
		return !mc.flag(flagPV)
	case 5:
		return mc.flag(flagPV)
	case 6:
		return !mc.flag(flagS)
	}
	return mc.flag(flagS)
}

// alu8 performs the operation encoded in bits 5-3 of the arithmetic
// opcodes: add, adc, sub, sbc, and, xor, or, cp.
func (mc *CPU) alu8(op int, val uint8) {
	a := uint32(mc.A)
	b := uint32(val)

	switch op {
	case 0, 1: // add, adc
		r := a + b
		if op == 1 && mc.flag(flagC) {
			r++
		}
		mc.setFlag(flagC, alu.Carry8(r))
		mc.setFlag(flagN, false)
		mc.setFlag(flagPV, alu.Overflow8(a, b, r))
		mc.setFlag(flagH, alu.HalfCarry(a, b, r))
		mc.setSZ(uint8(r))
		mc.A = uint8(r)

	case 2, 3, 7: // sub, sbc, cp
		r := a - b
		if op == 3 && mc.flag(flagC) {
			r--
		}
		mc.setFlag(flagC, alu.Carry8(r))
		mc.setFlag(flagN, true)
		mc.setFlag(flagPV, alu.Overflow8(a, b, r))
		mc.setFlag(flagH, alu.HalfCarry(a, b, r))
		mc.setSZ(uint8(r))
		if op != 7 {
			mc.A = uint8(r)
		}

	case 4: // and
		mc.A &= val
		mc.logicFlags(true)

	case 5: // xor
		mc.A ^= val
		mc.logicFlags(false)

	case 6: // or
		mc.A |= val
		mc.logicFlags(false)
	}
}

// logicFlags is the flag treatment shared by the bitwise operations. only
// and sets the half-carry.
func (mc *CPU) logicFlags(h bool) {
	mc.setFlag(flagC, false)
	mc.setFlag(flagN, false)
	mc.setFlag(flagPV, alu.Parity(uint32(mc.A)))
	mc.setFlag(flagH, h)
	mc.setSZ(mc.A)
}

// indexAddr reads the displacement byte and forms the indexed address from
// IX or IY.
func (mc *CPU) indexAddr(ix bool) uint16 {
	d := uint16(int8(mc.fetch()))
	if ix {
		return mc.IX + d
	}
	return mc.IY + d
}

// Step executes a single instruction. A raised interrupt is serviced
// before the fetch when interrupts are enabled.
func (mc *CPU) Step() error {
	if atomic.LoadInt32(&mc.irq) != 0 && mc.IFF {
		mc.IFF = false
		mc.push16(mc.PC)
		mc.PC = irqVector
		return nil
	}

	startPC := mc.PC

	// the index prefixes are sticky until an instruction consumes one.
	// when more than one appears in a row the last one wins.
	var prefixIX, prefixIY, consumed bool

	op := mc.fetch()
	for op == 0xdd || op == 0xfd {
		prefixIX = op == 0xdd
		prefixIY = op == 0xfd
		op = mc.fetch()
	}
	prefixed := prefixIX || prefixIY

	idx := int(op)
	switch op {
	case 0xed:
		op = mc.fetch()
		idx = pageED | int(op)
	case 0xcb:
		op = mc.fetch()
		idx = pageCB | int(op)
	}

	e := &ops[idx]
	if e.effect == opBad {
		return curated.Errorf(UnknownOpcode, op, startPC)
	}

	switch e.effect {
	case opNop:
		// no operation

	case opHalt:
		return curated.Errorf(Halt, startPC)

	case opLdRR:
		dst := int(op>>3) & 0x07
		src := int(op) & 0x07
		switch {
		case prefixed && src == 6:
			mc.writeR(dst, mc.mem.Read8(mc.indexAddr(prefixIX)))
			consumed = true
		case prefixed && dst == 6:
			mc.mem.Write8(mc.indexAddr(prefixIX), mc.readR(src))
			consumed = true
		default:
			mc.writeR(dst, mc.readR(src))
		}

	case opLdRN:
		r := int(op>>3) & 0x07
		if prefixed && r == 6 {
			// the displacement precedes the immediate
			addr := mc.indexAddr(prefixIX)
			mc.mem.Write8(addr, mc.fetch())
			consumed = true
		} else {
			mc.writeR(r, mc.fetch())
		}

	case opLdANN:
		mc.A = mc.mem.Read8(mc.fetch16())

	case opLdNNA:
		mc.mem.Write8(mc.fetch16(), mc.A)

	case opLdABC:
		mc.A = mc.mem.Read8(mc.BC())

	case opLdADE:
		mc.A = mc.mem.Read8(mc.DE())

	case opLdBCA:
		mc.mem.Write8(mc.BC(), mc.A)

	case opLdDEA:
		mc.mem.Write8(mc.DE(), mc.A)

	case opLdDDNN:
		nn := mc.fetch16()
		switch {
		case prefixIX && op == 0x21:
			mc.IX = nn
			consumed = true
		case prefixIY && op == 0x21:
			mc.IY = nn
			consumed = true
		default:
			mc.writeDD(int(op>>4)&0x03, nn)
		}

	case opLdSPHL:
		mc.SP = mc.HL()

	case opLdNNHL:
		mc.mem.Write16(mc.fetch16(), mc.HL(), bus.Little)

	case opLdHLNN:
		mc.SetHL(mc.mem.Read16(mc.fetch16(), bus.Little))

	case opPush:
		mc.push16(mc.readQQ(int(op>>4) & 0x03))

	case opPop:
		mc.writeQQ(int(op>>4)&0x03, mc.pop16())

	case opExSPHL:
		hl := mc.HL()
		mc.SetHL(mc.pop16())
		mc.push16(hl)

	case opExDEHL:
		de := mc.DE()
		mc.SetDE(mc.HL())
		mc.SetHL(de)

	case opExAF:
		mc.A, mc.altA = mc.altA, mc.A
		mc.F, mc.altF = mc.altF, mc.F

	case opExx:
		mc.B, mc.altB = mc.altB, mc.B
		mc.C, mc.altC = mc.altC, mc.C
		mc.D, mc.altD = mc.altD, mc.D
		mc.E, mc.altE = mc.altE, mc.E
		mc.H, mc.altH = mc.altH, mc.H
		mc.L, mc.altL = mc.altL, mc.L

	case opAddHL:
		hl := uint32(mc.HL())
		ss := uint32(mc.readDD(int(op>>4) & 0x03))
		r := hl + ss
		mc.setFlag(flagC, alu.Carry16(r))
		mc.setFlag(flagH, (hl&0xfff)+(ss&0xfff) > 0xfff)
		mc.setFlag(flagN, false)
		mc.SetHL(uint16(r))

	case opIncSS:
		dd := int(op>>4) & 0x03
		mc.writeDD(dd, mc.readDD(dd)+1)

	case opDecSS:
		dd := int(op>>4) & 0x03
		mc.writeDD(dd, mc.readDD(dd)-1)

	case opIncR:
		r := int(op>>3) & 0x07
		old := mc.readR(r)
		v := old + 1
		mc.writeR(r, v)
		mc.setFlag(flagPV, old == 0x7f)
		mc.setFlag(flagN, false)
		mc.setFlag(flagH, alu.HalfCarry(uint32(old), 1, uint32(v)))
		mc.setSZ(v)

	case opDecR:
		r := int(op>>3) & 0x07
		old := mc.readR(r)
		v := old - 1
		mc.writeR(r, v)
		mc.setFlag(flagPV, old == 0x80)
		mc.setFlag(flagN, true)
		mc.setFlag(flagH, alu.HalfCarry(uint32(old), 1, uint32(v)))
		mc.setSZ(v)

	case opAluR:
		mc.alu8(int(op>>3)&0x07, mc.readR(int(op)&0x07))

	case opAluN:
		mc.alu8(int(op>>3)&0x07, mc.fetch())

	case opRlca:
		c := mc.A >> 7
		mc.A = mc.A<<1 | c
		mc.setFlag(flagC, c == 1)
		mc.setFlag(flagH, false)
		mc.setFlag(flagN, false)

	case opRrca:
		c := mc.A & 0x01
		mc.A = mc.A>>1 | c<<7
		mc.setFlag(flagC, c == 1)
		mc.setFlag(flagH, false)
		mc.setFlag(flagN, false)

	case opRla:
		c := mc.A >> 7
		mc.A <<= 1
		if mc.flag(flagC) {
			mc.A |= 0x01
		}
		mc.setFlag(flagC, c == 1)
		mc.setFlag(flagH, false)
		mc.setFlag(flagN, false)

	case opRra:
		c := mc.A & 0x01
		mc.A >>= 1
		if mc.flag(flagC) {
			mc.A |= 0x80
		}
		mc.setFlag(flagC, c == 1)
		mc.setFlag(flagH, false)
		mc.setFlag(flagN, false)

	case opCpl:
		mc.A = ^mc.A
		mc.setFlag(flagH, true)
		mc.setFlag(flagN, true)

	case opCcf:
		mc.setFlag(flagH, mc.flag(flagC))
		mc.setFlag(flagC, !mc.flag(flagC))
		mc.setFlag(flagN, false)

	case opScf:
		mc.setFlag(flagC, true)
		mc.setFlag(flagH, false)
		mc.setFlag(flagN, false)

	case opJp:
		target := mc.fetch16()
		mc.PC = target
		if target == startPC && !mc.IFF {
			return curated.Errorf(ProgramTrap, startPC)
		}

	case opJpCC:
		target := mc.fetch16()
		if mc.testCond(int(op>>3) & 0x07) {
			mc.PC = target
		}

	case opJpHL:
		mc.PC = mc.HL()

	case opJr:
		rel := uint16(int8(mc.fetch()))
		target := mc.PC + rel
		mc.PC = target
		if target == startPC && !mc.IFF {
			return curated.Errorf(ProgramTrap, startPC)
		}

	case opJrCC:
		rel := uint16(int8(mc.fetch()))
		if mc.testCond(int(op>>3)&0x07 - 4) {
			mc.PC += rel
		}

	case opDjnz:
		rel := uint16(int8(mc.fetch()))
		mc.B--
		if mc.B != 0 {
			mc.PC += rel
		}

	case opCall:
		target := mc.fetch16()
		mc.push16(mc.PC)
		mc.PC = target

	case opCallCC:
		target := mc.fetch16()
		if mc.testCond(int(op>>3) & 0x07) {
			mc.push16(mc.PC)
			mc.PC = target
		}

	case opRet:
		mc.PC = mc.pop16()

	case opRetCC:
		if mc.testCond(int(op>>3) & 0x07) {
			mc.PC = mc.pop16()
		}

	case opRst:
		mc.push16(mc.PC)
		mc.PC = uint16(op) & 0x38

	case opDi:
		mc.IFF = false

	case opEi:
		mc.IFF = true

	case opOutNA:
		mc.io.IOWrite8(mc.fetch(), mc.A)

	case opInAN:
		mc.A = mc.io.IORead8(mc.fetch())

	case opOutCR:
		r := int(op>>3) & 0x07
		var v uint8
		if r != 6 {
			v = mc.readR(r)
		}
		mc.io.IOWrite8(mc.C, v)

	case opLdir:
		// one transfer per step. the instruction repeats itself until BC
		// reaches zero.
		mc.mem.Write8(mc.DE(), mc.mem.Read8(mc.HL()))
		mc.SetHL(mc.HL() + 1)
		mc.SetDE(mc.DE() + 1)
		mc.SetBC(mc.BC() - 1)
		if mc.BC() != 0 {
			mc.PC -= 2
		}
		mc.setFlag(flagH, false)
		mc.setFlag(flagPV, mc.BC() != 0)
		mc.setFlag(flagN, false)

	case opLdNNDD:
		mc.mem.Write16(mc.fetch16(), mc.readDD(int(op>>4)&0x03), bus.Little)

	case opLdDDPtr:
		mc.writeDD(int(op>>4)&0x03, mc.mem.Read16(mc.fetch16(), bus.Little))

	case opIm:
		// only interrupt mode one is emulated. the im instructions are
		// accepted and ignored.

	case opReti:
		mc.PC = mc.pop16()

	case opBit:
		bit := (op >> 3) & 0x07
		v := mc.readR(int(op) & 0x07)
		mc.setFlag(flagZ, v&(1<<bit) == 0)
		mc.setFlag(flagH, true)
		mc.setFlag(flagN, false)

	case opRes:
		r := int(op) & 0x07
		bit := (op >> 3) & 0x07
		mc.writeR(r, mc.readR(r)&^(1<<bit))

	case opSet:
		r := int(op) & 0x07
		bit := (op >> 3) & 0x07
		mc.writeR(r, mc.readR(r)|1<<bit)

	default:
		// a table entry with no matching case is a decode fault, not a nop
		return curated.Errorf(UnknownOpcode, op, startPC)
	}

	if prefixed && !consumed {
		return curated.Errorf(UnconsumedPrefix, op, startPC)
	}

	return nil
}
