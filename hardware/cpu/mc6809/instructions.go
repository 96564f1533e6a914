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

package mc6809

// addressing modes of the MC6809.
type addressing int

const (
	modeImplied addressing = iota
	modeImmediate
	modeDirect
	modeExtended
	modeIndexed
	modeBranch
)

// operation classes.
type operation int

const (
	opBad operation = iota
	opAdd
	opAdc
	opSub
	opCmp
	opAnd
	opBit
	opEor
	opOr
	opAbx
	opClr
	opCom
	opNeg
	opDec
	opInc
	opTst
	opLea
	opAsl
	opAsr
	opLsr
	opRol
	opRor
	opTfr
	opExg
	opPush
	opPull
	opBra
	opBsr
	opJmp
	opJsr
	opRts
	opLd
	opSt
	opNop
	opSex
	opMul
)

// register tags used by the opcode table. regD is the concatenation of A
// and B and exists only as a view of those two registers.
type register int

const (
	regA register = iota
	regB
	regD
	regX
	regY
	regU
	regS
	regPC
	regDP
	regCC
)

// branch conditions, encoded in the low nibble of the branch opcodes.
const (
	condAlways = 0x0
	condNever  = 0x1
	condHI     = 0x2
	condLS     = 0x3
	condCC     = 0x4
	condCS     = 0x5
	condNE     = 0x6
	condEQ     = 0x7
	condVC     = 0x8
	condVS     = 0x9
	condPL     = 0xa
	condMI     = 0xb
	condGE     = 0xc
	condLT     = 0xd
	condGT     = 0xe
	condLE     = 0xf
)

// instruction is one entry in the opcode table.
type instruction struct {
	mnemonic string
	mode     addressing
	width    int
	effect   operation
	target   register
	cond     int
	calcAddr bool
}

// the page prefix bytes select the second and third pages of the opcode
// table.
const (
	prefixPage2 = 0x10
	prefixPage3 = 0x11
)

// the opcode table. page 2 opcodes (prefix 0x10) live at 0x100 to 0x1ff and
// page 3 opcodes (prefix 0x11) at 0x200 to 0x2ff. missing entries decode to
// opBad.
var ops = [256 * 3]instruction{
	// arithmetic
	0x8b: {mnemonic: "adda", mode: modeImmediate, width: 1, effect: opAdd, target: regA},
	0xcb: {mnemonic: "addb", mode: modeImmediate, width: 1, effect: opAdd, target: regB},
	0xc3: {mnemonic: "addd", mode: modeImmediate, width: 2, effect: opAdd, target: regD},
	0x9b: {mnemonic: "adda", mode: modeDirect, width: 1, effect: opAdd, target: regA},
	0xdb: {mnemonic: "addb", mode: modeDirect, width: 1, effect: opAdd, target: regB},
	0xd3: {mnemonic: "addd", mode: modeDirect, width: 2, effect: opAdd, target: regD},
	0xab: {mnemonic: "adda", mode: modeIndexed, width: 1, effect: opAdd, target: regA},
	0xeb: {mnemonic: "addb", mode: modeIndexed, width: 1, effect: opAdd, target: regB},
	0xe3: {mnemonic: "addd", mode: modeIndexed, width: 2, effect: opAdd, target: regD},
	0xbb: {mnemonic: "adda", mode: modeExtended, width: 1, effect: opAdd, target: regA},
	0xfb: {mnemonic: "addb", mode: modeExtended, width: 1, effect: opAdd, target: regB},
	0xf3: {mnemonic: "addd", mode: modeExtended, width: 2, effect: opAdd, target: regD},

	0x89: {mnemonic: "adca", mode: modeImmediate, width: 1, effect: opAdc, target: regA},
	0xc9: {mnemonic: "adcb", mode: modeImmediate, width: 1, effect: opAdc, target: regB},
	0x99: {mnemonic: "adca", mode: modeDirect, width: 1, effect: opAdc, target: regA},
	0xd9: {mnemonic: "adcb", mode: modeDirect, width: 1, effect: opAdc, target: regB},
	0xa9: {mnemonic: "adca", mode: modeIndexed, width: 1, effect: opAdc, target: regA},
	0xe9: {mnemonic: "adcb", mode: modeIndexed, width: 1, effect: opAdc, target: regB},
	0xb9: {mnemonic: "adca", mode: modeExtended, width: 1, effect: opAdc, target: regA},
	0xf9: {mnemonic: "adcb", mode: modeExtended, width: 1, effect: opAdc, target: regB},

	0x80: {mnemonic: "suba", mode: modeImmediate, width: 1, effect: opSub, target: regA},
	0xc0: {mnemonic: "subb", mode: modeImmediate, width: 1, effect: opSub, target: regB},
	0x83: {mnemonic: "subd", mode: modeImmediate, width: 2, effect: opSub, target: regD},
	0x90: {mnemonic: "suba", mode: modeDirect, width: 1, effect: opSub, target: regA},
	0xd0: {mnemonic: "subb", mode: modeDirect, width: 1, effect: opSub, target: regB},
	0x93: {mnemonic: "subd", mode: modeDirect, width: 2, effect: opSub, target: regD},
	0xa0: {mnemonic: "suba", mode: modeIndexed, width: 1, effect: opSub, target: regA},
	0xe0: {mnemonic: "subb", mode: modeIndexed, width: 1, effect: opSub, target: regB},
	0xa3: {mnemonic: "subd", mode: modeIndexed, width: 2, effect: opSub, target: regD},
	0xb0: {mnemonic: "suba", mode: modeExtended, width: 1, effect: opSub, target: regA},
	0xf0: {mnemonic: "subb", mode: modeExtended, width: 1, effect: opSub, target: regB},
	0xb3: {mnemonic: "subd", mode: modeExtended, width: 2, effect: opSub, target: regD},

	0x81:  {mnemonic: "cmpa", mode: modeImmediate, width: 1, effect: opCmp, target: regA},
	0xc1:  {mnemonic: "cmpb", mode: modeImmediate, width: 1, effect: opCmp, target: regB},
	0x183: {mnemonic: "cmpd", mode: modeImmediate, width: 2, effect: opCmp, target: regD},
	0x28c: {mnemonic: "cmps", mode: modeImmediate, width: 2, effect: opCmp, target: regS},
	0x283: {mnemonic: "cmpu", mode: modeImmediate, width: 2, effect: opCmp, target: regU},
	0x8c:  {mnemonic: "cmpx", mode: modeImmediate, width: 2, effect: opCmp, target: regX},
	0x18c: {mnemonic: "cmpy", mode: modeImmediate, width: 2, effect: opCmp, target: regY},

	0x91:  {mnemonic: "cmpa", mode: modeDirect, width: 1, effect: opCmp, target: regA},
	0xd1:  {mnemonic: "cmpb", mode: modeDirect, width: 1, effect: opCmp, target: regB},
	0x193: {mnemonic: "cmpd", mode: modeDirect, width: 2, effect: opCmp, target: regD},
	0x29c: {mnemonic: "cmps", mode: modeDirect, width: 2, effect: opCmp, target: regS},
	0x293: {mnemonic: "cmpu", mode: modeDirect, width: 2, effect: opCmp, target: regU},
	0x9c:  {mnemonic: "cmpx", mode: modeDirect, width: 2, effect: opCmp, target: regX},
	0x19c: {mnemonic: "cmpy", mode: modeDirect, width: 2, effect: opCmp, target: regY},

	0xa1:  {mnemonic: "cmpa", mode: modeIndexed, width: 1, effect: opCmp, target: regA},
	0xe1:  {mnemonic: "cmpb", mode: modeIndexed, width: 1, effect: opCmp, target: regB},
	0x1a3: {mnemonic: "cmpd", mode: modeIndexed, width: 2, effect: opCmp, target: regD},
	0x2ac: {mnemonic: "cmps", mode: modeIndexed, width: 2, effect: opCmp, target: regS},
	0x2a3: {mnemonic: "cmpu", mode: modeIndexed, width: 2, effect: opCmp, target: regU},
	0xac:  {mnemonic: "cmpx", mode: modeIndexed, width: 2, effect: opCmp, target: regX},
	0x1ac: {mnemonic: "cmpy", mode: modeIndexed, width: 2, effect: opCmp, target: regY},

	0xb1:  {mnemonic: "cmpa", mode: modeExtended, width: 1, effect: opCmp, target: regA},
	0xf1:  {mnemonic: "cmpb", mode: modeExtended, width: 1, effect: opCmp, target: regB},
	0x1b3: {mnemonic: "cmpd", mode: modeExtended, width: 2, effect: opCmp, target: regD},
	0x2bc: {mnemonic: "cmps", mode: modeExtended, width: 2, effect: opCmp, target: regS},
	0x2b3: {mnemonic: "cmpu", mode: modeExtended, width: 2, effect: opCmp, target: regU},
	0xbc:  {mnemonic: "cmpx", mode: modeExtended, width: 2, effect: opCmp, target: regX},
	0x1bc: {mnemonic: "cmpy", mode: modeExtended, width: 2, effect: opCmp, target: regY},

	// logical
	0x84: {mnemonic: "anda", mode: modeImmediate, width: 1, effect: opAnd, target: regA},
	0xc4: {mnemonic: "andb", mode: modeImmediate, width: 1, effect: opAnd, target: regB},
	0x1c: {mnemonic: "andcc", mode: modeImmediate, width: 1, effect: opAnd, target: regCC},
	0x94: {mnemonic: "anda", mode: modeDirect, width: 1, effect: opAnd, target: regA},
	0xd4: {mnemonic: "andb", mode: modeDirect, width: 1, effect: opAnd, target: regB},
	0xa4: {mnemonic: "anda", mode: modeIndexed, width: 1, effect: opAnd, target: regA},
	0xe4: {mnemonic: "andb", mode: modeIndexed, width: 1, effect: opAnd, target: regB},
	0xb4: {mnemonic: "anda", mode: modeExtended, width: 1, effect: opAnd, target: regA},
	0xf4: {mnemonic: "andb", mode: modeExtended, width: 1, effect: opAnd, target: regB},

	0x85: {mnemonic: "bita", mode: modeImmediate, width: 1, effect: opBit, target: regA},
	0xc5: {mnemonic: "bitb", mode: modeImmediate, width: 1, effect: opBit, target: regB},
	0x95: {mnemonic: "bita", mode: modeDirect, width: 1, effect: opBit, target: regA},
	0xd5: {mnemonic: "bitb", mode: modeDirect, width: 1, effect: opBit, target: regB},
	0xa5: {mnemonic: "bita", mode: modeIndexed, width: 1, effect: opBit, target: regA},
	0xe5: {mnemonic: "bitb", mode: modeIndexed, width: 1, effect: opBit, target: regB},
	0xb5: {mnemonic: "bita", mode: modeExtended, width: 1, effect: opBit, target: regA},
	0xf5: {mnemonic: "bitb", mode: modeExtended, width: 1, effect: opBit, target: regB},

	0x88: {mnemonic: "eora", mode: modeImmediate, width: 1, effect: opEor, target: regA},
	0xc8: {mnemonic: "eorb", mode: modeImmediate, width: 1, effect: opEor, target: regB},
	0x98: {mnemonic: "eora", mode: modeDirect, width: 1, effect: opEor, target: regA},
	0xd8: {mnemonic: "eorb", mode: modeDirect, width: 1, effect: opEor, target: regB},
	0xa8: {mnemonic: "eora", mode: modeIndexed, width: 1, effect: opEor, target: regA},
	0xe8: {mnemonic: "eorb", mode: modeIndexed, width: 1, effect: opEor, target: regB},
	0xb8: {mnemonic: "eora", mode: modeExtended, width: 1, effect: opEor, target: regA},
	0xf8: {mnemonic: "eorb", mode: modeExtended, width: 1, effect: opEor, target: regB},

	0x8a: {mnemonic: "ora", mode: modeImmediate, width: 1, effect: opOr, target: regA},
	0xca: {mnemonic: "orb", mode: modeImmediate, width: 1, effect: opOr, target: regB},
	0x1a: {mnemonic: "orcc", mode: modeImmediate, width: 1, effect: opOr, target: regCC},
	0x9a: {mnemonic: "ora", mode: modeDirect, width: 1, effect: opOr, target: regA},
	0xda: {mnemonic: "orb", mode: modeDirect, width: 1, effect: opOr, target: regB},
	0xaa: {mnemonic: "ora", mode: modeIndexed, width: 1, effect: opOr, target: regA},
	0xea: {mnemonic: "orb", mode: modeIndexed, width: 1, effect: opOr, target: regB},
	0xba: {mnemonic: "ora", mode: modeExtended, width: 1, effect: opOr, target: regA},
	0xfa: {mnemonic: "orb", mode: modeExtended, width: 1, effect: opOr, target: regB},

	// register transfers and misc
	0x12: {mnemonic: "nop", mode: modeImplied, width: 1, effect: opNop, target: regA},
	0x3a: {mnemonic: "abx", mode: modeImplied, width: 2, effect: opAbx, target: regX},
	0x1d: {mnemonic: "sex", mode: modeImplied, width: 1, effect: opSex, target: regA},
	0x3d: {mnemonic: "mul", mode: modeImplied, width: 1, effect: opMul, target: regD},
	0x1f: {mnemonic: "tfr", mode: modeImplied, width: 1, effect: opTfr, target: regA},
	0x1e: {mnemonic: "exg", mode: modeImplied, width: 1, effect: opExg, target: regA},

	// read-modify-write
	0x4f: {mnemonic: "clra", mode: modeImplied, width: 1, effect: opClr, target: regA},
	0x5f: {mnemonic: "clrb", mode: modeImplied, width: 1, effect: opClr, target: regB},
	0x0f: {mnemonic: "clr", mode: modeDirect, width: 1, effect: opClr, target: regA, calcAddr: true},
	0x6f: {mnemonic: "clr", mode: modeIndexed, width: 1, effect: opClr, target: regA, calcAddr: true},
	0x7f: {mnemonic: "clr", mode: modeExtended, width: 1, effect: opClr, target: regA, calcAddr: true},

	0x43: {mnemonic: "coma", mode: modeImplied, width: 1, effect: opCom, target: regA},
	0x53: {mnemonic: "comb", mode: modeImplied, width: 1, effect: opCom, target: regB},
	0x03: {mnemonic: "com", mode: modeDirect, width: 1, effect: opCom, target: regA, calcAddr: true},
	0x63: {mnemonic: "com", mode: modeIndexed, width: 1, effect: opCom, target: regA, calcAddr: true},
	0x73: {mnemonic: "com", mode: modeExtended, width: 1, effect: opCom, target: regA, calcAddr: true},

	0x40: {mnemonic: "nega", mode: modeImplied, width: 1, effect: opNeg, target: regA},
	0x50: {mnemonic: "negb", mode: modeImplied, width: 1, effect: opNeg, target: regB},
	0x00: {mnemonic: "neg", mode: modeDirect, width: 1, effect: opNeg, target: regA, calcAddr: true},
	0x60: {mnemonic: "neg", mode: modeIndexed, width: 1, effect: opNeg, target: regA, calcAddr: true},
	0x70: {mnemonic: "neg", mode: modeExtended, width: 1, effect: opNeg, target: regA, calcAddr: true},

	0x4a: {mnemonic: "deca", mode: modeImplied, width: 1, effect: opDec, target: regA},
	0x5a: {mnemonic: "decb", mode: modeImplied, width: 1, effect: opDec, target: regB},
	0x0a: {mnemonic: "dec", mode: modeDirect, width: 1, effect: opDec, target: regA, calcAddr: true},
	0x6a: {mnemonic: "dec", mode: modeIndexed, width: 1, effect: opDec, target: regA, calcAddr: true},
	0x7a: {mnemonic: "dec", mode: modeExtended, width: 1, effect: opDec, target: regA, calcAddr: true},

	0x4c: {mnemonic: "inca", mode: modeImplied, width: 1, effect: opInc, target: regA},
	0x5c: {mnemonic: "incb", mode: modeImplied, width: 1, effect: opInc, target: regB},
	0x0c: {mnemonic: "inc", mode: modeDirect, width: 1, effect: opInc, target: regA, calcAddr: true},
	0x6c: {mnemonic: "inc", mode: modeIndexed, width: 1, effect: opInc, target: regA, calcAddr: true},
	0x7c: {mnemonic: "inc", mode: modeExtended, width: 1, effect: opInc, target: regA, calcAddr: true},

	0x48: {mnemonic: "asla", mode: modeImplied, width: 1, effect: opAsl, target: regA},
	0x58: {mnemonic: "aslb", mode: modeImplied, width: 1, effect: opAsl, target: regB},
	0x08: {mnemonic: "asl", mode: modeDirect, width: 1, effect: opAsl, target: regA, calcAddr: true},
	0x68: {mnemonic: "asl", mode: modeIndexed, width: 1, effect: opAsl, target: regA, calcAddr: true},
	0x78: {mnemonic: "asl", mode: modeExtended, width: 1, effect: opAsl, target: regA, calcAddr: true},

	0x47: {mnemonic: "asra", mode: modeImplied, width: 1, effect: opAsr, target: regA},
	0x57: {mnemonic: "asrb", mode: modeImplied, width: 1, effect: opAsr, target: regB},
	0x07: {mnemonic: "asr", mode: modeDirect, width: 1, effect: opAsr, target: regA, calcAddr: true},
	0x67: {mnemonic: "asr", mode: modeIndexed, width: 1, effect: opAsr, target: regA, calcAddr: true},
	0x77: {mnemonic: "asr", mode: modeExtended, width: 1, effect: opAsr, target: regA, calcAddr: true},

	0x44: {mnemonic: "lsra", mode: modeImplied, width: 1, effect: opLsr, target: regA},
	0x54: {mnemonic: "lsrb", mode: modeImplied, width: 1, effect: opLsr, target: regB},
	0x04: {mnemonic: "lsr", mode: modeDirect, width: 1, effect: opLsr, target: regA, calcAddr: true},
	0x64: {mnemonic: "lsr", mode: modeIndexed, width: 1, effect: opLsr, target: regA, calcAddr: true},
	0x74: {mnemonic: "lsr", mode: modeExtended, width: 1, effect: opLsr, target: regA, calcAddr: true},

	0x49: {mnemonic: "rola", mode: modeImplied, width: 1, effect: opRol, target: regA},
	0x59: {mnemonic: "rolb", mode: modeImplied, width: 1, effect: opRol, target: regB},
	0x09: {mnemonic: "rol", mode: modeDirect, width: 1, effect: opRol, target: regA, calcAddr: true},
	0x69: {mnemonic: "rol", mode: modeIndexed, width: 1, effect: opRol, target: regA, calcAddr: true},
	0x79: {mnemonic: "rol", mode: modeExtended, width: 1, effect: opRol, target: regA, calcAddr: true},

	0x46: {mnemonic: "rora", mode: modeImplied, width: 1, effect: opRor, target: regA},
	0x56: {mnemonic: "rorb", mode: modeImplied, width: 1, effect: opRor, target: regB},
	0x06: {mnemonic: "ror", mode: modeDirect, width: 1, effect: opRor, target: regA, calcAddr: true},
	0x66: {mnemonic: "ror", mode: modeIndexed, width: 1, effect: opRor, target: regA, calcAddr: true},
	0x76: {mnemonic: "ror", mode: modeExtended, width: 1, effect: opRor, target: regA, calcAddr: true},

	0x4d: {mnemonic: "tsta", mode: modeImplied, width: 1, effect: opTst, target: regA},
	0x5d: {mnemonic: "tstb", mode: modeImplied, width: 1, effect: opTst, target: regB},
	0x0d: {mnemonic: "tst", mode: modeDirect, width: 1, effect: opTst, target: regA, calcAddr: true},
	0x6d: {mnemonic: "tst", mode: modeIndexed, width: 1, effect: opTst, target: regA, calcAddr: true},
	0x7d: {mnemonic: "tst", mode: modeExtended, width: 1, effect: opTst, target: regA, calcAddr: true},

	0x32: {mnemonic: "leas", mode: modeIndexed, width: 2, effect: opLea, target: regS, calcAddr: true},
	0x33: {mnemonic: "leau", mode: modeIndexed, width: 2, effect: opLea, target: regU, calcAddr: true},
	0x30: {mnemonic: "leax", mode: modeIndexed, width: 2, effect: opLea, target: regX, calcAddr: true},
	0x31: {mnemonic: "leay", mode: modeIndexed, width: 2, effect: opLea, target: regY, calcAddr: true},

	// stack. the immediate operand is the register mask.
	0x34: {mnemonic: "pshs", mode: modeImmediate, width: 1, effect: opPush, target: regS},
	0x36: {mnemonic: "pshu", mode: modeImmediate, width: 1, effect: opPush, target: regU},

	0x35: {mnemonic: "puls", mode: modeImmediate, width: 1, effect: opPull, target: regS},
	0x37: {mnemonic: "pulu", mode: modeImmediate, width: 1, effect: opPull, target: regU},

	// loads
	0x86:  {mnemonic: "lda", mode: modeImmediate, width: 1, effect: opLd, target: regA},
	0xc6:  {mnemonic: "ldb", mode: modeImmediate, width: 1, effect: opLd, target: regB},
	0xcc:  {mnemonic: "ldd", mode: modeImmediate, width: 2, effect: opLd, target: regD},
	0x1ce: {mnemonic: "lds", mode: modeImmediate, width: 2, effect: opLd, target: regS},
	0xce:  {mnemonic: "ldu", mode: modeImmediate, width: 2, effect: opLd, target: regU},
	0x8e:  {mnemonic: "ldx", mode: modeImmediate, width: 2, effect: opLd, target: regX},
	0x18e: {mnemonic: "ldy", mode: modeImmediate, width: 2, effect: opLd, target: regY},

	0x96:  {mnemonic: "lda", mode: modeDirect, width: 1, effect: opLd, target: regA},
	0xd6:  {mnemonic: "ldb", mode: modeDirect, width: 1, effect: opLd, target: regB},
	0xdc:  {mnemonic: "ldd", mode: modeDirect, width: 2, effect: opLd, target: regD},
	0x1de: {mnemonic: "lds", mode: modeDirect, width: 2, effect: opLd, target: regS},
	0xde:  {mnemonic: "ldu", mode: modeDirect, width: 2, effect: opLd, target: regU},
	0x9e:  {mnemonic: "ldx", mode: modeDirect, width: 2, effect: opLd, target: regX},
	0x19e: {mnemonic: "ldy", mode: modeDirect, width: 2, effect: opLd, target: regY},

	0xa6:  {mnemonic: "lda", mode: modeIndexed, width: 1, effect: opLd, target: regA},
	0xe6:  {mnemonic: "ldb", mode: modeIndexed, width: 1, effect: opLd, target: regB},
	0xec:  {mnemonic: "ldd", mode: modeIndexed, width: 2, effect: opLd, target: regD},
	0x1ee: {mnemonic: "lds", mode: modeIndexed, width: 2, effect: opLd, target: regS},
	0xee:  {mnemonic: "ldu", mode: modeIndexed, width: 2, effect: opLd, target: regU},
	0xae:  {mnemonic: "ldx", mode: modeIndexed, width: 2, effect: opLd, target: regX},
	0x1ae: {mnemonic: "ldy", mode: modeIndexed, width: 2, effect: opLd, target: regY},

	0xb6:  {mnemonic: "lda", mode: modeExtended, width: 1, effect: opLd, target: regA},
	0xf6:  {mnemonic: "ldb", mode: modeExtended, width: 1, effect: opLd, target: regB},
	0xfc:  {mnemonic: "ldd", mode: modeExtended, width: 2, effect: opLd, target: regD},
	0x1fe: {mnemonic: "lds", mode: modeExtended, width: 2, effect: opLd, target: regS},
	0xfe:  {mnemonic: "ldu", mode: modeExtended, width: 2, effect: opLd, target: regU},
	0xbe:  {mnemonic: "ldx", mode: modeExtended, width: 2, effect: opLd, target: regX},
	0x1be: {mnemonic: "ldy", mode: modeExtended, width: 2, effect: opLd, target: regY},

	// stores
	0x97:  {mnemonic: "sta", mode: modeDirect, width: 1, effect: opSt, target: regA, calcAddr: true},
	0xd7:  {mnemonic: "stb", mode: modeDirect, width: 1, effect: opSt, target: regB, calcAddr: true},
	0xdd:  {mnemonic: "std", mode: modeDirect, width: 2, effect: opSt, target: regD, calcAddr: true},
	0x1df: {mnemonic: "sts", mode: modeDirect, width: 2, effect: opSt, target: regS, calcAddr: true},
	0xdf:  {mnemonic: "stu", mode: modeDirect, width: 2, effect: opSt, target: regU, calcAddr: true},
	0x9f:  {mnemonic: "stx", mode: modeDirect, width: 2, effect: opSt, target: regX, calcAddr: true},
	0x19f: {mnemonic: "sty", mode: modeDirect, width: 2, effect: opSt, target: regY, calcAddr: true},

	0xb7:  {mnemonic: "sta", mode: modeExtended, width: 1, effect: opSt, target: regA, calcAddr: true},
	0xf7:  {mnemonic: "stb", mode: modeExtended, width: 1, effect: opSt, target: regB, calcAddr: true},
	0xfd:  {mnemonic: "std", mode: modeExtended, width: 2, effect: opSt, target: regD, calcAddr: true},
	0x1ff: {mnemonic: "sts", mode: modeExtended, width: 2, effect: opSt, target: regS, calcAddr: true},
	0xff:  {mnemonic: "stu", mode: modeExtended, width: 2, effect: opSt, target: regU, calcAddr: true},
	0xbf:  {mnemonic: "stx", mode: modeExtended, width: 2, effect: opSt, target: regX, calcAddr: true},
	0x1bf: {mnemonic: "sty", mode: modeExtended, width: 2, effect: opSt, target: regY, calcAddr: true},

	0xa7:  {mnemonic: "sta", mode: modeIndexed, width: 1, effect: opSt, target: regA, calcAddr: true},
	0xe7:  {mnemonic: "stb", mode: modeIndexed, width: 1, effect: opSt, target: regB, calcAddr: true},
	0xed:  {mnemonic: "std", mode: modeIndexed, width: 2, effect: opSt, target: regD, calcAddr: true},
	0x1ef: {mnemonic: "sts", mode: modeIndexed, width: 2, effect: opSt, target: regS, calcAddr: true},
	0xef:  {mnemonic: "stu", mode: modeIndexed, width: 2, effect: opSt, target: regU, calcAddr: true},
	0xaf:  {mnemonic: "stx", mode: modeIndexed, width: 2, effect: opSt, target: regX, calcAddr: true},
	0x1af: {mnemonic: "sty", mode: modeIndexed, width: 2, effect: opSt, target: regY, calcAddr: true},

	// flow control
	0x20: {mnemonic: "bra", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condAlways},
	0x21: {mnemonic: "brn", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condNever},
	0x22: {mnemonic: "bhi", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condHI},
	0x23: {mnemonic: "bls", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condLS},
	0x24: {mnemonic: "bcc", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condCC},
	0x25: {mnemonic: "bcs", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condCS},
	0x26: {mnemonic: "bne", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condNE},
	0x27: {mnemonic: "beq", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condEQ},
	0x28: {mnemonic: "bvc", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condVC},
	0x29: {mnemonic: "bvs", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condVS},
	0x2a: {mnemonic: "bpl", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condPL},
	0x2b: {mnemonic: "bmi", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condMI},
	0x2c: {mnemonic: "bge", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condGE},
	0x2d: {mnemonic: "blt", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condLT},
	0x2e: {mnemonic: "bgt", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condGT},
	0x2f: {mnemonic: "ble", mode: modeBranch, width: 1, effect: opBra, target: regA, cond: condLE},
	0x8d: {mnemonic: "bsr", mode: modeBranch, width: 1, effect: opBsr, target: regA, cond: condAlways},

	0x16:  {mnemonic: "lbra", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condAlways},
	0x121: {mnemonic: "lbrn", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condNever},
	0x122: {mnemonic: "lbhi", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condHI},
	0x123: {mnemonic: "lbls", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condLS},
	0x124: {mnemonic: "lbcc", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condCC},
	0x125: {mnemonic: "lbcs", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condCS},
	0x126: {mnemonic: "lbne", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condNE},
	0x127: {mnemonic: "lbeq", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condEQ},
	0x128: {mnemonic: "lbvc", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condVC},
	0x129: {mnemonic: "lbvs", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condVS},
	0x12a: {mnemonic: "lbpl", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condPL},
	0x12b: {mnemonic: "lbmi", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condMI},
	0x12c: {mnemonic: "lbge", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condGE},
	0x12d: {mnemonic: "lblt", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condLT},
	0x12e: {mnemonic: "lbgt", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condGT},
	0x12f: {mnemonic: "lble", mode: modeBranch, width: 2, effect: opBra, target: regA, cond: condLE},
	0x17:  {mnemonic: "lbsr", mode: modeBranch, width: 2, effect: opBsr, target: regA, cond: condAlways},

	0x0e: {mnemonic: "jmp", mode: modeDirect, width: 1, effect: opJmp, target: regA, calcAddr: true},
	0x6e: {mnemonic: "jmp", mode: modeIndexed, width: 1, effect: opJmp, target: regA, calcAddr: true},
	0x7e: {mnemonic: "jmp", mode: modeExtended, width: 1, effect: opJmp, target: regA, calcAddr: true},

	0x9d: {mnemonic: "jsr", mode: modeDirect, width: 1, effect: opJsr, target: regA, calcAddr: true},
	0xad: {mnemonic: "jsr", mode: modeIndexed, width: 1, effect: opJsr, target: regA, calcAddr: true},
	0xbd: {mnemonic: "jsr", mode: modeExtended, width: 1, effect: opJsr, target: regA, calcAddr: true},

	0x39: {mnemonic: "rts", mode: modeImplied, width: 1, effect: opRts, target: regA},
}
