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

package mc6800

// addressing modes of the MC6800.
type addressing int

const (
	modeImplied addressing = iota
	modeImmediate
	modeDirect
	modeExtended
	modeIndexed
	modeBranch
)

// operation classes. every opcode in the table decodes to one of these and
// the execution loop switches on them. opcodes that differ only in target
// register or addressing mode share a class.
type operation int

const (
	opBad operation = iota
	opAdd
	opAddAccum
	opAdc
	opSub
	opSubAccum
	opSbc
	opCmp
	opCmpAccum
	opAnd
	opBit
	opEor
	opOr
	opNop
	opClr
	opCom
	opNeg
	opDec
	opInc
	opTst
	opAsl
	opAsr
	opLsr
	opRol
	opRor
	opTfr
	opTfrCC
	opPush
	opPull
	opBra
	opBsr
	opJmp
	opJsr
	opRts
	opLd
	opSt
	opSetCC
	opClearCC
)

// register tags used by the opcode table to name the target of an operation.
type register int

const (
	regA register = iota
	regB
	regIX
	regSP
	regPC
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
//
// width is the operand width in bytes, one or two. calcAddr marks opcodes
// whose addressing stage yields the effective address rather than the value
// at that address: stores, read-modify-write opcodes and jumps.
type instruction struct {
	mnemonic string
	mode     addressing
	width    int
	effect   operation
	target   register
	cond     int
	calcAddr bool
	flag     uint8
}

// the opcode table, one entry per byte. missing entries decode to opBad.
var ops = [256]instruction{
	// arithmetic
	0x8b: {mnemonic: "adda", mode: modeImmediate, width: 1, effect: opAdd, target: regA},
	0xcb: {mnemonic: "addb", mode: modeImmediate, width: 1, effect: opAdd, target: regB},
	0x9b: {mnemonic: "adda", mode: modeDirect, width: 1, effect: opAdd, target: regA},
	0xdb: {mnemonic: "addb", mode: modeDirect, width: 1, effect: opAdd, target: regB},
	0xab: {mnemonic: "adda", mode: modeIndexed, width: 1, effect: opAdd, target: regA},
	0xeb: {mnemonic: "addb", mode: modeIndexed, width: 1, effect: opAdd, target: regB},
	0xbb: {mnemonic: "adda", mode: modeExtended, width: 1, effect: opAdd, target: regA},
	0xfb: {mnemonic: "addb", mode: modeExtended, width: 1, effect: opAdd, target: regB},

	0x1b: {mnemonic: "aba", mode: modeImplied, width: 1, effect: opAddAccum, target: regA},

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
	0x90: {mnemonic: "suba", mode: modeDirect, width: 1, effect: opSub, target: regA},
	0xd0: {mnemonic: "subb", mode: modeDirect, width: 1, effect: opSub, target: regB},
	0xa0: {mnemonic: "suba", mode: modeIndexed, width: 1, effect: opSub, target: regA},
	0xe0: {mnemonic: "subb", mode: modeIndexed, width: 1, effect: opSub, target: regB},
	0xb0: {mnemonic: "suba", mode: modeExtended, width: 1, effect: opSub, target: regA},
	0xf0: {mnemonic: "subb", mode: modeExtended, width: 1, effect: opSub, target: regB},

	0x10: {mnemonic: "sba", mode: modeImplied, width: 1, effect: opSubAccum, target: regA},

	0x82: {mnemonic: "sbca", mode: modeImmediate, width: 1, effect: opSbc, target: regA},
	0xc2: {mnemonic: "sbcb", mode: modeImmediate, width: 1, effect: opSbc, target: regB},
	0x92: {mnemonic: "sbca", mode: modeDirect, width: 1, effect: opSbc, target: regA},
	0xd2: {mnemonic: "sbcb", mode: modeDirect, width: 1, effect: opSbc, target: regB},
	0xa2: {mnemonic: "sbca", mode: modeIndexed, width: 1, effect: opSbc, target: regA},
	0xe2: {mnemonic: "sbcb", mode: modeIndexed, width: 1, effect: opSbc, target: regB},
	0xb2: {mnemonic: "sbca", mode: modeExtended, width: 1, effect: opSbc, target: regA},
	0xf2: {mnemonic: "sbcb", mode: modeExtended, width: 1, effect: opSbc, target: regB},

	0x81: {mnemonic: "cmpa", mode: modeImmediate, width: 1, effect: opCmp, target: regA},
	0xc1: {mnemonic: "cmpb", mode: modeImmediate, width: 1, effect: opCmp, target: regB},
	0x8c: {mnemonic: "cpx", mode: modeImmediate, width: 2, effect: opCmp, target: regIX},
	0x91: {mnemonic: "cmpa", mode: modeDirect, width: 1, effect: opCmp, target: regA},
	0xd1: {mnemonic: "cmpb", mode: modeDirect, width: 1, effect: opCmp, target: regB},
	0x9c: {mnemonic: "cpx", mode: modeDirect, width: 2, effect: opCmp, target: regIX},
	0xa1: {mnemonic: "cmpa", mode: modeIndexed, width: 1, effect: opCmp, target: regA},
	0xe1: {mnemonic: "cmpb", mode: modeIndexed, width: 1, effect: opCmp, target: regB},
	0xac: {mnemonic: "cpx", mode: modeIndexed, width: 2, effect: opCmp, target: regIX},
	0xb1: {mnemonic: "cmpa", mode: modeExtended, width: 1, effect: opCmp, target: regA},
	0xf1: {mnemonic: "cmpb", mode: modeExtended, width: 1, effect: opCmp, target: regB},
	0xbc: {mnemonic: "cpx", mode: modeExtended, width: 2, effect: opCmp, target: regIX},

	0x11: {mnemonic: "cba", mode: modeImplied, width: 1, effect: opCmpAccum, target: regA},

	// logical
	0x84: {mnemonic: "anda", mode: modeImmediate, width: 1, effect: opAnd, target: regA},
	0xc4: {mnemonic: "andb", mode: modeImmediate, width: 1, effect: opAnd, target: regB},
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
	0x9a: {mnemonic: "ora", mode: modeDirect, width: 1, effect: opOr, target: regA},
	0xda: {mnemonic: "orb", mode: modeDirect, width: 1, effect: opOr, target: regB},
	0xaa: {mnemonic: "ora", mode: modeIndexed, width: 1, effect: opOr, target: regA},
	0xea: {mnemonic: "orb", mode: modeIndexed, width: 1, effect: opOr, target: regB},
	0xba: {mnemonic: "ora", mode: modeExtended, width: 1, effect: opOr, target: regA},
	0xfa: {mnemonic: "orb", mode: modeExtended, width: 1, effect: opOr, target: regB},

	// register transfers and flag manipulation
	0x01: {mnemonic: "nop", mode: modeImplied, width: 1, effect: opNop, target: regA},

	0x16: {mnemonic: "tab", mode: modeImplied, width: 1, effect: opTfr, target: regB},
	0x17: {mnemonic: "tba", mode: modeImplied, width: 1, effect: opTfr, target: regA},

	0x35: {mnemonic: "txs", mode: modeImplied, width: 2, effect: opTfr, target: regSP},
	0x30: {mnemonic: "tsx", mode: modeImplied, width: 2, effect: opTfr, target: regIX},

	0x07: {mnemonic: "tpa", mode: modeImplied, width: 1, effect: opTfrCC, target: regA},
	0x06: {mnemonic: "tap", mode: modeImplied, width: 1, effect: opTfrCC, target: regCC},

	0x0b: {mnemonic: "sev", mode: modeImplied, width: 1, effect: opSetCC, target: regPC, flag: flagV},
	0x0d: {mnemonic: "sec", mode: modeImplied, width: 1, effect: opSetCC, target: regPC, flag: flagC},
	0x0f: {mnemonic: "sei", mode: modeImplied, width: 1, effect: opSetCC, target: regPC, flag: flagI},

	0x0a: {mnemonic: "clv", mode: modeImplied, width: 1, effect: opClearCC, target: regPC, flag: flagV},
	0x0c: {mnemonic: "clc", mode: modeImplied, width: 1, effect: opClearCC, target: regPC, flag: flagC},
	0x0e: {mnemonic: "cli", mode: modeImplied, width: 1, effect: opClearCC, target: regPC, flag: flagI},

	// read-modify-write
	0x4f: {mnemonic: "clra", mode: modeImplied, width: 1, effect: opClr, target: regA},
	0x5f: {mnemonic: "clrb", mode: modeImplied, width: 1, effect: opClr, target: regB},
	0x6f: {mnemonic: "clr", mode: modeIndexed, width: 1, effect: opClr, target: regA, calcAddr: true},
	0x7f: {mnemonic: "clr", mode: modeExtended, width: 1, effect: opClr, target: regA, calcAddr: true},

	0x43: {mnemonic: "coma", mode: modeImplied, width: 1, effect: opCom, target: regA},
	0x53: {mnemonic: "comb", mode: modeImplied, width: 1, effect: opCom, target: regB},
	0x63: {mnemonic: "com", mode: modeIndexed, width: 1, effect: opCom, target: regA, calcAddr: true},
	0x73: {mnemonic: "com", mode: modeExtended, width: 1, effect: opCom, target: regA, calcAddr: true},

	0x40: {mnemonic: "nega", mode: modeImplied, width: 1, effect: opNeg, target: regA},
	0x50: {mnemonic: "negb", mode: modeImplied, width: 1, effect: opNeg, target: regB},
	0x60: {mnemonic: "neg", mode: modeIndexed, width: 1, effect: opNeg, target: regA, calcAddr: true},
	0x70: {mnemonic: "neg", mode: modeExtended, width: 1, effect: opNeg, target: regA, calcAddr: true},

	0x4a: {mnemonic: "deca", mode: modeImplied, width: 1, effect: opDec, target: regA},
	0x5a: {mnemonic: "decb", mode: modeImplied, width: 1, effect: opDec, target: regB},
	0x6a: {mnemonic: "dec", mode: modeIndexed, width: 1, effect: opDec, target: regA, calcAddr: true},
	0x7a: {mnemonic: "dec", mode: modeExtended, width: 1, effect: opDec, target: regA, calcAddr: true},
	0x34: {mnemonic: "des", mode: modeImplied, width: 2, effect: opDec, target: regSP},
	0x09: {mnemonic: "dex", mode: modeImplied, width: 2, effect: opDec, target: regIX},

	0x4c: {mnemonic: "inca", mode: modeImplied, width: 1, effect: opInc, target: regA},
	0x5c: {mnemonic: "incb", mode: modeImplied, width: 1, effect: opInc, target: regB},
	0x6c: {mnemonic: "inc", mode: modeIndexed, width: 1, effect: opInc, target: regA, calcAddr: true},
	0x7c: {mnemonic: "inc", mode: modeExtended, width: 1, effect: opInc, target: regA, calcAddr: true},
	0x31: {mnemonic: "ins", mode: modeImplied, width: 2, effect: opInc, target: regSP},
	0x08: {mnemonic: "inx", mode: modeImplied, width: 2, effect: opInc, target: regIX},

	0x48: {mnemonic: "asla", mode: modeImplied, width: 1, effect: opAsl, target: regA},
	0x58: {mnemonic: "aslb", mode: modeImplied, width: 1, effect: opAsl, target: regB},
	0x68: {mnemonic: "asl", mode: modeIndexed, width: 1, effect: opAsl, target: regA, calcAddr: true},
	0x78: {mnemonic: "asl", mode: modeExtended, width: 1, effect: opAsl, target: regA, calcAddr: true},

	0x47: {mnemonic: "asra", mode: modeImplied, width: 1, effect: opAsr, target: regA},
	0x57: {mnemonic: "asrb", mode: modeImplied, width: 1, effect: opAsr, target: regB},
	0x67: {mnemonic: "asr", mode: modeIndexed, width: 1, effect: opAsr, target: regA, calcAddr: true},
	0x77: {mnemonic: "asr", mode: modeExtended, width: 1, effect: opAsr, target: regA, calcAddr: true},

	0x44: {mnemonic: "lsra", mode: modeImplied, width: 1, effect: opLsr, target: regA},
	0x54: {mnemonic: "lsrb", mode: modeImplied, width: 1, effect: opLsr, target: regB},
	0x64: {mnemonic: "lsr", mode: modeIndexed, width: 1, effect: opLsr, target: regA, calcAddr: true},
	0x74: {mnemonic: "lsr", mode: modeExtended, width: 1, effect: opLsr, target: regA, calcAddr: true},

	0x49: {mnemonic: "rola", mode: modeImplied, width: 1, effect: opRol, target: regA},
	0x59: {mnemonic: "rolb", mode: modeImplied, width: 1, effect: opRol, target: regB},
	0x69: {mnemonic: "rol", mode: modeIndexed, width: 1, effect: opRol, target: regA, calcAddr: true},
	0x79: {mnemonic: "rol", mode: modeExtended, width: 1, effect: opRol, target: regA, calcAddr: true},

	0x46: {mnemonic: "rora", mode: modeImplied, width: 1, effect: opRor, target: regA},
	0x56: {mnemonic: "rorb", mode: modeImplied, width: 1, effect: opRor, target: regB},
	0x66: {mnemonic: "ror", mode: modeIndexed, width: 1, effect: opRor, target: regA, calcAddr: true},
	0x76: {mnemonic: "ror", mode: modeExtended, width: 1, effect: opRor, target: regA, calcAddr: true},

	0x4d: {mnemonic: "tsta", mode: modeImplied, width: 1, effect: opTst, target: regA},
	0x5d: {mnemonic: "tstb", mode: modeImplied, width: 1, effect: opTst, target: regB},
	0x6d: {mnemonic: "tst", mode: modeIndexed, width: 1, effect: opTst, target: regA, calcAddr: true},
	0x7d: {mnemonic: "tst", mode: modeExtended, width: 1, effect: opTst, target: regA, calcAddr: true},

	// stack
	0x36: {mnemonic: "psha", mode: modeImplied, width: 1, effect: opPush, target: regA},
	0x37: {mnemonic: "pshb", mode: modeImplied, width: 1, effect: opPush, target: regB},

	0x32: {mnemonic: "pula", mode: modeImplied, width: 1, effect: opPull, target: regA},
	0x33: {mnemonic: "pulb", mode: modeImplied, width: 1, effect: opPull, target: regB},

	// loads
	0x86: {mnemonic: "lda", mode: modeImmediate, width: 1, effect: opLd, target: regA},
	0xc6: {mnemonic: "ldb", mode: modeImmediate, width: 1, effect: opLd, target: regB},
	0x8e: {mnemonic: "lds", mode: modeImmediate, width: 2, effect: opLd, target: regSP},
	0xce: {mnemonic: "ldx", mode: modeImmediate, width: 2, effect: opLd, target: regIX},

	0x96: {mnemonic: "lda", mode: modeDirect, width: 1, effect: opLd, target: regA},
	0xd6: {mnemonic: "ldb", mode: modeDirect, width: 1, effect: opLd, target: regB},
	0x9e: {mnemonic: "lds", mode: modeDirect, width: 2, effect: opLd, target: regSP},
	0xde: {mnemonic: "ldx", mode: modeDirect, width: 2, effect: opLd, target: regIX},

	0xb6: {mnemonic: "lda", mode: modeExtended, width: 1, effect: opLd, target: regA},
	0xf6: {mnemonic: "ldb", mode: modeExtended, width: 1, effect: opLd, target: regB},
	0xbe: {mnemonic: "lds", mode: modeExtended, width: 2, effect: opLd, target: regSP},
	0xfe: {mnemonic: "ldx", mode: modeExtended, width: 2, effect: opLd, target: regIX},

	0xa6: {mnemonic: "lda", mode: modeIndexed, width: 1, effect: opLd, target: regA},
	0xe6: {mnemonic: "ldb", mode: modeIndexed, width: 1, effect: opLd, target: regB},
	0xae: {mnemonic: "lds", mode: modeIndexed, width: 2, effect: opLd, target: regSP},
	0xee: {mnemonic: "ldx", mode: modeIndexed, width: 2, effect: opLd, target: regIX},

	// stores
	0x97: {mnemonic: "sta", mode: modeDirect, width: 1, effect: opSt, target: regA, calcAddr: true},
	0xd7: {mnemonic: "stb", mode: modeDirect, width: 1, effect: opSt, target: regB, calcAddr: true},
	0x9f: {mnemonic: "sts", mode: modeDirect, width: 2, effect: opSt, target: regSP, calcAddr: true},
	0xdf: {mnemonic: "stx", mode: modeDirect, width: 2, effect: opSt, target: regIX, calcAddr: true},

	0xb7: {mnemonic: "sta", mode: modeExtended, width: 1, effect: opSt, target: regA, calcAddr: true},
	0xf7: {mnemonic: "stb", mode: modeExtended, width: 1, effect: opSt, target: regB, calcAddr: true},
	0xbf: {mnemonic: "sts", mode: modeExtended, width: 2, effect: opSt, target: regSP, calcAddr: true},
	0xff: {mnemonic: "stx", mode: modeExtended, width: 2, effect: opSt, target: regIX, calcAddr: true},

	0xa7: {mnemonic: "sta", mode: modeIndexed, width: 1, effect: opSt, target: regA, calcAddr: true},
	0xe7: {mnemonic: "stb", mode: modeIndexed, width: 1, effect: opSt, target: regB, calcAddr: true},
	0xaf: {mnemonic: "sts", mode: modeIndexed, width: 2, effect: opSt, target: regSP, calcAddr: true},
	0xef: {mnemonic: "stx", mode: modeIndexed, width: 2, effect: opSt, target: regIX, calcAddr: true},

	// flow control
	0x20: {mnemonic: "bra", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condAlways},
	0x22: {mnemonic: "bhi", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condHI},
	0x23: {mnemonic: "bls", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condLS},
	0x24: {mnemonic: "bcc", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condCC},
	0x25: {mnemonic: "bcs", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condCS},
	0x26: {mnemonic: "bne", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condNE},
	0x27: {mnemonic: "beq", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condEQ},
	0x28: {mnemonic: "bvc", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condVC},
	0x29: {mnemonic: "bvs", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condVS},
	0x2a: {mnemonic: "bpl", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condPL},
	0x2b: {mnemonic: "bmi", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condMI},
	0x2c: {mnemonic: "bge", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condGE},
	0x2d: {mnemonic: "blt", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condLT},
	0x2e: {mnemonic: "bgt", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condGT},
	0x2f: {mnemonic: "ble", mode: modeBranch, width: 1, effect: opBra, target: regPC, cond: condLE},
	0x8d: {mnemonic: "bsr", mode: modeBranch, width: 1, effect: opBsr, target: regPC},

	0x6e: {mnemonic: "jmp", mode: modeIndexed, width: 1, effect: opJmp, target: regPC, calcAddr: true},
	0x7e: {mnemonic: "jmp", mode: modeExtended, width: 1, effect: opJmp, target: regPC, calcAddr: true},

	0xad: {mnemonic: "jsr", mode: modeIndexed, width: 1, effect: opJsr, target: regPC, calcAddr: true},
	0xbd: {mnemonic: "jsr", mode: modeExtended, width: 1, effect: opJsr, target: regPC, calcAddr: true},

	0x39: {mnemonic: "rts", mode: modeImplied, width: 1, effect: opRts, target: regPC},
}
