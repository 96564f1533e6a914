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

package z80

// operation classes. unlike the Motorola cores the Z80 encodes register
// selection in bit fields of the opcode itself, so an entry identifies the
// shape of the instruction and the executor decodes the fields.
type operation int

const (
	opBad operation = iota
	opNop
	opHalt

	opLdRR
	opLdRN
	opLdANN
	opLdNNA
	opLdABC
	opLdADE
	opLdBCA
	opLdDEA
	opLdDDNN
	opLdSPHL
	opLdNNHL
	opLdHLNN

	opPush
	opPop

	opExSPHL
	opExDEHL
	opExAF
	opExx

	opAddHL
	opIncSS
	opDecSS
	opIncR
	opDecR
	opAluR
	opAluN

	opRlca
	opRrca
	opRla
	opRra
	opCpl
	opCcf
	opScf

	opJp
	opJpCC
	opJpHL
	opJr
	opJrCC
	opDjnz
	opCall
	opCallCC
	opRet
	opRetCC
	opRst

	opDi
	opEi
	opOutNA
	opInAN

	// ED page
	opOutCR
	opLdir
	opLdNNDD
	opLdDDPtr
	opIm
	opReti

	// CB page
	opBit
	opRes
	opSet
)

// instruction is one entry in the opcode table.
type instruction struct {
	mnemonic string
	effect   operation
}

// the two pages behind the ED and CB prefix bytes follow the base page in
// the table.
const (
	pageED = 0x100
	pageCB = 0x200
)

var ops [256 * 3]instruction

// the encoding is field based so large parts of the table are filled by
// loops. opcode 0x76 is the hole in the LD r,r block where loading (HL)
// from itself would be.
func init() {
	// loads
	for op := 0x40; op <= 0x7f; op++ {
		ops[op] = instruction{"ld r,r", opLdRR}
	}
	ops[0x76] = instruction{"halt", opHalt}

	for r := 0; r <= 7; r++ {
		ops[r<<3|0x06] = instruction{"ld r,n", opLdRN}
	}

	ops[0x3a] = instruction{"ld a,(nn)", opLdANN}
	ops[0x32] = instruction{"ld (nn),a", opLdNNA}
	ops[0x0a] = instruction{"ld a,(bc)", opLdABC}
	ops[0x1a] = instruction{"ld a,(de)", opLdADE}
	ops[0x02] = instruction{"ld (bc),a", opLdBCA}
	ops[0x12] = instruction{"ld (de),a", opLdDEA}

	for dd := 0; dd <= 3; dd++ {
		ops[dd<<4|0x01] = instruction{"ld dd,nn", opLdDDNN}
	}
	ops[0xf9] = instruction{"ld sp,hl", opLdSPHL}
	ops[0x22] = instruction{"ld (nn),hl", opLdNNHL}
	ops[0x2a] = instruction{"ld hl,(nn)", opLdHLNN}

	// stack
	for qq := 0; qq <= 3; qq++ {
		ops[qq<<4|0xc5] = instruction{"push qq", opPush}
		ops[qq<<4|0xc1] = instruction{"pop qq", opPop}
	}

	// exchanges
	ops[0xe3] = instruction{"ex (sp),hl", opExSPHL}
	ops[0xeb] = instruction{"ex de,hl", opExDEHL}
	ops[0x08] = instruction{"ex af,af'", opExAF}
	ops[0xd9] = instruction{"exx", opExx}

	// 16-bit arithmetic
	for ss := 0; ss <= 3; ss++ {
		ops[ss<<4|0x09] = instruction{"add hl,ss", opAddHL}
		ops[ss<<4|0x03] = instruction{"inc ss", opIncSS}
		ops[ss<<4|0x0b] = instruction{"dec ss", opDecSS}
	}

	// 8-bit arithmetic. the operator lives in bits 5-3 of the register
	// forms and of the immediate forms.
	for r := 0; r <= 7; r++ {
		ops[r<<3|0x04] = instruction{"inc r", opIncR}
		ops[r<<3|0x05] = instruction{"dec r", opDecR}
	}
	for op := 0x80; op <= 0xbf; op++ {
		ops[op] = instruction{"alu a,r", opAluR}
	}
	for alu := 0; alu <= 7; alu++ {
		ops[alu<<3|0xc6] = instruction{"alu a,n", opAluN}
	}

	// rotates and flag operations
	ops[0x07] = instruction{"rlca", opRlca}
	ops[0x0f] = instruction{"rrca", opRrca}
	ops[0x17] = instruction{"rla", opRla}
	ops[0x1f] = instruction{"rra", opRra}
	ops[0x2f] = instruction{"cpl", opCpl}
	ops[0x3f] = instruction{"ccf", opCcf}
	ops[0x37] = instruction{"scf", opScf}

	// flow control
	ops[0x00] = instruction{"nop", opNop}
	ops[0xc3] = instruction{"jp nn", opJp}
	ops[0xe9] = instruction{"jp (hl)", opJpHL}
	ops[0x18] = instruction{"jr e", opJr}
	ops[0x10] = instruction{"djnz e", opDjnz}
	ops[0xcd] = instruction{"call nn", opCall}
	ops[0xc9] = instruction{"ret", opRet}
	for cc := 0; cc <= 7; cc++ {
		ops[cc<<3|0xc2] = instruction{"jp cc,nn", opJpCC}
		ops[cc<<3|0xc4] = instruction{"call cc,nn", opCallCC}
		ops[cc<<3|0xc0] = instruction{"ret cc", opRetCC}
		ops[cc<<3|0xc7] = instruction{"rst p", opRst}
	}
	for cc := 4; cc <= 7; cc++ {
		ops[cc<<3] = instruction{"jr cc,e", opJrCC}
	}

	// interrupts and IO
	ops[0xf3] = instruction{"di", opDi}
	ops[0xfb] = instruction{"ei", opEi}
	ops[0xd3] = instruction{"out (n),a", opOutNA}
	ops[0xdb] = instruction{"in a,(n)", opInAN}

	// the ED page
	for r := 0; r <= 7; r++ {
		ops[pageED|r<<3|0x41] = instruction{"out (c),r", opOutCR}
	}
	ops[pageED|0xb0] = instruction{"ldir", opLdir}
	for dd := 0; dd <= 3; dd++ {
		ops[pageED|dd<<4|0x43] = instruction{"ld (nn),dd", opLdNNDD}
		ops[pageED|dd<<4|0x4b] = instruction{"ld dd,(nn)", opLdDDPtr}
	}
	ops[pageED|0x46] = instruction{"im 0", opIm}
	ops[pageED|0x56] = instruction{"im 1", opIm}
	ops[pageED|0x5e] = instruction{"im 2", opIm}
	ops[pageED|0x4d] = instruction{"reti", opReti}

	// the CB page
	for op := 0x40; op <= 0x7f; op++ {
		ops[pageCB|op] = instruction{"bit b,r", opBit}
	}
	for op := 0x80; op <= 0xbf; op++ {
		ops[pageCB|op] = instruction{"res b,r", opRes}
	}
	for op := 0xc0; op <= 0xff; op++ {
		ops[pageCB|op] = instruction{"set b,r", opSet}
	}
}
