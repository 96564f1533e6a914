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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware"
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

func romFile(t *testing.T, content []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "rom")
	if err := os.WriteFile(fn, content, 0600); err != nil {
		t.Fatal(err)
	}
	return fn
}

// a branch-to-self at the reset vector. the program terminates itself on the
// first instruction.
const haltingROM = ":02C0000020FE20\n:02FFFE00C00041\n:00000001FF\n"

// an endless loop that is not a branch-to-self. the machine only stops when
// asked to.
const spinningROM = ":06C000007C00107EC00070\n:02FFFE00C00041\n:00000001FF\n"

func TestSystem09(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte(haltingROM))

	m, err := hardware.NewMachine("6809", "", fn, term)
	test.ExpectedSuccess(t, err)

	// ROM content and reset vector
	test.Equate(t, m.Mem.Read8(0xc000), 0x20)
	test.Equate(t, m.Mem.Read8(0xc001), 0xfe)
	test.Equate(t, m.Mem.Read8(0xfffe), 0xc0)
	test.Equate(t, m.Mem.Read8(0xffff), 0x00)

	// RAM
	m.Mem.Write8(0x0010, 0x55)
	test.Equate(t, m.Mem.Read8(0x0010), 0x55)

	// MC6850 status at the standard address. transmitter ready
	test.Equate(t, m.Mem.Read8(0xa000), 0x02)

	// the program terminates itself
	test.ExpectedSuccess(t, m.Run())
}

func TestSystem09OBC(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte(haltingROM))

	m, err := hardware.NewMachine("6809-obc", "", fn, term)
	test.ExpectedSuccess(t, err)

	// 16550 line status at the obc address. transmitter empty
	test.Equate(t, m.Mem.Read8(0x8005), 0x60)
}

func TestSystem09CPUOverride(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte(haltingROM))

	// the board also takes a 6800. the test program runs on either
	m, err := hardware.NewMachine("6809", "6800", fn, term)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, m.Run())
}

func TestAltair680(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte{0x0f, 0x3e, 0x20})

	m, err := hardware.NewMachine("altair680", "", fn, term)
	test.ExpectedSuccess(t, err)

	// monitor PROM at the top of the address space
	test.Equate(t, m.Mem.Read8(0xff00), 0x0f)
	test.Equate(t, m.Mem.Read8(0xff01), 0x3e)

	// the VTL socket is mapped but empty
	test.Equate(t, m.Mem.Read8(0xfc00), 0x00)

	// MC6850 status
	test.Equate(t, m.Mem.Read8(0xf000), 0x02)
}

func TestKayproBankSwitch(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte{0x76, 0x11, 0x22})

	m, err := hardware.NewMachine("kaypro", "", fn, term)
	test.ExpectedSuccess(t, err)

	// the machine resets with the boot ROM on the bus
	test.Equate(t, m.Mem.Read8(0x0000), 0x76)

	// ROM writes are dropped
	m.Mem.Write8(0x0000, 0xff)
	test.Equate(t, m.Mem.Read8(0x0000), 0x76)

	// video memory overlays 0x3000 while the ROM is banked in
	m.Mem.Write8(0x3000, 0x5a)
	test.Equate(t, m.Mem.Read8(0x3000), 0x5a)

	// the top 48k is RAM in either bank position
	m.Mem.Write8(0x4000, 0x12)

	// switch to the all-RAM bank
	m.IO.IOWrite8(0x14, 0x00)
	test.Equate(t, m.Mem.Read8(0x0000), 0x00)
	m.Mem.Write8(0x0000, 0xaa)
	test.Equate(t, m.Mem.Read8(0x0000), 0xaa)
	test.Equate(t, m.Mem.Read8(0x4000), 0x12)

	// and back again. any of the four ports selects the bank
	m.IO.IOWrite8(0x17, 0x01)
	test.Equate(t, m.Mem.Read8(0x0000), 0x76)
	test.Equate(t, m.Mem.Read8(0x4000), 0x12)

	// the boot ROM is a single HALT. a clean exit
	test.ExpectedSuccess(t, m.Run())
}

func TestRC2014(t *testing.T) {
	term := &scriptedTerminal{input: []uint8{'r'}}
	fn := romFile(t, []byte{0x76})

	m, err := hardware.NewMachine("rc2014", "", fn, term)
	test.ExpectedSuccess(t, err)

	// ROM window at the bottom of the address space
	test.Equate(t, m.Mem.Read8(0x0000), 0x76)

	// RAM in the top half
	m.Mem.Write8(0x8000, 0x34)
	test.Equate(t, m.Mem.Read8(0x8000), 0x34)

	// nothing between the ROM window and the RAM
	test.Equate(t, m.Mem.Read8(0x4000), 0x00)

	// console input reaches the SIO through the input hook
	m.OnInput()
	test.Equate(t, m.IO.IORead8(0x80), 0x03)
	test.Equate(t, m.IO.IORead8(0x81), 'r')
	test.Equate(t, m.IO.IORead8(0x80), 0x00)
}

func TestQuit(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte(spinningROM))

	m, err := hardware.NewMachine("6809", "", fn, term)
	test.ExpectedSuccess(t, err)

	done := make(chan error)
	go func() {
		done <- m.Run()
	}()

	time.Sleep(10 * time.Millisecond)
	m.Quit()
	test.ExpectedSuccess(t, <-done)
}

func TestUnsupportedSystem(t *testing.T) {
	term := &scriptedTerminal{}

	_, err := hardware.NewMachine("vic20", "", "", term)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, hardware.UnsupportedSystem), true)
}

func TestUnsupportedCPU(t *testing.T) {
	term := &scriptedTerminal{}
	fn := romFile(t, []byte{0x76})

	_, err := hardware.NewMachine("rc2014", "6809", fn, term)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, hardware.UnsupportedCPU), true)
}
