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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/test"
)

func TestRouting(t *testing.T) {
	m := memory.NewDeviceMap()
	ram := memory.NewRAM(0x1000)
	test.ExpectedSuccess(t, m.Map(0x1000, 0x1fff, ram))

	m.Write8(0x1234, 0xab)
	test.Equate(t, m.Read8(0x1234), 0xab)

	// the device sees addresses relative to the bottom of its mapping
	test.Equate(t, ram.Read8(0x0234), 0xab)
}

func TestRebasedMapping(t *testing.T) {
	m := memory.NewDeviceMap()
	ram := memory.NewRAM(0x10000)

	// a 64k RAM of which only the top half is visible, as in the RC2014
	test.ExpectedSuccess(t, m.MapRebased(0x8000, 0xffff, 0x0000, ram))

	m.Write8(0x8000, 0x55)
	test.Equate(t, ram.Read8(0x8000), 0x55)
}

func TestMappingOverlap(t *testing.T) {
	m := memory.NewDeviceMap()
	test.ExpectedSuccess(t, m.Map(0x0000, 0x7fff, memory.NewRAM(0x8000)))

	err := m.Map(0x7fff, 0x9fff, memory.NewRAM(0x2000))
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, memory.MappingOverlap), true)
	}

	err = m.Map(0x9000, 0x8000, memory.NewRAM(0x1000))
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, memory.MappingOrder), true)
	}
}

func TestUnmapped(t *testing.T) {
	m := memory.NewDeviceMap()
	test.ExpectedSuccess(t, m.Map(0x0000, 0x0fff, memory.NewRAM(0x1000)))

	// unmapped reads return zero and unmapped writes are dropped
	test.Equate(t, m.Read8(0x8000), 0)
	m.Write8(0x8000, 0xff)
	test.Equate(t, m.Read8(0x8000), 0)
}

func Test16BitAccess(t *testing.T) {
	m := memory.NewDeviceMap()
	test.ExpectedSuccess(t, m.Map(0x0000, 0xffff, memory.NewRAM(0x10000)))

	m.Write16(0x0100, 0x1234, bus.Big)
	test.Equate(t, m.Read8(0x0100), 0x12)
	test.Equate(t, m.Read8(0x0101), 0x34)
	test.Equate(t, m.Read16(0x0100, bus.Big), 0x1234)
	test.Equate(t, m.Read16(0x0100, bus.Little), 0x3412)

	m.Write16(0x0200, 0x1234, bus.Little)
	test.Equate(t, m.Read8(0x0200), 0x34)
	test.Equate(t, m.Read8(0x0201), 0x12)
	test.Equate(t, m.Read16(0x0200, bus.Little), 0x1234)
}

func TestROM(t *testing.T) {
	m := memory.NewDeviceMap()
	rom := memory.NewROM(0x1000)
	test.ExpectedSuccess(t, m.Map(0xf000, 0xffff, rom))

	// CPU writes are dropped but the load path succeeds
	m.Write8(0xf000, 0xaa)
	test.Equate(t, m.Read8(0xf000), 0)

	m.Load8(0xf000, 0xaa)
	test.Equate(t, m.Read8(0xf000), 0xaa)
}

func TestBankedROM(t *testing.T) {
	rom := memory.NewBankedROM(0x10000, 0x2000)

	// load addresses the full image
	rom.Load8(0x0000, 0x01)
	rom.Load8(0x2000, 0x02)

	test.Equate(t, rom.Read8(0x0000), 0x01)

	rom.SelectBank(1)
	test.Equate(t, rom.Bank(), 1)
	test.Equate(t, rom.Read8(0x0000), 0x02)

	// bank number wraps at the number of banks in the image
	rom.SelectBank(8)
	test.Equate(t, rom.Bank(), 0)
	test.Equate(t, rom.Read8(0x0000), 0x01)
}

func TestRAMMirror(t *testing.T) {
	ram := memory.NewRAM(0x100)
	ram.Write8(0x0012, 0x34)

	// a small RAM in a large window repeats through the window
	test.Equate(t, ram.Read8(0x0112), 0x34)
}
