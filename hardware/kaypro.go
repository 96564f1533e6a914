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

package hardware

import (
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/romload"
)

// KayproDefaultROM is the image loaded when no ROM file is named on the
// command line.
const KayproDefaultROM = "rom/kaypro/kayproii_u47.bin"

// the two states of the Kaypro bank switch.
const (
	kayproBankRAM = iota // all 64k of RAM on the bus
	kayproBankROM        // ROM and video memory overlay the bottom 16k
)

// kayproMemory is the banked bottom quarter of the Kaypro address space.
// With the bank switch in the ROM position the bottom 16k is the 4k boot ROM
// mirrored up to 0x3000 with the 4k of video memory above it. In the RAM
// position the 64k of RAM covers everything. The top 48k is RAM in either
// position.
//
// The bank cannot be expressed as fixed DeviceMap spans so the whole address
// space is one device.
type kayproMemory struct {
	ram   *memory.RAM
	video *memory.RAM
	rom   *memory.ROM
	bank  int
}

func newKayproMemory() *kayproMemory {
	return &kayproMemory{
		ram:   memory.NewRAM(0x10000),
		video: memory.NewRAM(0x1000),
		rom:   memory.NewROM(0x1000),
		bank:  kayproBankROM,
	}
}

// device selects the device under the address for the current bank position.
// The returned address is local to that device.
func (k *kayproMemory) device(address uint16) (bus.Device, uint16) {
	if k.bank == kayproBankRAM || address >= 0x4000 {
		return k.ram, address
	}
	if address >= 0x3000 {
		return k.video, address - 0x3000
	}
	return k.rom, address
}

// Read8 implements the bus.Device interface.
func (k *kayproMemory) Read8(address uint16) uint8 {
	dev, local := k.device(address)
	return dev.Read8(local)
}

// Write8 implements the bus.Device interface.
func (k *kayproMemory) Write8(address uint16, data uint8) {
	dev, local := k.device(address)
	dev.Write8(local, data)
}

// Load8 implements the bus.DeviceLoader interface. The load path installs
// the boot ROM regardless of the bank position.
func (k *kayproMemory) Load8(address uint16, data uint8) {
	k.rom.Load8(address, data)
}

// kayproIO is the Kaypro's IO space. Only the bank switch does anything.
// The other ports of the real machine are accepted quietly, the serial
// console of this emulator is elsewhere and there is no floppy.
type kayproIO struct {
	mem *kayproMemory
}

// IORead8 implements the bus.IO interface.
func (k *kayproIO) IORead8(port uint8) uint8 {
	return 0
}

// IOWrite8 implements the bus.IO interface.
func (k *kayproIO) IOWrite8(port uint8, data uint8) {
	switch {
	case port >= 0x14 && port <= 0x17:
		// bank register and floppy PIO
		if data&0x01 == 0x01 {
			k.mem.bank = kayproBankROM
		} else {
			k.mem.bank = kayproBankRAM
		}
	case port == 0x00 || port == 0x0c:
		// baud rate generators
	case port >= 0x04 && port <= 0x0b:
		// serial ports and PIO 1
	case port >= 0x10 && port <= 0x13:
		// floppy controller
	case port >= 0x1c && port <= 0x1f:
		// PIO 2
	default:
		logger.Logf("kaypro", "out to unknown port %#02x", port)
	}
}

// newKaypro builds a Kaypro II: a Z80 with 64k of RAM and the boot ROM and
// video memory banked over the bottom 16k.
func newKaypro(name string, subsystem string, cpuName string, romFile string, term peripherals.Terminal) (*Machine, error) {
	if subsystem != "" {
		return nil, curated.Errorf(UnsupportedSystem, name)
	}
	if cpuName != "" && cpuName != "z80" {
		return nil, curated.Errorf(UnsupportedCPU, cpuName, name)
	}

	kmem := newKayproMemory()

	mem := memory.NewDeviceMap()
	if err := mem.Map(0x0000, 0xffff, kmem); err != nil {
		return nil, err
	}

	if romFile == "" {
		romFile = KayproDefaultROM
	}
	if err := romload.Load(romFile, kmem, 0x0000); err != nil {
		return nil, err
	}

	io := &kayproIO{mem: kmem}

	return &Machine{
		Name: name,
		CPU:  z80.NewCPU(mem, io),
		Mem:  mem,
		IO:   io,
	}, nil
}
