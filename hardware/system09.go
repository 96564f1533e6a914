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
	"github.com/jetsetilly/gopher8bit/hardware/cpu/mc6800"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/mc6809"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/mc6850"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/uart16550"
	"github.com/jetsetilly/gopher8bit/romload"
)

// System09DefaultROM is the image loaded when no ROM file is named on the
// command line.
const System09DefaultROM = "test/BASIC.HEX"

// newSystem09 builds a System09 single board computer: 32k of RAM, 16k of
// ROM at the top of the address space and a serial port. The standard board
// carries an MC6850 at 0xa000. The "obc" variant carries a 16550 at 0x8000
// instead.
//
// The board is normally driven by a 6809 but the socket also accepts a 6800.
func newSystem09(name string, subsystem string, cpuName string, romFile string, term peripherals.Terminal) (*Machine, error) {
	mem := memory.NewDeviceMap()

	if err := mem.Map(0x0000, 0x7fff, memory.NewRAM(0x8000)); err != nil {
		return nil, err
	}

	switch subsystem {
	case "":
		if err := mem.Map(0xa000, 0xa7ff, mc6850.NewUART(term)); err != nil {
			return nil, err
		}
	case "obc":
		if err := mem.Map(0x8000, 0x87ff, uart16550.NewUART(term)); err != nil {
			return nil, err
		}
	default:
		return nil, curated.Errorf(UnsupportedSystem, name)
	}

	if err := mem.Map(0xc000, 0xffff, memory.NewROM(0x4000)); err != nil {
		return nil, err
	}

	if romFile == "" {
		romFile = System09DefaultROM
	}
	if err := romload.Load(romFile, mem, 0xc000); err != nil {
		return nil, err
	}

	m := &Machine{
		Name: name,
		Mem:  mem,
	}

	switch cpuName {
	case "", "6809":
		m.CPU = mc6809.NewCPU(mem)
	case "6800":
		m.CPU = mc6800.NewCPU(mem)
	default:
		return nil, curated.Errorf(UnsupportedCPU, cpuName, name)
	}

	return m, nil
}
