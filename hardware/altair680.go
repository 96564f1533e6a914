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
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/mc6850"
	"github.com/jetsetilly/gopher8bit/romload"
)

// Altair680DefaultROM is the monitor PROM image loaded when no ROM file is
// named on the command line.
const Altair680DefaultROM = "mits680b.bin"

// newAltair680 builds a MITS Altair 680b: a 6800 with 32k of RAM, an MC6850
// at 0xf000 and the 256 byte monitor PROM at 0xff00. The 768 byte socket at
// 0xfc00 held VTL-2 on some machines. It is mapped but left empty, programs
// that probe it read zeros.
func newAltair680(name string, subsystem string, cpuName string, romFile string, term peripherals.Terminal) (*Machine, error) {
	if subsystem != "" {
		return nil, curated.Errorf(UnsupportedSystem, name)
	}
	if cpuName != "" && cpuName != "6800" {
		return nil, curated.Errorf(UnsupportedCPU, cpuName, name)
	}

	mem := memory.NewDeviceMap()

	if err := mem.Map(0x0000, 0x7fff, memory.NewRAM(0x8000)); err != nil {
		return nil, err
	}
	if err := mem.Map(0xf000, 0xf001, mc6850.NewUART(term)); err != nil {
		return nil, err
	}
	if err := mem.Map(0xfc00, 0xfeff, memory.NewROM(0x300)); err != nil {
		return nil, err
	}
	if err := mem.Map(0xff00, 0xffff, memory.NewROM(0x100)); err != nil {
		return nil, err
	}

	if romFile == "" {
		romFile = Altair680DefaultROM
	}
	if err := romload.Load(romFile, mem, 0xff00); err != nil {
		return nil, err
	}

	return &Machine{
		Name: name,
		CPU:  mc6800.NewCPU(mem),
		Mem:  mem,
	}, nil
}
