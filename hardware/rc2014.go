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
	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals/sio"
	"github.com/jetsetilly/gopher8bit/romload"
)

// RC2014DefaultROM is the image loaded when no ROM file is named on the
// command line. The stock part is a 64k EPROM of which one 8k bank is
// selected by jumpers.
const RC2014DefaultROM = "rom/rc2014/24886009.BIN"

// newRC2014 builds an RC2014: a Z80 with an 8k window onto the 64k ROM at
// the bottom of the address space, the top half of the 64k RAM visible from
// 0x8000, and an SIO/2 serial port that interrupts on received data.
//
// The bank jumpers are fixed in the zero position, which is where the stock
// ROM expects them.
func newRC2014(name string, subsystem string, cpuName string, romFile string, term peripherals.Terminal) (*Machine, error) {
	if subsystem != "" {
		return nil, curated.Errorf(UnsupportedSystem, name)
	}
	if cpuName != "" && cpuName != "z80" {
		return nil, curated.Errorf(UnsupportedCPU, cpuName, name)
	}

	rom := memory.NewBankedROM(0x10000, 0x2000)

	mem := memory.NewDeviceMap()
	if err := mem.Map(0x0000, 0x1fff, rom); err != nil {
		return nil, err
	}

	// the RAM module decodes the full address but only the top half is
	// selected. the bottom half of the chip is never seen on the bus
	if err := mem.MapRebased(0x8000, 0xffff, 0x0000, memory.NewRAM(0x10000)); err != nil {
		return nil, err
	}

	if romFile == "" {
		romFile = RC2014DefaultROM
	}

	// the ROM file is the full 64k image so it is installed into the device
	// directly rather than through the 8k window
	if err := romload.Load(romFile, rom, 0x0000); err != nil {
		return nil, err
	}

	// the SIO raises the CPU's interrupt line so the CPU has to exist first
	cpu := z80.NewCPU(mem, nil)
	s := sio.NewSIO(term, cpu)
	cpu.AttachIO(s)

	return &Machine{
		Name:    name,
		CPU:     cpu,
		Mem:     mem,
		IO:      s,
		OnInput: s.NotifyInput,
	}, nil
}
