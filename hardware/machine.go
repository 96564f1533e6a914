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

// Package hardware assembles CPU cores, memory maps and peripherals into
// complete machines. Each supported machine is a preset in its own file,
// reached through NewMachine.
//
// A Machine runs on its own goroutine, started by the Run function. The
// console goroutine asks it to stop with Quit. The shutdown flag is the only
// shared state between the two and is accessed atomically.
package hardware

import (
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/mc6800"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/mc6809"
	"github.com/jetsetilly/gopher8bit/hardware/cpu/z80"
	"github.com/jetsetilly/gopher8bit/hardware/memory"
	"github.com/jetsetilly/gopher8bit/hardware/peripherals"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Error patterns for the hardware package.
const (
	UnsupportedSystem = "hardware: unsupported system %s"
	UnsupportedCPU    = "hardware: cpu %s cannot drive system %s"
)

// CPU is the view of a processor core from the machine driver. All three
// cores satisfy it.
type CPU interface {
	Reset()
	Step() error
}

// Machine is a complete emulated computer.
type Machine struct {
	Name string
	CPU  CPU
	Mem  *memory.DeviceMap

	// the IO bus. nil for machines whose CPU has no IO space
	IO bus.IO

	// OnInput is called by the console layer whenever a character arrives.
	// Machines whose UART interrupts on received data hook it. May be nil.
	OnInput func()

	shutdown int32
}

// NewMachine builds the machine named by system. Names of the form
// "main-sub" select a variant of a machine, for example "6809-obc". The
// cpuName argument overrides the CPU for machines that support more than
// one, the empty string selecting the default. The romFile argument
// overrides the machine's default ROM image, again with the empty string
// selecting the default.
func NewMachine(system string, cpuName string, romFile string, term peripherals.Terminal) (*Machine, error) {
	mainsystem := system
	subsystem := ""
	if pos := strings.Index(system, "-"); pos != -1 {
		mainsystem = system[:pos]
		subsystem = system[pos+1:]
	}

	switch mainsystem {
	case "6809":
		return newSystem09(system, subsystem, cpuName, romFile, term)
	case "altair680":
		return newAltair680(system, subsystem, cpuName, romFile, term)
	case "kaypro":
		return newKaypro(system, subsystem, cpuName, romFile, term)
	case "rc2014":
		return newRC2014(system, subsystem, cpuName, romFile, term)
	}

	return nil, curated.Errorf(UnsupportedSystem, system)
}

// Run is the main loop of the machine. It blocks until the program
// terminates itself, the machine is stopped with Quit, or the CPU faults.
// Termination by the running program, a deliberate self-jump or a Z80 HALT,
// is a clean exit and returns nil.
func (m *Machine) Run() error {
	m.CPU.Reset()

	for atomic.LoadInt32(&m.shutdown) == 0 {
		err := m.CPU.Step()
		if err != nil {
			if cleanExit(err) {
				logger.Logf("hardware", "%v", err)
				return nil
			}
			return err
		}
	}

	return nil
}

// Quit asks the run loop to stop. Safe to call from any goroutine. The loop
// notices at the next instruction boundary.
func (m *Machine) Quit() {
	atomic.StoreInt32(&m.shutdown, 1)
}

// cleanExit distinguishes the errors that mean the running program has
// finished from real faults.
func cleanExit(err error) bool {
	return curated.Is(err, mc6800.ProgramTrap) ||
		curated.Is(err, mc6809.ProgramTrap) ||
		curated.Is(err, z80.ProgramTrap) ||
		curated.Is(err, z80.Halt)
}
