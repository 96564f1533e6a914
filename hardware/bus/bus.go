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

// Package bus defines the access interfaces between the CPU cores and the
// rest of the machine. CPU implementations only ever see these interfaces,
// never the concrete memory types. This means a CPU core can be tested
// against a flat block of RAM and later attached to a fully populated device
// map without change.
package bus

// Endian describes the byte order of a 16-bit access on the data bus. The
// Motorola CPUs are big-endian and the Zilog Z80 is little-endian. Endianness
// is a property of the CPU making the access, not of the memory being
// accessed, which is why it travels with every 16-bit call.
type Endian int

// List of valid Endian values.
const (
	Big Endian = iota
	Little
)

// Memory is the memory bus as seen by a CPU core.
//
// Reads of unmapped addresses return zero and writes to unmapped addresses
// are quietly dropped. This mirrors a real data bus, where nothing drives the
// lines, and means a runaway program fails in a recognisable way rather than
// crashing the emulator.
type Memory interface {
	Read8(address uint16) uint8
	Write8(address uint16, data uint8)
	Read16(address uint16, endian Endian) uint16
	Write16(address uint16, data uint16, endian Endian)
}

// IO is the port-mapped input/output bus. Of the implemented CPUs only the
// Z80 has one. Port addresses are eight bits wide.
type IO interface {
	IORead8(port uint8) uint8
	IOWrite8(port uint8, data uint8)
}

// Device is a block of hardware that can be attached to an address span of a
// DeviceMap. Addresses are local to the device. The device at the bottom of
// a machine's address space sees address zero for the lowest mapped address.
type Device interface {
	Read8(address uint16) uint8
	Write8(address uint16, data uint8)
}

// DeviceLoader is implemented by devices that can accept data outside of the
// normal bus protocol. ROM images are installed this way, sidestepping the
// write protection that applies to CPU initiated writes.
type DeviceLoader interface {
	Load8(address uint16, data uint8)
}

// InterruptLine is implemented by CPUs that accept a maskable interrupt from
// a peripheral. The line is level triggered. It stays asserted until the
// peripheral lowers it.
type InterruptLine interface {
	RaiseIRQ()
	LowerIRQ()
}
