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

// Package memory implements the address space of an emulated machine. The
// central type is the DeviceMap, which routes bus accesses to the devices
// mapped into the address space. The package also provides the common device
// types that machines are built from: RAM, ROM and bank-switched ROM.
package memory

import (
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Error patterns for the memory package.
const (
	MappingOverlap = "memory: mapping %#04x to %#04x overlaps existing device"
	MappingOrder   = "memory: mapping %#04x to %#04x is not a valid range"
)

// span records a device and the range of bus addresses it responds to. the
// base field allows a device to be mapped more than once, or at an address
// other than its natural origin. the device sees address-base.
type span struct {
	lo   uint16
	hi   uint16
	base uint16
	dev  bus.Device
}

// DeviceMap is an address space made up of devices mapped at fixed address
// ranges. It satisfies the bus.Memory interface so a CPU core can be attached
// to it directly.
//
// Accesses to addresses with no mapped device follow the open bus rule: reads
// return zero and writes are dropped. Dropped writes are noted in the central
// log, which is the first place to look when a machine definition has a hole
// in it.
type DeviceMap struct {
	spans []span
}

// NewDeviceMap is the preferred method of initialisation for the DeviceMap
// type.
func NewDeviceMap() *DeviceMap {
	return &DeviceMap{}
}

// Map attaches a device to the address range lo to hi inclusive. The device
// sees addresses relative to lo.
func (m *DeviceMap) Map(lo uint16, hi uint16, dev bus.Device) error {
	return m.MapRebased(lo, hi, lo, dev)
}

// MapRebased attaches a device to the address range lo to hi inclusive, with
// the device seeing addresses relative to base rather than lo. This is how a
// device larger than its visible window, or a partial view of a device, is
// mapped.
func (m *DeviceMap) MapRebased(lo uint16, hi uint16, base uint16, dev bus.Device) error {
	if hi < lo {
		return curated.Errorf(MappingOrder, lo, hi)
	}

	for _, s := range m.spans {
		if lo <= s.hi && hi >= s.lo {
			return curated.Errorf(MappingOverlap, lo, hi)
		}
	}

	m.spans = append(m.spans, span{lo: lo, hi: hi, base: base, dev: dev})
	return nil
}

// lookup the span containing the address. the span list is short, a handful
// of entries for every supported machine, so a linear scan is fine.
func (m *DeviceMap) lookup(address uint16) *span {
	for i := range m.spans {
		if address >= m.spans[i].lo && address <= m.spans[i].hi {
			return &m.spans[i]
		}
	}
	return nil
}

// Read8 implements the bus.Memory interface.
func (m *DeviceMap) Read8(address uint16) uint8 {
	s := m.lookup(address)
	if s == nil {
		return 0
	}
	return s.dev.Read8(address - s.base)
}

// Write8 implements the bus.Memory interface.
func (m *DeviceMap) Write8(address uint16, data uint8) {
	s := m.lookup(address)
	if s == nil {
		logger.Logf("memory", "write to unmapped address %#04x dropped", address)
		return
	}
	s.dev.Write8(address-s.base, data)
}

// Read16 implements the bus.Memory interface. The access is made as two
// eight-bit reads in the order dictated by the endian argument.
func (m *DeviceMap) Read16(address uint16, endian bus.Endian) uint16 {
	a := m.Read8(address)
	b := m.Read8(address + 1)
	if endian == bus.Big {
		return uint16(a)<<8 | uint16(b)
	}
	return uint16(b)<<8 | uint16(a)
}

// Write16 implements the bus.Memory interface. The access is made as two
// eight-bit writes in the order dictated by the endian argument.
func (m *DeviceMap) Write16(address uint16, data uint16, endian bus.Endian) {
	if endian == bus.Big {
		m.Write8(address, uint8(data>>8))
		m.Write8(address+1, uint8(data))
		return
	}
	m.Write8(address, uint8(data))
	m.Write8(address+1, uint8(data>>8))
}

// Load8 pokes data into the address space outside of the normal bus protocol.
// Devices that implement bus.DeviceLoader, ROM in particular, accept the data
// even though a CPU initiated write would be dropped. It is used by the ROM
// loading path before the machine starts.
func (m *DeviceMap) Load8(address uint16, data uint8) {
	s := m.lookup(address)
	if s == nil {
		logger.Logf("memory", "load to unmapped address %#04x dropped", address)
		return
	}
	if l, ok := s.dev.(bus.DeviceLoader); ok {
		l.Load8(address-s.base, data)
		return
	}
	s.dev.Write8(address-s.base, data)
}
