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

package memory

import (
	"github.com/jetsetilly/gopher8bit/logger"
)

// ROM is a block of read-only memory. Writes from the CPU are dropped with a
// note in the central log. Content is installed with Load8(), which is only
// reachable through the DeviceMap load path.
type ROM struct {
	data []uint8
}

// NewROM is the preferred method of initialisation for the ROM type.
func NewROM(size int) *ROM {
	return &ROM{
		data: make([]uint8, size),
	}
}

// Read8 implements the bus.Device interface.
func (r *ROM) Read8(address uint16) uint8 {
	return r.data[int(address)%len(r.data)]
}

// Write8 implements the bus.Device interface. Writes to ROM are dropped.
func (r *ROM) Write8(address uint16, _ uint8) {
	logger.Logf("memory", "write to ROM address %#04x dropped", address)
}

// Load8 implements the bus.DeviceLoader interface.
func (r *ROM) Load8(address uint16, data uint8) {
	r.data[int(address)%len(r.data)] = data
}
