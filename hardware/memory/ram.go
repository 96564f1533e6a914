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

// RAM is a block of read/write memory. Accesses beyond the size of the block
// wrap around, which is how a partially decoded address bus behaves when a
// small RAM chip is mapped into a larger window.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Size
// must be a power of two.
func NewRAM(size int) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read8 implements the bus.Device interface.
func (r *RAM) Read8(address uint16) uint8 {
	return r.data[int(address)%len(r.data)]
}

// Write8 implements the bus.Device interface.
func (r *RAM) Write8(address uint16, data uint8) {
	r.data[int(address)%len(r.data)] = data
}
