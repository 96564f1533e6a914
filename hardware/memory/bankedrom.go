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

// BankedROM is a read-only memory larger than its visible window. Only one
// bank, of window size, is visible on the bus at a time. Load8() addresses
// the whole underlying image, so a full sized ROM file can be installed
// before the machine starts regardless of the selected bank.
type BankedROM struct {
	data   []uint8
	window int
	bank   int
}

// NewBankedROM is the preferred method of initialisation for the BankedROM
// type. Size is the full extent of the underlying image and window is the
// number of bytes visible on the bus. Bank zero is selected initially.
func NewBankedROM(size int, window int) *BankedROM {
	return &BankedROM{
		data:   make([]uint8, size),
		window: window,
	}
}

// SelectBank changes which bank is visible on the bus.
func (r *BankedROM) SelectBank(bank int) {
	r.bank = bank % (len(r.data) / r.window)
}

// Bank returns the currently selected bank.
func (r *BankedROM) Bank() int {
	return r.bank
}

// Read8 implements the bus.Device interface.
func (r *BankedROM) Read8(address uint16) uint8 {
	return r.data[r.bank*r.window+int(address)%r.window]
}

// Write8 implements the bus.Device interface. Writes to ROM are dropped.
func (r *BankedROM) Write8(address uint16, _ uint8) {
	logger.Logf("memory", "write to banked ROM address %#04x dropped", address)
}

// Load8 implements the bus.DeviceLoader interface. Unlike Read8(), the
// address refers to the full underlying image and not the visible window.
func (r *BankedROM) Load8(address uint16, data uint8) {
	r.data[int(address)%len(r.data)] = data
}
