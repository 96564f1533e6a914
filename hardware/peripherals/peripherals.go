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

// Package peripherals defines the connection between the UART emulations
// and whatever is acting as the attached terminal. The console package
// provides the real implementation. Tests provide scripted ones.
package peripherals

// Terminal is the two wires out the back of a UART.
type Terminal interface {
	// NextChar returns the next character waiting at the terminal, or -1
	// if there is none. It never blocks.
	NextChar() int

	// Putchar sends a character to the terminal.
	Putchar(c uint8)
}
