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

package version

// The name to use when referring to the application
const ApplicationName = "Gopher8Bit"

// number is set through the linker when a release is built. if it is empty
// then the project was built by hand and the version is reported as
// "unreleased"
var number string

// Version returns the version string and whether this is a numbered release
// version.
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}
