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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern differentiates curated errors:
//
//	e := curated.Errorf("power off: %d", 10)
//
//	if curated.Is(e, "power off: %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether a pattern occurs anywhere
// in the error chain, rather than just the outermost error.
//
// The IsAny() function answers whether the error was created by this package
// at all. Put another way, it differentiates 'expected' errors (raised with a
// known pattern) from 'unexpected' errors raised elsewhere.
//
// The Error() function implementation normalises the error chain, removing
// duplicate adjacent parts. The practical advantage is that it alleviates the
// problem of when and how to wrap errors: a function can always wrap with its
// own message part and the user will never see stuttering output like:
//
//	error: error: unimplemented opcode
//
// For the purposes of this package a chain is composed of parts separated by
// the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// There is no special provision for sentinel errors but they are achievable
// in practice through the Is() and Has() functions. Sentinel patterns should
// be stored as a const string, suitably named and commented.
package curated
