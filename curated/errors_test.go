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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")

	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, "some other pattern"), false)

	// uncurated errors are never matched
	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Is(nil, testPattern), false)
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf("wrapping: %v", e)

	// Is() only matches the outermost pattern
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Has(f, testPattern), true)
	test.Equate(t, curated.Has(f, "wrapping: %v"), true)
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("inner")))

	// adjacent duplicate parts are removed when the message is formatted
	test.Equate(t, e.Error(), "error: inner")
}
