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

package romload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/romload"
	"github.com/jetsetilly/gopher8bit/test"
)

// recordingLoader notes every byte poked into the address space.
type recordingLoader struct {
	mem map[uint16]uint8
}

func newRecordingLoader() *recordingLoader {
	return &recordingLoader{mem: make(map[uint16]uint8)}
}

func (l *recordingLoader) Load8(address uint16, data uint8) {
	l.mem[address] = data
}

func tempFile(t *testing.T, content []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "rom")
	if err := os.WriteFile(fn, content, 0600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestRawBinary(t *testing.T) {
	fn := tempFile(t, []byte{0x86, 0x41, 0x3e})
	l := newRecordingLoader()

	err := romload.Load(fn, l, 0xff00)
	test.ExpectedSuccess(t, err)

	test.Equate(t, l.mem[0xff00], 0x86)
	test.Equate(t, l.mem[0xff01], 0x41)
	test.Equate(t, l.mem[0xff02], 0x3e)
	test.Equate(t, len(l.mem), 3)
}

func TestIntelHex(t *testing.T) {
	fn := tempFile(t, []byte(":02100000ABCD76\r\n:01200000429D\r\n:00000001FF\r\n"))
	l := newRecordingLoader()

	// the base address is ignored for hex files
	err := romload.Load(fn, l, 0x1234)
	test.ExpectedSuccess(t, err)

	test.Equate(t, l.mem[0x1000], 0xab)
	test.Equate(t, l.mem[0x1001], 0xcd)
	test.Equate(t, l.mem[0x2000], 0x42)
	test.Equate(t, len(l.mem), 3)
}

func TestBadRecordType(t *testing.T) {
	fn := tempFile(t, []byte(":020000040000FA\n"))
	l := newRecordingLoader()

	err := romload.Load(fn, l, 0)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, romload.BadRecordType), true)
}

func TestMissingTerminator(t *testing.T) {
	fn := tempFile(t, []byte(":02100000ABCD76\n"))
	l := newRecordingLoader()

	err := romload.Load(fn, l, 0)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, romload.NoTerminator), true)
}

func TestMalformedRecord(t *testing.T) {
	fn := tempFile(t, []byte(":02100000ABCD76\nnot a record\n"))
	l := newRecordingLoader()

	err := romload.Load(fn, l, 0)
	test.ExpectedFailure(t, err)
}

func TestMissingFile(t *testing.T) {
	l := newRecordingLoader()

	err := romload.Load(filepath.Join(t.TempDir(), "no-such-rom"), l, 0)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, romload.FileError), true)
}
