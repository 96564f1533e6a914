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

// Package romload installs ROM images into a machine's address space. Two
// formats are understood: Intel HEX, where each record carries its own load
// address, and raw binary, which is loaded at the address supplied by the
// caller. The format is sniffed from the first byte of the file. An Intel
// HEX file always begins with a colon.
package romload

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/bus"
	"github.com/jetsetilly/gopher8bit/logger"
)

// Error patterns for the romload package.
const (
	FileError     = "romload: %v"
	ShortRecord   = "romload: record too short: %s"
	BadHexDigit   = "romload: bad hex digit in record: %s"
	BadRecordType = "romload: unsupported record type %d"
	NoTerminator  = "romload: no end of file record"
)

// Intel HEX record types. extended addressing types are not supported, none
// of the ROMs for the machines we emulate reach beyond 64k.
const (
	recordData = 0
	recordEOF  = 1
)

// Load reads the named file and installs it through the loader. Intel HEX
// files place data at the addresses named in their records and base is
// ignored. Raw binary files are placed at base.
func Load(filename string, loader bus.DeviceLoader, base uint16) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	b, err := r.Peek(1)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	if b[0] == ':' {
		return loadHex(r, loader)
	}
	return loadRaw(r, loader, base)
}

// loadRaw copies the stream into the loader byte by byte, starting at base.
func loadRaw(r io.Reader, loader bus.DeviceLoader, base uint16) error {
	buf := make([]uint8, 4096)
	address := base

	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			loader.Load8(address, buf[i])
			address++
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return curated.Errorf(FileError, err)
		}
	}
}

// loadHex parses the stream as Intel HEX records.
func loadHex(r io.Reader, loader bus.DeviceLoader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] != ':' {
			return curated.Errorf(ShortRecord, line)
		}

		rec, err := hex.DecodeString(line[1:])
		if err != nil {
			return curated.Errorf(BadHexDigit, line)
		}

		// length, address, type and checksum fields
		if len(rec) < 5 {
			return curated.Errorf(ShortRecord, line)
		}

		length := int(rec[0])
		address := uint16(rec[1])<<8 | uint16(rec[2])
		typ := int(rec[3])

		if len(rec) < 5+length {
			return curated.Errorf(ShortRecord, line)
		}

		// the record sums to zero when the checksum is good. a bad checksum
		// is noted but the data is used anyway
		var sum uint8
		for _, b := range rec[:5+length] {
			sum += b
		}
		if sum != 0 {
			logger.Logf("romload", "checksum mismatch at address %#04x", address)
		}

		switch typ {
		case recordData:
			for i := 0; i < length; i++ {
				loader.Load8(address+uint16(i), rec[4+i])
			}
		case recordEOF:
			return nil
		default:
			return curated.Errorf(BadRecordType, typ)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(FileError, err)
	}

	return curated.Errorf(NoTerminator)
}
