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

// Package console attaches the hosting terminal to the emulated machine's
// serial port. The terminal is put into raw mode so that individual
// keypresses reach the UART immediately, without echo and without line
// buffering. Ctrl-C and friends still generate signals, but the usual
// interrupt characters are disabled so they can be typed into the guest.
//
// Console implements the peripherals.Terminal interface. Input runs on its
// own goroutine, started with Run, and received characters wait in a FIFO
// until the emulated UART collects them with NextChar.
package console

import (
	"os"
	"sync"

	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// sentinal error returned by NewConsole.
const (
	NotATerminal = "console: input is not a terminal (%v)"
)

// end of transmission. ctrl-d at the keyboard.
const eot = 0x04

// Console connects the hosting terminal to the machine. It implements the
// peripherals.Terminal interface.
type Console struct {
	input  *os.File
	output *os.File

	// terminal attributes at startup, reinstated by Restore()
	canonical unix.Termios

	// the FIFO is filled by the Run goroutine and drained by the emulation
	// goroutine
	mu   sync.Mutex
	fifo []uint8

	onInput    func()
	onShutdown func()
}

// NewConsole is the preferred method of initialisation for the Console type.
// The hosting terminal is placed into raw mode immediately. Call Restore
// before the program exits.
func NewConsole() (*Console, error) {
	con := &Console{
		input:  os.Stdin,
		output: os.Stdout,
	}

	err := termios.Tcgetattr(con.input.Fd(), &con.canonical)
	if err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	raw := con.canonical

	// keep signal generation but nothing else from the local flags. no echo
	// and no line buffering
	raw.Lflag = unix.ISIG

	// the interrupt characters are handed to the guest rather than
	// generating signals
	raw.Cc[unix.VINTR] = 0
	raw.Cc[unix.VQUIT] = 0
	raw.Cc[unix.VSUSP] = 0

	// reads block until at least one character is available
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(con.input.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	return con, nil
}

// Restore reinstates the terminal attributes that were in place before
// NewConsole.
func (con *Console) Restore() {
	_ = termios.Tcsetattr(con.input.Fd(), termios.TCSANOW, &con.canonical)
}

// OnInput registers a function to be called whenever a character arrives.
// Used by machines whose UART interrupts on received data. Must be set
// before Run is started.
func (con *Console) OnInput(f func()) {
	con.onInput = f
}

// OnShutdown registers a function to be called when the user closes the
// console with ctrl-d, or when input reaches EOF. Must be set before Run is
// started.
func (con *Console) OnShutdown(f func()) {
	con.onShutdown = f
}

// Run reads from the terminal until shutdown. It blocks and should be
// started on its own goroutine.
func (con *Console) Run() {
	buf := make([]uint8, 1)

	for {
		n, err := con.input.Read(buf)
		if err != nil || n == 0 || buf[0] == eot {
			if con.onShutdown != nil {
				con.onShutdown()
			}
			return
		}

		con.mu.Lock()
		con.fifo = append(con.fifo, buf[0])
		con.mu.Unlock()

		if con.onInput != nil {
			con.onInput()
		}
	}
}

// NextChar implements the peripherals.Terminal interface. Returns -1 when no
// input is waiting. It never blocks.
func (con *Console) NextChar() int {
	con.mu.Lock()
	defer con.mu.Unlock()

	if len(con.fifo) == 0 {
		return -1
	}

	c := con.fifo[0]
	con.fifo = con.fifo[1:]
	return int(c)
}

// Putchar implements the peripherals.Terminal interface.
func (con *Console) Putchar(c uint8) {
	_, _ = con.output.Write([]byte{c})
}
