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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8bit/console"
	"github.com/jetsetilly/gopher8bit/hardware"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/statsview"
	"github.com/jetsetilly/gopher8bit/version"
)

func main() {
	os.Exit(launch())
}

// launch is a separate function so that deferred functions run before the
// program exits with os.Exit.
func launch() int {
	system := flag.String("system", "6809", "system to emulate: 6809, 6809-obc, altair680, kaypro, rc2014")
	cpuName := flag.String("cpu", "", "override the CPU for systems that take more than one")
	romFile := flag.String("rom", "", "ROM image, overriding the system default")
	memvizFile := flag.String("memviz", "", "write a dot graph of the machine structure to the named file")
	echoLog := flag.Bool("log", false, "echo log entries to stderr as they happen")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		vers, _ := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
		return 0
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	con, err := console.NewConsole()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer con.Restore()

	m, err := hardware.NewMachine(*system, *cpuName, *romFile, con)
	if err != nil {
		con.Restore()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *memvizFile != "" {
		if err := dumpStructure(m, *memvizFile); err != nil {
			con.Restore()
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	// ctrl-d at the console stops the machine. the interrupt characters are
	// typed into the guest instead of generating signals, so a SIGTERM from
	// outside is the other way to stop cleanly
	con.OnShutdown(m.Quit)
	if m.OnInput != nil {
		con.OnInput(m.OnInput)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)
	go func() {
		<-sigs
		m.Quit()
	}()

	// the machine gets its own goroutine. the console reader stays on this
	// one until the machine stops
	done := make(chan error, 1)
	go func() {
		done <- m.Run()
	}()
	go con.Run()

	err = <-done
	if err != nil {
		con.Restore()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// dumpStructure writes the object graph of the machine in graphviz dot
// format. Useful for seeing how a preset has been put together.
func dumpStructure(m *hardware.Machine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, m)
	return nil
}
