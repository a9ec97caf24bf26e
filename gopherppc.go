// This file is part of GopherPPC.
//
// GopherPPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPPC.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/gopherppc/debugger"
	"github.com/jetsetilly/gopherppc/debugger/terminal"
	"github.com/jetsetilly/gopherppc/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherppc/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherppc/hardware"
	"github.com/jetsetilly/gopherppc/logger"
	"github.com/jetsetilly/gopherppc/symbols"
	"github.com/jetsetilly/gopherppc/version"
)

const (
	ramSize  = 1 << 20
	aramSize = 1 << 16
)

func main() {
	plain := flag.Bool("plain", false, "use the plain terminal (no color, no line editing)")
	echoLog := flag.Bool("log", false, "echo log entries to stderr as they happen")
	showVersion := flag.Bool("version", false, "print version information and quit")
	flag.Parse()

	if *showVersion {
		v, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
		os.Exit(0)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	mach := hardware.NewMachine(ramSize, aramSize)
	mach.Boot()
	defer mach.Shutdown()

	seedMachine(mach)

	dbg := debugger.NewDebugger(mach.Session(), demoSymbols(), ppcDecoder{})

	var term terminal.Terminal
	if *plain {
		term = &plainterm.PlainTerminal{}
	} else {
		term = &colorterm.ColorTerminal{}
	}

	if err := dbg.Run(term); err != nil {
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		os.Exit(10)
	}
}

// seedMachine fills memory with a small program so there is something to
// look at from a fresh debugger session.
func seedMachine(mach *hardware.Machine) {
	program := []uint32{
		0x3c608000, // lis r3,-32768
		0x38800040, // li r4,64
		0x80a30040, // lwz r5,64(r3)
		0x7ca42a14, // add r5,r4,r5
		0x90a30040, // stw r5,64(r3)
		0x04000000, // hle hook
		0x4e800020, // blr
	}
	for i, op := range program {
		mach.Write32(hardware.RAMOrigin+uint32(i*4), op)
	}

	for i := 0; i < 16; i++ {
		mach.PokeARAM(uint32(i), uint8(i*0x11))
	}
}

// demoSymbols builds a symbol table describing the seed program.
func demoSymbols() *symbols.Table {
	tbl := symbols.NewTable()
	tbl.Add("main", hardware.RAMOrigin, 0x1c, symbols.Function)
	tbl.Add("accumulator", hardware.RAMOrigin+0x40, 4, symbols.Data)
	return tbl
}
