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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherppc/debugger/dbgmem"
	"github.com/jetsetilly/gopherppc/debugger/terminal"
	"github.com/jetsetilly/gopherppc/emulation"
	"github.com/jetsetilly/gopherppc/logger"
	"github.com/jetsetilly/gopherppc/statsview"
)

const helpText = `BREAK <address>                  toggle a breakpoint
MEMCHECK <address> [READ|WRITE|RW] [LOG]
                                 toggle a memory access check
WATCH [LIST]                     list watches
WATCH SET <address> <name>       add a watch
WATCH DROP <num>                 remove a watch
WATCH ON|OFF <num>               enable or disable a watch
WATCH SAVE|LOAD <file>           save or load the watch list
WATCH CLEAR                      remove every watch
PEEK [ARAM] <address>            read memory for display
POKE <address> <value>           patch main memory
DISASM [<address> [<count>]]     disassemble from the address
PC [<address>]                   show or set the program counter
SYMBOL <address>                 describe the address
LIST                             list breakpoints and memchecks
CLEAR                            clear breakpoints, memchecks and watches
RUN / PAUSE                      change the machine state
LOG                              show recent log entries
MEMVIZ <file>                    dump debugger state as graphviz
STATS                            launch the runtime stats server
QUIT`

// parseAddress converts a token to an address. addresses can be written in
// any base understood by strconv (0x prefix for hexadecimal, etc.)
func parseAddress(token string) (uint32, error) {
	a, err := strconv.ParseUint(token, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s) expecting a 32-bit address", token)
	}
	return uint32(a), nil
}

// parseInput tokenises one line of input and executes it. errors are
// reported to the terminal; they never end the input loop.
func (dbg *Debugger) parseInput(input string) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	var err error

	switch command {
	case "HELP":
		for _, s := range strings.Split(helpText, "\n") {
			dbg.printLine(terminal.StyleFeedback, "%s", s)
		}

	case "QUIT", "EXIT":
		dbg.running = false

	case "BREAK":
		err = dbg.parseBreak(args)

	case "MEMCHECK":
		err = dbg.parseMemCheck(args)

	case "WATCH":
		err = dbg.parseWatch(args)

	case "PEEK":
		err = dbg.parsePeek(args)

	case "POKE":
		err = dbg.parsePoke(args)

	case "DISASM":
		err = dbg.parseDisasm(args)

	case "PC":
		err = dbg.parsePC(args)

	case "SYMBOL":
		err = dbg.parseSymbol(args)

	case "LIST":
		dbg.listHalts()

	case "CLEAR":
		dbg.Clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints, memchecks and watches cleared")

	case "RUN":
		err = dbg.setMachineState(emulation.Running)

	case "PAUSE":
		err = dbg.setMachineState(emulation.Paused)

	case "LOG":
		if !logger.Write(&termWriter{dbg: dbg}) {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		}

	case "MEMVIZ":
		err = dbg.parseMemViz(args)

	case "STATS":
		if statsview.Available() {
			statsview.Launch(&termWriter{dbg: dbg})
		} else {
			dbg.printLine(terminal.StyleFeedback, "no stats server in this build (build with the statsview tag)")
		}

	default:
		err = fmt.Errorf("unrecognised command (%s)", command)
	}

	if err != nil {
		dbg.printLine(terminal.StyleError, "%s", err)
	}
}

func (dbg *Debugger) parseBreak(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("BREAK expects a single address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	dbg.ToggleBreakpoint(addr)
	if dbg.IsBreakpoint(addr) {
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %08x", addr)
	} else {
		dbg.printLine(terminal.StyleFeedback, "breakpoint removed from %08x", addr)
	}

	return nil
}

func (dbg *Debugger) parseMemCheck(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("MEMCHECK expects an address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	// default memcheck fires on both read and write
	read := true
	write := true
	log := false

	for _, arg := range args[1:] {
		switch strings.ToUpper(arg) {
		case "READ":
			read = true
			write = false
		case "WRITE":
			read = false
			write = true
		case "RW":
			read = true
			write = true
		case "LOG":
			log = true
		default:
			return fmt.Errorf("unrecognised MEMCHECK option (%s)", arg)
		}
	}

	dbg.ToggleMemCheck(addr, read, write, log)
	if dbg.IsMemCheck(addr, 1) {
		dbg.printLine(terminal.StyleFeedback, "memcheck added at %08x", addr)
	} else {
		dbg.printLine(terminal.StyleFeedback, "memcheck removed from %08x", addr)
	}

	return nil
}

func (dbg *Debugger) parseWatch(args []string) error {
	if len(args) == 0 {
		dbg.listWatches()
		return nil
	}

	switch strings.ToUpper(args[0]) {
	case "LIST":
		dbg.listWatches()

	case "SET":
		if len(args) < 3 {
			return fmt.Errorf("WATCH SET expects an address and a name")
		}
		addr, err := parseAddress(args[1])
		if err != nil {
			return err
		}
		i := dbg.SetWatch(addr, strings.Join(args[2:], " "))
		dbg.printLine(terminal.StyleFeedback, "watch #%d set at %08x", i, addr)

	case "DROP":
		if len(args) != 2 {
			return fmt.Errorf("WATCH DROP expects a watch number")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid watch number (%s)", args[1])
		}
		return dbg.RemoveWatch(n)

	case "ON", "OFF":
		if len(args) != 2 {
			return fmt.Errorf("WATCH %s expects a watch number", strings.ToUpper(args[0]))
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid watch number (%s)", args[1])
		}
		if strings.ToUpper(args[0]) == "ON" {
			return dbg.EnableWatch(n)
		}
		return dbg.DisableWatch(n)

	case "SAVE":
		if len(args) != 2 {
			return fmt.Errorf("WATCH SAVE expects a filename")
		}
		lines := dbg.SaveWatchesToStrings()
		return os.WriteFile(args[1], []byte(strings.Join(lines, "\n")+"\n"), 0644)

	case "LOAD":
		if len(args) != 2 {
			return fmt.Errorf("WATCH LOAD expects a filename")
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		dbg.LoadWatchesFromStrings(strings.Split(strings.TrimSpace(string(b)), "\n"))
		dbg.listWatches()

	case "CLEAR":
		dbg.ClearWatches()

	default:
		return fmt.Errorf("unrecognised WATCH sub-command (%s)", args[0])
	}

	return nil
}

func (dbg *Debugger) listWatches() {
	watches := dbg.GetWatches()
	if len(watches) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no watches")
		return
	}
	dbg.printLine(terminal.StyleFeedback, "watches:")
	for i, w := range watches {
		dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, w)
	}
}

func (dbg *Debugger) listHalts() {
	breaks := dbg.session.Breakpoints.List()
	if len(breaks) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no breakpoints")
	} else {
		dbg.printLine(terminal.StyleFeedback, "breakpoints:")
		for i, b := range breaks {
			dbg.printLine(terminal.StyleFeedback, "% 2d: %08x", i, b)
		}
	}

	checks := dbg.session.MemChecks.List()
	if len(checks) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no memchecks")
	} else {
		dbg.printLine(terminal.StyleFeedback, "memchecks:")
		for i, c := range checks {
			dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, c)
		}
	}
}

func (dbg *Debugger) parsePeek(args []string) error {
	area := dbgmem.Primary
	if len(args) > 0 && strings.ToUpper(args[0]) == "ARAM" {
		area = dbgmem.Aux
		args = args[1:]
	}

	if len(args) != 1 {
		return fmt.Errorf("PEEK expects an address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "%08x -> %s", addr, dbg.RawMemoryString(area, addr))
	return nil
}

func (dbg *Debugger) parsePoke(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("POKE expects an address and a value")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	v, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid value (%s) expecting a 32-bit value", args[1])
	}

	dbg.Patch(addr, uint32(v))
	dbg.printLine(terminal.StyleFeedback, "%08x <- %s", addr, dbg.RawMemoryString(dbgmem.Primary, addr))
	return nil
}

func (dbg *Debugger) parseDisasm(args []string) error {
	addr := dbg.PC()
	ct := 8

	if len(args) > 0 {
		var err error
		addr, err = parseAddress(args[0])
		if err != nil {
			return err
		}
	}
	if len(args) > 1 {
		var err error
		ct, err = strconv.Atoi(args[1])
		if err != nil || ct < 1 {
			return fmt.Errorf("invalid instruction count (%s)", args[1])
		}
	}
	if len(args) > 2 {
		return fmt.Errorf("too many arguments for DISASM")
	}

	for i := 0; i < ct; i++ {
		a := addr + uint32(i*4)

		// mark breakpointed addresses in the listing
		mark := " "
		if dbg.IsBreakpoint(a) {
			mark = "*"
		}

		d := dbg.Disassemble(a)
		if desc := dbg.GetDescription(a); desc != "" {
			d = fmt.Sprintf("%s\t; %s", d, desc)
		}
		dbg.printLine(terminal.StyleInstruction, "%s %08x  %s", mark, a, d)
	}

	return nil
}

func (dbg *Debugger) parsePC(args []string) error {
	switch len(args) {
	case 0:
		dbg.printLine(terminal.StyleFeedback, "pc = %08x", dbg.PC())
	case 1:
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		dbg.SetPC(addr)
	default:
		return fmt.Errorf("too many arguments for PC")
	}
	return nil
}

func (dbg *Debugger) parseSymbol(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("SYMBOL expects an address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	desc := dbg.GetDescription(addr)
	if desc == "" {
		dbg.printLine(terminal.StyleFeedback, "no symbol at %08x", addr)
	} else {
		dbg.printLine(terminal.StyleFeedback, "%08x: %s (color %06x)", addr, desc, dbg.GetColor(addr))
	}
	return nil
}

func (dbg *Debugger) setMachineState(state emulation.State) error {
	setter, ok := dbg.session.Emulation.(emulation.StateSetter)
	if !ok {
		return fmt.Errorf("the machine does not allow state changes from the debugger")
	}
	setter.SetState(state)
	return nil
}

func (dbg *Debugger) parseMemViz(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("MEMVIZ expects a filename")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, dbg.watches, dbg.session.Breakpoints, dbg.session.MemChecks)
	dbg.printLine(terminal.StyleFeedback, "halt state written to %s", args[0])
	return nil
}

// termWriter presents the attached terminal as an io.Writer. log entries
// and other multi-line output are printed line by line in the log style.
type termWriter struct {
	dbg *Debugger
}

func (w *termWriter) Write(p []byte) (int, error) {
	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.dbg.printLine(terminal.StyleLog, "%s", s)
	}
	return len(p), nil
}
