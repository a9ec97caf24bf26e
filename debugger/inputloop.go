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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherppc/debugger/terminal"
	"github.com/jetsetilly/gopherppc/emulation"
)

// Run attaches the terminal to the debugger and services commands until
// the user quits or input is exhausted.
func (dbg *Debugger) Run(term terminal.Terminal) error {
	err := term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer term.CleanUp()

	dbg.term = term
	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			return terminal.UserInterrupt
		},
	}

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	dbg.running = true
	for dbg.running {
		input, err := term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			// ctrl-c and end of input both end the debugging session
			// cleanly
			if errors.Is(err, terminal.UserInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		dbg.parseInput(input)
	}

	return nil
}

// prompt returns the string presented at the start of every input line.
// the program counter is only meaningful when the machine is stable.
func (dbg *Debugger) prompt() terminal.Prompt {
	state := dbg.session.Emulation.State()

	var s string
	switch {
	case !state.Alive():
		s = "[ no machine ] "
	case state == emulation.Running:
		s = "[ running ] "
	default:
		s = fmt.Sprintf("[ %08x ] ", dbg.PC())
	}

	return terminal.Prompt{Content: s}
}
