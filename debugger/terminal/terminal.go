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

// Package terminal defines the operations required by the command line
// interface to the debugger. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

import (
	"errors"
	"os"
)

// UserInterrupt is returned by TermRead if an interrupt signal was caught
// while waiting for input.
var UserInterrupt = errors.New("user interrupt")

// ReadEvents is the collection of channels that must be monitored during a
// TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// SignalHandler is called when a signal arrives. the returned error is
	// passed on as the result of the interrupted TermRead.
	SignalHandler func(sig os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input. If possible the
	// implementation should regularly check the ReadEvents channels for
	// activity while waiting.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive() should return true for implementations that expect
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for
	// example, returning the terminal to canonical mode.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
