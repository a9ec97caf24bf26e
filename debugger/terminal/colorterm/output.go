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

package colorterm

import (
	"github.com/jetsetilly/gopherppc/debugger/terminal"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.Print("\r")

	switch style {
	case terminal.StyleFeedback:
		ct.Print(penDim)
	case terminal.StyleInstruction:
		ct.Print(penYellow)
	case terminal.StyleLog:
		ct.Print(penCyan)
	case terminal.StyleError:
		ct.Print(penRed)
		ct.Print("* ")
	}

	ct.Print("%s", s)
	ct.Print(penOff)
	ct.Print("\n")
}
