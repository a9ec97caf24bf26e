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

// the ansi pens used by the color terminal. simple SGR sequences; anything
// fancier than this and we should be using a real TUI package.
const (
	penOff    = "\033[0m"
	penBold   = "\033[1m"
	penDim    = "\033[2m"
	penRed    = "\033[31;1m"
	penYellow = "\033[33;1m"
	penCyan   = "\033[36m"
)
