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

package terminal

// Style is used to hint to the terminal how a line of output should be
// presented. Terminals that can't differentiate styles are free to ignore
// the hint.
type Style int

// List of terminal styles.
const (
	// the default style for interaction feedback
	StyleFeedback Style = iota

	// disassembly and other machine generated text
	StyleInstruction

	// log lines requested with the LOG command
	StyleLog

	// command errors. terminals display these even when silenced
	StyleError
)

// Prompt is the text presented at the start of an input line.
type Prompt struct {
	Content string
}

func (p Prompt) String() string {
	return p.Content
}
