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
	"bufio"
	"io"
	"strings"

	"github.com/jetsetilly/gopherppc/debugger/terminal"
)

type readRune struct {
	r   rune
	err error
}

// runeReader pumps runes from the input file onto a channel so that
// TermRead can wait for input and for signals at the same time.
type runeReader struct {
	ch chan readRune
}

func initRuneReader(input io.Reader) runeReader {
	rr := runeReader{ch: make(chan readRune)}

	br := bufio.NewReader(input)
	go func() {
		for {
			r, _, err := br.ReadRune()
			rr.ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	// the terminal is in cbreak mode for the duration of the read so we
	// can echo and edit the line ourselves
	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.Print("\r%s%s%s", penBold, prompt.String(), penOff)

	input := strings.Builder{}

	for {
		select {
		case sig := <-events.Signal:
			ct.Print("\n")
			return "", events.SignalHandler(sig)

		case r := <-ct.reader.ch:
			if r.err != nil {
				return "", r.err
			}

			switch r.r {
			case '\n', '\r':
				ct.Print("\n")
				return input.String(), nil

			case '\b', 0x7f:
				s := input.String()
				if len(s) > 0 {
					input.Reset()
					input.WriteString(s[:len(s)-1])
					ct.Print("\b \b")
				}

			default:
				if r.r >= ' ' {
					input.WriteRune(r.r)
					ct.Print("%c", r.r)
				}
			}
		}
	}
}
