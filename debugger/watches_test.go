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
	"testing"

	"github.com/jetsetilly/gopherppc/test"
)

func TestWatches(t *testing.T) {
	wtc := newWatches()

	i := wtc.set(0x80001000, "foo")
	test.Equate(t, i, 0)
	i = wtc.set(0x80002000, "bar")
	test.Equate(t, i, 1)

	w, err := wtc.get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w.Address, 0x80001000)
	test.Equate(t, w.Name, "foo")
	test.Equate(t, w.Enabled, true)

	// indices shift down on removal
	err = wtc.drop(0)
	test.ExpectedSuccess(t, err)
	w, err = wtc.get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w.Name, "bar")

	// the old highest index is no longer defined
	_, err = wtc.get(1)
	test.ExpectedFailure(t, err)
}

func TestWatchesOutOfRange(t *testing.T) {
	wtc := newWatches()
	wtc.set(0x80001000, "foo")

	_, err := wtc.get(-1)
	test.ExpectedFailure(t, err)
	_, err = wtc.get(1)
	test.ExpectedFailure(t, err)
	test.ExpectedFailure(t, wtc.drop(1))
	test.ExpectedFailure(t, wtc.enable(1, true))
	test.ExpectedFailure(t, wtc.update(1, 0x80002000, "bar"))
	test.ExpectedFailure(t, wtc.updateAddress(1, 0x80002000))
	test.ExpectedFailure(t, wtc.updateName(1, "bar"))
}

func TestWatchesEnable(t *testing.T) {
	wtc := newWatches()

	wtc.set(0x80001000, "foo")
	test.Equate(t, wtc.hasEnabled(0x80001000), true)
	test.Equate(t, wtc.hasEnabled(0x80002000), false)

	test.ExpectedSuccess(t, wtc.enable(0, false))
	test.Equate(t, wtc.hasEnabled(0x80001000), false)

	// a disabled watch is still defined
	w, err := wtc.get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w.Enabled, false)

	test.ExpectedSuccess(t, wtc.enable(0, true))
	test.Equate(t, wtc.hasEnabled(0x80001000), true)
}

func TestWatchesUnset(t *testing.T) {
	wtc := newWatches()

	wtc.set(0x80001000, "foo")
	wtc.set(0x80001000, "bar")
	wtc.set(0x80002000, "baz")

	// unset removes only the first watch on the address
	wtc.unset(0x80001000)
	l := wtc.list()
	test.Equate(t, len(l), 2)
	test.Equate(t, l[0].Name, "bar")
	test.Equate(t, l[1].Name, "baz")

	// unsetting an unwatched address is a no-op
	wtc.unset(0x80003000)
	test.Equate(t, len(wtc.list()), 2)
}

func TestWatchesSaveLoad(t *testing.T) {
	wtc := newWatches()

	// names can contain spaces. the quoting in the save format preserves
	// them across the round-trip
	wtc.set(0x80001000, "player position")
	wtc.set(0x80002000, "score")
	_ = wtc.enable(1, false)

	lines := wtc.saveToStrings()
	test.Equate(t, len(lines), 2)
	test.Equate(t, lines[0], `80001000 "player position" 1`)
	test.Equate(t, lines[1], `80002000 "score" 0`)

	restored := newWatches()
	restored.loadFromStrings(lines)

	a := wtc.list()
	b := restored.list()
	test.Equate(t, len(b), len(a))
	for i := range a {
		test.Equate(t, b[i].Address, a[i].Address)
		test.Equate(t, b[i].Name, a[i].Name)
		test.Equate(t, b[i].Enabled, a[i].Enabled)
	}
}

func TestWatchesLoadMalformed(t *testing.T) {
	wtc := newWatches()
	wtc.set(0x80009000, "stale")

	// load replaces existing watches. malformed lines are skipped without
	// abandoning the rest of the load
	wtc.loadFromStrings([]string{
		`80001000 "foo" 1`,
		`not a watch`,
		`80002000 "bar" 0`,
	})

	l := wtc.list()
	test.Equate(t, len(l), 2)
	test.Equate(t, l[0].Name, "foo")
	test.Equate(t, l[1].Name, "bar")
	test.Equate(t, l[1].Enabled, false)
}
