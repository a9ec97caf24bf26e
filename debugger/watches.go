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

	"github.com/jetsetilly/gopherppc/logger"
)

// Watch is a user-named monitor on a single address. Watches are
// independent of breakpoints and memchecks; they carry no trigger
// mechanics of their own.
type Watch struct {
	Address uint32
	Name    string
	Enabled bool
}

func (w Watch) String() string {
	s := fmt.Sprintf("%08x %s", w.Address, w.Name)
	if !w.Enabled {
		s += " (disabled)"
	}
	return s
}

// the list of currently defined watches in the system.
//
// a watch is identified by its position in the list. positions are
// user-visible and stable until a watch is removed, at which point every
// watch after the removed one shifts down by one. callers holding indices
// must re-resolve them after any removal.
type watches struct {
	watches []Watch
}

// newWatches is the preferred method of initialisation for the watches
// type.
func newWatches() *watches {
	wtc := &watches{}
	wtc.clear()
	return wtc
}

// clear all watches.
func (wtc *watches) clear() {
	wtc.watches = make([]Watch, 0, 10)
}

// set appends a new, enabled watch and returns its index.
func (wtc *watches) set(address uint32, name string) int {
	wtc.watches = append(wtc.watches, Watch{
		Address: address,
		Name:    name,
		Enabled: true,
	})
	return len(wtc.watches) - 1
}

// get the watch at the index.
func (wtc *watches) get(index int) (Watch, error) {
	if index < 0 || index >= len(wtc.watches) {
		return Watch{}, fmt.Errorf("watch #%d is not defined", index)
	}
	return wtc.watches[index], nil
}

// list returns a copy of the watches in index order.
func (wtc *watches) list() []Watch {
	l := make([]Watch, len(wtc.watches))
	copy(l, wtc.watches)
	return l
}

// unset removes the first watch on the address. removing an address that
// isn't being watched is a no-op.
func (wtc *watches) unset(address uint32) {
	for i := range wtc.watches {
		if wtc.watches[i].Address == address {
			_ = wtc.drop(i)
			return
		}
	}
}

// update the address and name of the watch at the index.
func (wtc *watches) update(index int, address uint32, name string) error {
	if index < 0 || index >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", index)
	}
	wtc.watches[index].Address = address
	wtc.watches[index].Name = name
	return nil
}

// updateAddress changes the address of the watch at the index.
func (wtc *watches) updateAddress(index int, address uint32) error {
	if index < 0 || index >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", index)
	}
	wtc.watches[index].Address = address
	return nil
}

// updateName changes the name of the watch at the index.
func (wtc *watches) updateName(index int, name string) error {
	if index < 0 || index >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", index)
	}
	wtc.watches[index].Name = name
	return nil
}

// enable the watch at the index.
func (wtc *watches) enable(index int, enabled bool) error {
	if index < 0 || index >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", index)
	}
	wtc.watches[index].Enabled = enabled
	return nil
}

// hasEnabled returns true if some enabled watch is on the address.
func (wtc *watches) hasEnabled(address uint32) bool {
	for i := range wtc.watches {
		if wtc.watches[i].Address == address && wtc.watches[i].Enabled {
			return true
		}
	}
	return false
}

// drop the watch at the index. every watch after the index shifts down by
// one.
func (wtc *watches) drop(index int) error {
	if index < 0 || index >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", index)
	}

	h := wtc.watches[:index]
	t := wtc.watches[index+1:]
	wtc.watches = make([]Watch, len(h)+len(t), cap(wtc.watches))
	copy(wtc.watches, h)
	copy(wtc.watches[len(h):], t)

	return nil
}

// loadFromStrings replaces the current watches with the watches encoded in
// the lines. lines that don't parse are logged and skipped; the remainder
// of the load carries on.
func (wtc *watches) loadFromStrings(lines []string) {
	wtc.clear()
	for _, s := range lines {
		var address uint32
		var name string
		var enabled int

		if _, err := fmt.Sscanf(s, "%x %q %d", &address, &name, &enabled); err != nil {
			logger.Logf("watches", "ignoring malformed watch (%s)", s)
			continue
		}

		wtc.watches = append(wtc.watches, Watch{
			Address: address,
			Name:    name,
			Enabled: enabled != 0,
		})
	}
}

// saveToStrings encodes the watches as lines of text, one per watch. the
// encoding round-trips through loadFromStrings: address, quoted name and
// enabled flag, in index order.
func (wtc *watches) saveToStrings() []string {
	lines := make([]string, 0, len(wtc.watches))
	for _, w := range wtc.watches {
		e := 0
		if w.Enabled {
			e = 1
		}
		lines = append(lines, fmt.Sprintf("%08x %q %d", w.Address, w.Name, e))
	}
	return lines
}
