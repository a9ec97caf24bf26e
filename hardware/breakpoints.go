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

package hardware

// Breakpoints is the set of addresses at which execution should halt. An
// address is either in the set or it isn't; there is at most one entry per
// address.
//
// The set is mutated only from the controlling goroutine. A slice rather
// than a map so that listing order is stable for presentation.
type Breakpoints struct {
	breaks []uint32
}

// NewBreakpoints is the preferred method of initialisation for the
// Breakpoints type.
func NewBreakpoints() *Breakpoints {
	bp := &Breakpoints{}
	bp.Clear()
	return bp
}

// Has returns true if the address is in the set.
func (bp *Breakpoints) Has(address uint32) bool {
	for _, b := range bp.breaks {
		if b == address {
			return true
		}
	}
	return false
}

// Add the address to the set. Adding an address twice is a no-op.
func (bp *Breakpoints) Add(address uint32) {
	if bp.Has(address) {
		return
	}
	bp.breaks = append(bp.breaks, address)
}

// Remove the address from the set. Removing an address that isn't in the
// set is a no-op.
func (bp *Breakpoints) Remove(address uint32) {
	for i, b := range bp.breaks {
		if b == address {
			h := bp.breaks[:i]
			t := bp.breaks[i+1:]
			bp.breaks = make([]uint32, len(h)+len(t), cap(bp.breaks))
			copy(bp.breaks, h)
			copy(bp.breaks[len(h):], t)
			return
		}
	}
}

// Clear all breakpoints.
func (bp *Breakpoints) Clear() {
	bp.breaks = make([]uint32, 0, 10)
}

// List returns a copy of the set in the order the addresses were added.
func (bp *Breakpoints) List() []uint32 {
	l := make([]uint32, len(bp.breaks))
	copy(l, bp.breaks)
	return l
}
