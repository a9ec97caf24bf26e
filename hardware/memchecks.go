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

import "fmt"

// MemCheck is a conditional trigger over an address range. The range is
// inclusive at both ends; a single-address memcheck is the degenerate case
// Start == End.
type MemCheck struct {
	Start uint32
	End   uint32

	// the access types the check fires on
	BreakOnRead  bool
	BreakOnWrite bool

	// what happens when the check fires
	LogOnHit   bool
	BreakOnHit bool
}

func (mc MemCheck) String() string {
	s := fmt.Sprintf("%08x", mc.Start)
	if mc.End != mc.Start {
		s = fmt.Sprintf("%s-%08x", s, mc.End)
	}
	switch {
	case mc.BreakOnRead && mc.BreakOnWrite:
		s += " read/write"
	case mc.BreakOnRead:
		s += " read"
	case mc.BreakOnWrite:
		s += " write"
	}
	if mc.LogOnHit {
		s += " (log)"
	}
	return s
}

// MemChecks is the set of conditional memory-access triggers consulted by
// the execution side. Like Breakpoints, the set is mutated only from the
// controlling goroutine.
type MemChecks struct {
	checks []MemCheck
}

// NewMemChecks is the preferred method of initialisation for the MemChecks
// type.
func NewMemChecks() *MemChecks {
	mc := &MemChecks{}
	mc.Clear()
	return mc
}

// Add a memcheck to the set. A memcheck that starts at the same address as
// an existing entry replaces that entry.
func (mc *MemChecks) Add(check MemCheck) {
	for i, c := range mc.checks {
		if c.Start == check.Start {
			mc.checks[i] = check
			return
		}
	}
	mc.checks = append(mc.checks, check)
}

// Remove the memcheck whose range starts at the address. Note that this is
// a match on the start address, not on coverage; removing an address in
// the middle of a range is a no-op.
func (mc *MemChecks) Remove(address uint32) {
	for i, c := range mc.checks {
		if c.Start == address {
			h := mc.checks[:i]
			t := mc.checks[i+1:]
			mc.checks = make([]MemCheck, len(h)+len(t), cap(mc.checks))
			copy(mc.checks, h)
			copy(mc.checks[len(h):], t)
			return
		}
	}
}

// Check returns the first memcheck whose range overlaps [address,
// address+size) or nil if there is none. A size of zero is treated as one.
func (mc *MemChecks) Check(address uint32, size uint32) *MemCheck {
	if size == 0 {
		size = 1
	}
	for i, c := range mc.checks {
		if c.Start <= address+size-1 && address <= c.End {
			return &mc.checks[i]
		}
	}
	return nil
}

// Clear all memchecks.
func (mc *MemChecks) Clear() {
	mc.checks = make([]MemCheck, 0, 10)
}

// List returns a copy of the set in the order the memchecks were added.
func (mc *MemChecks) List() []MemCheck {
	l := make([]MemCheck, len(mc.checks))
	copy(l, mc.checks)
	return l
}
