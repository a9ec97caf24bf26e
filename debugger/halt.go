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

// breakpoints are addresses at which execution halts unconditionally.
// memchecks halt (or log) on memory access to a range of addresses. both
// sets are owned by the session; the functions in this file are the
// management surface presented to debugging tools.

package debugger

import "github.com/jetsetilly/gopherppc/hardware"

// IsBreakpoint returns true if there is a breakpoint on the address.
func (dbg *Debugger) IsBreakpoint(address uint32) bool {
	return dbg.session.Breakpoints.Has(address)
}

// SetBreakpoint adds a breakpoint on the address. Setting a breakpoint
// where one already exists is a no-op.
func (dbg *Debugger) SetBreakpoint(address uint32) {
	dbg.session.Breakpoints.Add(address)
}

// ClearBreakpoint removes the breakpoint on the address, if any.
func (dbg *Debugger) ClearBreakpoint(address uint32) {
	dbg.session.Breakpoints.Remove(address)
}

// ClearAllBreakpoints removes every breakpoint.
func (dbg *Debugger) ClearAllBreakpoints() {
	dbg.session.Breakpoints.Clear()
}

// ToggleBreakpoint adds a breakpoint on the address if there isn't one and
// removes it if there is. The decision and the mutation are a single
// operation from the caller's point of view.
func (dbg *Debugger) ToggleBreakpoint(address uint32) {
	if dbg.session.Breakpoints.Has(address) {
		dbg.session.Breakpoints.Remove(address)
	} else {
		dbg.session.Breakpoints.Add(address)
	}
}

// IsMemCheck returns true if a memcheck covers any address in [address,
// address+size).
func (dbg *Debugger) IsMemCheck(address uint32, size uint32) bool {
	return dbg.session.MemChecks.Check(address, size) != nil
}

// ToggleMemCheck adds a single-address memcheck with the given trigger
// flags if no memcheck covers the address, and removes the existing
// memcheck otherwise. Memchecks added this way always break execution on a
// hit; the log flag is additional.
func (dbg *Debugger) ToggleMemCheck(address uint32, read bool, write bool, log bool) {
	if !dbg.IsMemCheck(address, 1) {
		dbg.session.MemChecks.Add(hardware.MemCheck{
			Start:        address,
			End:          address,
			BreakOnRead:  read,
			BreakOnWrite: write,
			LogOnHit:     log,
			BreakOnHit:   true,
		})
	} else {
		dbg.session.MemChecks.Remove(address)
	}
}

// ClearAllMemChecks removes every memcheck.
func (dbg *Debugger) ClearAllMemChecks() {
	dbg.session.MemChecks.Clear()
}
