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

	"github.com/jetsetilly/gopherppc/debugger/dbgmem"
	"github.com/jetsetilly/gopherppc/debugger/terminal"
	"github.com/jetsetilly/gopherppc/disassembly"
	"github.com/jetsetilly/gopherppc/hardware"
	"github.com/jetsetilly/gopherppc/symbols"
)

// Debugger is the single entry point through which debugging tools observe
// and alter the state of the machine. It composes the watch registry, the
// memory front-end, the disassembly service and the breakpoint/memcheck
// containers behind one API.
//
// All functions complete in bounded time and none of them block on the
// emulation. State-dependent answers are snapshots; by the time the caller
// inspects a result the machine may have moved on. The one hard ordering
// guarantee is in Patch().
type Debugger struct {
	session *hardware.Session

	sym    symbols.Resolver
	dbgmem *dbgmem.DbgMem
	dsm    *disassembly.Disassembly

	watches *watches

	// terminal loop fields. see inputloop.go
	term    terminal.Terminal
	events  *terminal.ReadEvents
	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The session is the machine being debugged; sym and dec are the
// symbol database and instruction decoder to consult for annotation.
func NewDebugger(session *hardware.Session, sym symbols.Resolver, dec disassembly.Decoder) *Debugger {
	dbg := &Debugger{
		session: session,
		sym:     sym,
		watches: newWatches(),
	}
	dbg.dbgmem = dbgmem.NewDbgMem(session.Emulation, session.CPU, session.ARAM)
	dbg.dsm = disassembly.NewDisassembly(session.Emulation, session.CPU, dec)
	return dbg
}

// alive returns true if the machine is started and not yet shutting down.
// the result is a snapshot.
func (dbg *Debugger) alive() bool {
	return dbg.session.Emulation.State().Alive()
}

// SetWatch appends a new enabled watch and returns its index.
func (dbg *Debugger) SetWatch(address uint32, name string) int {
	return dbg.watches.set(address, name)
}

// GetWatch returns the watch at the index. An index is valid if it is less
// than the current length of GetWatches().
func (dbg *Debugger) GetWatch(index int) (Watch, error) {
	return dbg.watches.get(index)
}

// GetWatches returns the defined watches in index order.
func (dbg *Debugger) GetWatches() []Watch {
	return dbg.watches.list()
}

// UnsetWatch removes the first watch on the address, if any.
func (dbg *Debugger) UnsetWatch(address uint32) {
	dbg.watches.unset(address)
}

// UpdateWatch changes the address and name of the watch at the index.
func (dbg *Debugger) UpdateWatch(index int, address uint32, name string) error {
	return dbg.watches.update(index, address, name)
}

// UpdateWatchAddress changes the address of the watch at the index.
func (dbg *Debugger) UpdateWatchAddress(index int, address uint32) error {
	return dbg.watches.updateAddress(index, address)
}

// UpdateWatchName changes the name of the watch at the index.
func (dbg *Debugger) UpdateWatchName(index int, name string) error {
	return dbg.watches.updateName(index, name)
}

// EnableWatch enables the watch at the index without disturbing its other
// attributes.
func (dbg *Debugger) EnableWatch(index int) error {
	return dbg.watches.enable(index, true)
}

// DisableWatch disables the watch at the index without removing it.
func (dbg *Debugger) DisableWatch(index int) error {
	return dbg.watches.enable(index, false)
}

// HasEnabledWatch returns true if some enabled watch is on the address.
func (dbg *Debugger) HasEnabledWatch(address uint32) bool {
	return dbg.watches.hasEnabled(address)
}

// RemoveWatch deletes the watch at the index. Watches at higher indices
// shift down by one; callers holding indices must re-resolve them.
func (dbg *Debugger) RemoveWatch(index int) error {
	return dbg.watches.drop(index)
}

// LoadWatchesFromStrings replaces the current watches with the watches
// encoded in the lines, as produced by SaveWatchesToStrings.
func (dbg *Debugger) LoadWatchesFromStrings(lines []string) {
	dbg.watches.loadFromStrings(lines)
}

// SaveWatchesToStrings encodes the current watches as lines of text, one
// watch per line.
func (dbg *Debugger) SaveWatchesToStrings() []string {
	return dbg.watches.saveToStrings()
}

// ClearWatches removes every watch.
func (dbg *Debugger) ClearWatches() {
	dbg.watches.clear()
}

// Disassemble the instruction at the address. The result depends on the
// state of the machine; see the disassembly package for the gating policy.
func (dbg *Debugger) Disassemble(address uint32) string {
	return dbg.dsm.Disassemble(address)
}

// ReadMemory returns the 32-bit value at the address in the selected
// address space. Only call while the machine is alive; use
// RawMemoryString otherwise.
func (dbg *Debugger) ReadMemory(area dbgmem.Area, address uint32) uint32 {
	return dbg.dbgmem.Read(area, address)
}

// RawMemoryString returns the value at the address formatted for display,
// whatever the state of the machine.
func (dbg *Debugger) RawMemoryString(area dbgmem.Area, address uint32) string {
	return dbg.dbgmem.RawMemoryString(area, address)
}

// Patch stores a value into main memory and schedules invalidation of any
// cached decoding of the instruction at that address. The invalidation is
// requested before Patch returns.
func (dbg *Debugger) Patch(address uint32, value uint32) {
	dbg.dbgmem.Patch(address, value)
}

// the fixed palette used to colour function blocks in a disassembly
// listing.
var blockColors = [6]int{
	0xd0ffff, // light cyan
	0xffd0d0, // light red
	0xd8d8ff, // light blue
	0xffd0ff, // light purple
	0xd0ffd0, // light green
	0xffffd0, // light yellow
}

// GetColor returns the display colour for the address. The colour is a
// presentation aid, not a correctness value: addresses inside the same
// function always get the same colour and adjacent functions (by ordinal
// index) get different ones.
func (dbg *Debugger) GetColor(address uint32) int {
	if !dbg.alive() {
		return 0xffffff
	}
	if !dbg.session.CPU.IsRAMAddress(address) {
		return 0xeeeeee
	}
	sym := dbg.sym.SymbolFromAddress(address)
	if sym == nil {
		return 0xffffff
	}
	if sym.Type != symbols.Function {
		return 0xeeeeff
	}
	return blockColors[sym.Index%len(blockColors)]
}

// GetDescription returns the symbol database's description of the address.
func (dbg *Debugger) GetDescription(address uint32) string {
	return dbg.sym.Description(address)
}

// PC returns the machine's program counter.
func (dbg *Debugger) PC() uint32 {
	return dbg.session.CPU.PC()
}

// SetPC sets the machine's program counter. No validation is performed on
// the new value.
func (dbg *Debugger) SetPC(address uint32) {
	dbg.session.CPU.SetPC(address)
}

// RunToBreakpoint is a stub. The mechanics of running until a breakpoint
// is hit belong to the execution engine; the entry point exists so that
// debugging tools have a uniform surface to call.
func (dbg *Debugger) RunToBreakpoint() {
}

// Clear empties the breakpoint, memcheck and watch sets. The order of the
// three clears is not observable but all three sets end empty.
func (dbg *Debugger) Clear() {
	dbg.ClearAllBreakpoints()
	dbg.ClearAllMemChecks()
	dbg.ClearWatches()
}

// printLine sends a formatted line to the attached terminal. used by the
// command loop; a debugger with no terminal discards the output.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	if dbg.term == nil {
		return
	}
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}
