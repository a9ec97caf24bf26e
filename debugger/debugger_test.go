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

package debugger_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherppc/debugger"
	"github.com/jetsetilly/gopherppc/debugger/dbgmem"
	"github.com/jetsetilly/gopherppc/emulation"
	"github.com/jetsetilly/gopherppc/hardware"
	"github.com/jetsetilly/gopherppc/symbols"
	"github.com/jetsetilly/gopherppc/test"
)

// mockDecoder renders every instruction the same way. enough to see what
// the disassembly service passed along.
type mockDecoder struct{}

func (d mockDecoder) Decode(op uint32, address uint32) string {
	return fmt.Sprintf("op %08x", op)
}

func newTestDebugger(t *testing.T) (*debugger.Debugger, *hardware.Machine) {
	t.Helper()
	mach := hardware.NewMachine(0x10000, 0x1000)
	dbg := debugger.NewDebugger(mach.Session(), symbols.NewTable(), mockDecoder{})
	return dbg, mach
}

func TestToggleBreakpoint(t *testing.T) {
	dbg, _ := newTestDebugger(t)

	test.Equate(t, dbg.IsBreakpoint(0x80000000), false)

	// toggling twice returns to the starting state
	dbg.ToggleBreakpoint(0x80000000)
	test.Equate(t, dbg.IsBreakpoint(0x80000000), true)
	dbg.ToggleBreakpoint(0x80000000)
	test.Equate(t, dbg.IsBreakpoint(0x80000000), false)

	dbg.SetBreakpoint(0x80000000)
	dbg.SetBreakpoint(0x80000000)
	dbg.ToggleBreakpoint(0x80000000)
	test.Equate(t, dbg.IsBreakpoint(0x80000000), false)
}

func TestToggleMemCheck(t *testing.T) {
	dbg, mach := newTestDebugger(t)

	dbg.ToggleMemCheck(0x80001000, true, false, true)
	test.Equate(t, dbg.IsMemCheck(0x80001000, 1), true)

	c := mach.MemChecks.Check(0x80001000, 1)
	if c == nil {
		t.Fatalf("expected a memcheck at 0x80001000")
	}
	test.Equate(t, c.BreakOnRead, true)
	test.Equate(t, c.BreakOnWrite, false)
	test.Equate(t, c.LogOnHit, true)

	// memchecks added by toggle always break on a hit
	test.Equate(t, c.BreakOnHit, true)

	dbg.ToggleMemCheck(0x80001000, true, false, true)
	test.Equate(t, dbg.IsMemCheck(0x80001000, 1), false)
}

func TestClear(t *testing.T) {
	dbg, mach := newTestDebugger(t)

	dbg.SetBreakpoint(0x80000000)
	dbg.ToggleMemCheck(0x80001000, true, true, false)
	dbg.SetWatch(0x80002000, "foo")

	dbg.Clear()

	test.Equate(t, len(mach.Breakpoints.List()), 0)
	test.Equate(t, len(mach.MemChecks.List()), 0)
	test.Equate(t, len(dbg.GetWatches()), 0)
}

func TestWatchIndices(t *testing.T) {
	dbg, _ := newTestDebugger(t)

	test.Equate(t, dbg.SetWatch(0x80001000, "foo"), 0)
	test.Equate(t, dbg.SetWatch(0x80002000, "bar"), 1)

	test.ExpectedSuccess(t, dbg.RemoveWatch(0))

	w, err := dbg.GetWatch(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w.Name, "bar")
	test.Equate(t, w.Address, 0x80002000)

	_, err = dbg.GetWatch(1)
	test.ExpectedFailure(t, err)
}

func TestDisassembleGating(t *testing.T) {
	dbg, mach := newTestDebugger(t)

	// never started: no text at all
	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "")

	mach.Boot()
	mach.Write32(hardware.RAMOrigin, 0x38800040)

	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "op 38800040")

	// a free-running machine can't be fetched from for display
	mach.SetState(emulation.Running)
	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "<unknown>")

	// stepping is as good as paused
	mach.SetState(emulation.Stepping)
	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "op 38800040")

	mach.SetState(emulation.Paused)
	test.Equate(t, dbg.Disassemble(0x00001000), "(No RAM here)")

	mach.Shutdown()
	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "")
}

func TestDisassembleHLE(t *testing.T) {
	dbg, mach := newTestDebugger(t)
	mach.Boot()

	// major opcode 1 marks an instruction replaced with a host-level call
	mach.Write32(hardware.RAMOrigin, 0x04000000)
	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "op 04000000 (hle)")

	mach.Write32(hardware.RAMOrigin, 0x08000000)
	test.Equate(t, dbg.Disassemble(hardware.RAMOrigin), "op 08000000")
}

func TestRawMemoryString(t *testing.T) {
	dbg, mach := newTestDebugger(t)

	test.Equate(t, dbg.RawMemoryString(dbgmem.Primary, hardware.RAMOrigin), "<unknwn>")
	test.Equate(t, dbg.RawMemoryString(dbgmem.Aux, 0), "<unknwn>")

	mach.Boot()
	mach.Write32(hardware.RAMOrigin, 0xdeadbeef)
	for i := 0; i < 4; i++ {
		mach.PokeARAM(uint32(i), uint8(0x10+i))
	}

	test.Equate(t, dbg.RawMemoryString(dbgmem.Primary, hardware.RAMOrigin), "DEADBEEF")
	test.Equate(t, dbg.RawMemoryString(dbgmem.Primary, 0x00001000), "--------")
	test.Equate(t, dbg.RawMemoryString(dbgmem.Aux, 0), "10111213 (ARAM)")
}

func TestReadMemory(t *testing.T) {
	dbg, mach := newTestDebugger(t)
	mach.Boot()

	mach.Write32(hardware.RAMOrigin+8, 0x01020304)
	test.Equate(t, dbg.ReadMemory(dbgmem.Primary, hardware.RAMOrigin+8), 0x01020304)

	// auxiliary reads compose four byte reads, most significant first
	mach.PokeARAM(4, 0xaa)
	mach.PokeARAM(5, 0xbb)
	mach.PokeARAM(6, 0xcc)
	mach.PokeARAM(7, 0xdd)
	test.Equate(t, dbg.ReadMemory(dbgmem.Aux, 4), 0xaabbccdd)
}

func TestPatch(t *testing.T) {
	dbg, mach := newTestDebugger(t)
	mach.Boot()

	addr := uint32(hardware.RAMOrigin + 0x100)
	dbg.Patch(addr, 0x60000000)

	// the write lands before Patch returns
	test.Equate(t, mach.Read32(addr), 0x60000000)

	// and the invalidation request for the patched address is already
	// queued
	pending := mach.PendingInvalidations()
	test.Equate(t, len(pending), 1)
	test.Equate(t, pending[0], addr)

	// the queue drains on read
	test.Equate(t, len(mach.PendingInvalidations()), 0)
}

func TestProgramCounter(t *testing.T) {
	dbg, mach := newTestDebugger(t)
	mach.Boot()

	test.Equate(t, dbg.PC(), hardware.RAMOrigin)
	dbg.SetPC(0x80000f00)
	test.Equate(t, dbg.PC(), 0x80000f00)
	test.Equate(t, mach.PC(), 0x80000f00)
}

func TestGetColor(t *testing.T) {
	mach := hardware.NewMachine(0x10000, 0x1000)

	tbl := symbols.NewTable()
	for i := 0; i < 7; i++ {
		tbl.Add(fmt.Sprintf("func_%d", i), hardware.RAMOrigin+uint32(i*0x100), 0x100, symbols.Function)
	}
	tbl.Add("table", hardware.RAMOrigin+0x700, 0x10, symbols.Data)

	dbg := debugger.NewDebugger(mach.Session(), tbl, mockDecoder{})

	// no colour information from a machine that isn't alive
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin), 0xffffff)

	mach.Boot()

	// the first two functions get the first two palette entries
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin), 0xd0ffff)
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin+0x100), 0xffd0d0)

	// every address inside a function gets the function's colour
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin+0x0fc), 0xd0ffff)

	// the palette wraps at six
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin+0x600), 0xd0ffff)

	// data symbols and unknown addresses have fixed colours
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin+0x700), 0xeeeeff)
	test.Equate(t, dbg.GetColor(hardware.RAMOrigin+0x800), 0xffffff)

	// as do addresses outside of RAM
	test.Equate(t, dbg.GetColor(0x00001000), 0xeeeeee)
}

func TestGetColorIsPure(t *testing.T) {
	mach := hardware.NewMachine(0x10000, 0x1000)

	tbl := symbols.NewTable()
	tbl.Add("func_a", hardware.RAMOrigin, 0x100, symbols.Function)

	dbg := debugger.NewDebugger(mach.Session(), tbl, mockDecoder{})
	mach.Boot()

	// repeated queries return the same colour and change nothing
	a := dbg.GetColor(hardware.RAMOrigin)
	b := dbg.GetColor(hardware.RAMOrigin)
	test.Equate(t, a, b)
}
