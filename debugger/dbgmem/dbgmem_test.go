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

package dbgmem_test

import (
	"testing"

	"github.com/jetsetilly/gopherppc/debugger/dbgmem"
	"github.com/jetsetilly/gopherppc/hardware"
	"github.com/jetsetilly/gopherppc/test"
)

func TestRead(t *testing.T) {
	mach := hardware.NewMachine(4096, 256)
	mach.Boot()
	dm := dbgmem.NewDbgMem(mach, mach, mach)

	mach.Write32(hardware.RAMOrigin+0x10, 0xdeadbeef)

	// primary space is a single wide read
	test.Equate(t, dm.Read(dbgmem.Primary, hardware.RAMOrigin+0x10), uint32(0xdeadbeef))

	// auxiliary space is four byte reads composed most significant first
	mach.PokeARAM(0x20, 0x01)
	mach.PokeARAM(0x21, 0x02)
	mach.PokeARAM(0x22, 0x03)
	mach.PokeARAM(0x23, 0x04)
	test.Equate(t, dm.Read(dbgmem.Aux, 0x20), uint32(0x01020304))

	// an unrecognised area reads as zero. not an error
	test.Equate(t, dm.Read(dbgmem.Area(99), hardware.RAMOrigin+0x10), 0)
}

func TestRawMemoryString(t *testing.T) {
	mach := hardware.NewMachine(4096, 256)
	dm := dbgmem.NewDbgMem(mach, mach, mach)

	// the placeholder for a machine that isn't alive is exactly 8
	// characters
	s := dm.RawMemoryString(dbgmem.Primary, hardware.RAMOrigin)
	test.Equate(t, s, "<unknwn>")
	test.Equate(t, len(s), 8)

	mach.Boot()
	mach.Write32(hardware.RAMOrigin, 0x0000beef)
	test.Equate(t, dm.RawMemoryString(dbgmem.Primary, hardware.RAMOrigin), "0000BEEF")

	// addresses outside of RAM read as a placeholder, not a failure
	test.Equate(t, dm.RawMemoryString(dbgmem.Primary, 0x00001000), "--------")

	// the auxiliary space has no validity gate
	test.Equate(t, dm.RawMemoryString(dbgmem.Aux, 0x1000), "00000000 (ARAM)")
}

func TestPatch(t *testing.T) {
	mach := hardware.NewMachine(4096, 0)
	mach.Boot()
	dm := dbgmem.NewDbgMem(mach, mach, mach)

	dm.Patch(hardware.RAMOrigin+0x40, 0x60000000)

	// the write must have landed
	test.Equate(t, mach.Read32(hardware.RAMOrigin+0x40), uint32(0x60000000))

	// and an invalidation request for the patched address must be waiting
	// for the execution side before Patch returns
	p := mach.PendingInvalidations()
	test.Equate(t, len(p), 1)
	test.Equate(t, p[0], hardware.RAMOrigin+0x40)
}
