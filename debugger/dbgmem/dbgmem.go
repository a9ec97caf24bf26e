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

// Package dbgmem is the debugger's front-end to the machine's memory. It
// unifies the two address spaces behind one selector based API and owns
// the placeholder strings shown when memory can't be read.
package dbgmem

import (
	"fmt"

	"github.com/jetsetilly/gopherppc/emulation"
	"github.com/jetsetilly/gopherppc/hardware"
)

// Area selects which address space a read refers to.
type Area int

// List of valid Area values. Primary is the main system memory; Aux is the
// byte-addressed audio memory.
const (
	Primary Area = iota
	Aux
)

// DbgMem is the front-end to the machine's memory used by the debugger.
type DbgMem struct {
	emu  emulation.Emulation
	cpu  hardware.CPU
	aram hardware.ARAM
}

// NewDbgMem is the preferred method of initialisation for the DbgMem type.
func NewDbgMem(emu emulation.Emulation, cpu hardware.CPU, aram hardware.ARAM) *DbgMem {
	return &DbgMem{
		emu:  emu,
		cpu:  cpu,
		aram: aram,
	}
}

// Read returns the 32-bit value at the address in the selected address
// space, assembled most significant byte first. The primary space is read
// with a single wide read; the auxiliary space has no wide read so four
// byte reads are composed. An unrecognised area reads as zero.
//
// Read assumes the machine is alive. Callers that can't guarantee that
// should use RawMemoryString, which checks.
func (dm *DbgMem) Read(area Area, address uint32) uint32 {
	switch area {
	case Primary:
		return dm.cpu.Read32(address)
	case Aux:
		return uint32(dm.aram.ReadByte(address))<<24 |
			uint32(dm.aram.ReadByte(address+1))<<16 |
			uint32(dm.aram.ReadByte(address+2))<<8 |
			uint32(dm.aram.ReadByte(address+3))
	}
	return 0
}

// RawMemoryString returns the value at the address formatted for display.
// It can be called whatever the state of the machine; a machine that isn't
// alive produces a fixed placeholder, as does a primary-space address that
// isn't backed by RAM. The auxiliary space has no validity gate; every
// address is considered addressable.
func (dm *DbgMem) RawMemoryString(area Area, address uint32) string {
	if !dm.emu.State().Alive() {
		// bad spelling - 8 chars
		return "<unknwn>"
	}

	isAux := area != Primary

	if isAux {
		return fmt.Sprintf("%08X (ARAM)", dm.Read(area, address))
	}

	if dm.cpu.IsRAMAddress(address) {
		return fmt.Sprintf("%08X", dm.Read(area, address))
	}

	return "--------"
}

// Patch stores a 32-bit value into the primary address space and then asks
// the machine to invalidate any cached or decoded form of the instruction
// at that address. The write must land before the invalidation is
// scheduled and both must happen before Patch returns; the execution
// goroutine must never run a stale decoded instruction after a patch.
func (dm *DbgMem) Patch(address uint32, value uint32) {
	dm.cpu.Write32(address, value)
	dm.cpu.ScheduleCacheInvalidation(address)
}
