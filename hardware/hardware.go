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

import "github.com/jetsetilly/gopherppc/emulation"

// CPU is the gateway to the emulated core's execution state and main
// memory. The functions in this interface are only ever called from the
// controlling (debugger) goroutine. With the exception of
// ScheduleCacheInvalidation, implementations are not expected to
// synchronise with the execution goroutine; the debugging layer gates
// access on the emulation state instead.
type CPU interface {
	// the program counter. no validation is performed on SetPC.
	PC() uint32
	SetPC(pc uint32)

	// Read32 assembles a 32-bit value from four consecutive bytes of main
	// memory, most significant byte first.
	Read32(address uint32) uint32

	// ReadInstruction reads the instruction word at the address. for many
	// cores this is the same as Read32 but cores with an instruction cache
	// may want to read through it.
	ReadInstruction(address uint32) uint32

	// Write32 stores a 32-bit value into main memory.
	Write32(address uint32, value uint32)

	// IsRAMAddress returns true if the address is backed by real memory.
	IsRAMAddress(address uint32) bool

	// ScheduleCacheInvalidation asks the core to discard any cached or
	// decoded form of the instruction at the address. the request must be
	// safe to make while the execution goroutine is running; the core
	// services it at the next safe opportunity.
	ScheduleCacheInvalidation(address uint32)
}

// ARAM is the auxiliary audio memory. It is byte addressed, lives in its
// own address space and, unlike main memory, every address is considered
// addressable.
type ARAM interface {
	ReadByte(address uint32) uint8
}

// Session gathers everything the debugging layer needs from one emulation
// run. It is created when a machine starts and passed by reference to the
// debugger; there is no package-level machine state anywhere in this
// module.
type Session struct {
	Emulation emulation.Emulation
	CPU       CPU
	ARAM      ARAM

	Breakpoints *Breakpoints
	MemChecks   *MemChecks
}
