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

import (
	"encoding/binary"
	"sync"

	"github.com/jetsetilly/gopherppc/emulation"
	"github.com/jetsetilly/gopherppc/logger"
)

// RAMOrigin is the address at which the reference machine's main memory
// begins. Addresses below the origin are not backed by anything.
const RAMOrigin = 0x80000000

// Machine is the reference implementation of the CPU and ARAM interfaces:
// a flat big-endian RAM at a fixed origin, a byte-addressed ARAM and a
// lifecycle state. It satisfies the emulation.Emulation interface so a
// debugger can be attached to it directly.
type Machine struct {
	ram  []byte
	aram []byte
	pc   uint32

	// state is read from the controlling goroutine and written by
	// whichever goroutine drives the lifecycle. the critical section also
	// covers the pending invalidation queue, which is written from the
	// controlling goroutine and drained from the execution side.
	crit          sync.Mutex
	state         emulation.State
	invalidations []uint32

	Breakpoints *Breakpoints
	MemChecks   *MemChecks
}

// NewMachine is the preferred method of initialisation for the Machine
// type. RAM and ARAM sizes are given in bytes.
func NewMachine(ramSize int, aramSize int) *Machine {
	mach := &Machine{
		ram:         make([]byte, ramSize),
		aram:        make([]byte, aramSize),
		state:       emulation.EmulatorStart,
		Breakpoints: NewBreakpoints(),
		MemChecks:   NewMemChecks(),
	}
	return mach
}

// Session returns the session context for the machine, suitable for
// passing to the debugger.
func (mach *Machine) Session() *Session {
	return &Session{
		Emulation:   mach,
		CPU:         mach,
		ARAM:        mach,
		Breakpoints: mach.Breakpoints,
		MemChecks:   mach.MemChecks,
	}
}

// Boot takes the machine through initialisation and leaves it paused at
// the RAM origin, ready for a debugger.
func (mach *Machine) Boot() {
	mach.SetState(emulation.Initialising)
	mach.pc = RAMOrigin
	mach.SetState(emulation.Paused)
	logger.Logf("machine", "booted (%dk RAM, %dk ARAM)", len(mach.ram)/1024, len(mach.aram)/1024)
}

// Shutdown ends the emulation. Once a machine has been shut down the
// debugging layer stops answering questions about its memory.
func (mach *Machine) Shutdown() {
	mach.SetState(emulation.Ending)
	logger.Log("machine", "shutdown")
}

// State implements the emulation.Emulation interface.
func (mach *Machine) State() emulation.State {
	mach.crit.Lock()
	defer mach.crit.Unlock()
	return mach.state
}

// SetState implements the emulation.StateSetter interface.
func (mach *Machine) SetState(state emulation.State) {
	mach.crit.Lock()
	defer mach.crit.Unlock()
	mach.state = state
}

// PC implements the CPU interface.
func (mach *Machine) PC() uint32 {
	return mach.pc
}

// SetPC implements the CPU interface.
func (mach *Machine) SetPC(pc uint32) {
	mach.pc = pc
}

// Read32 implements the CPU interface. Reads that stray outside of RAM
// return zero.
func (mach *Machine) Read32(address uint32) uint32 {
	o := int64(address) - RAMOrigin
	if o < 0 || o+4 > int64(len(mach.ram)) {
		return 0
	}
	return binary.BigEndian.Uint32(mach.ram[o:])
}

// ReadInstruction implements the CPU interface. The reference machine has
// no instruction cache so this is the same as Read32.
func (mach *Machine) ReadInstruction(address uint32) uint32 {
	return mach.Read32(address)
}

// Write32 implements the CPU interface. Writes that stray outside of RAM
// are dropped.
func (mach *Machine) Write32(address uint32, value uint32) {
	o := int64(address) - RAMOrigin
	if o < 0 || o+4 > int64(len(mach.ram)) {
		return
	}
	binary.BigEndian.PutUint32(mach.ram[o:], value)
}

// IsRAMAddress implements the CPU interface.
func (mach *Machine) IsRAMAddress(address uint32) bool {
	return address >= RAMOrigin && int64(address)-RAMOrigin < int64(len(mach.ram))
}

// ScheduleCacheInvalidation implements the CPU interface. The request is
// queued under the machine's critical section; the execution side drains
// the queue with PendingInvalidations.
func (mach *Machine) ScheduleCacheInvalidation(address uint32) {
	mach.crit.Lock()
	defer mach.crit.Unlock()
	mach.invalidations = append(mach.invalidations, address)
}

// PendingInvalidations returns and forgets the addresses scheduled for
// cache invalidation since the previous call. Called from the execution
// side of the machine.
func (mach *Machine) PendingInvalidations() []uint32 {
	mach.crit.Lock()
	defer mach.crit.Unlock()
	p := mach.invalidations
	mach.invalidations = nil
	return p
}

// ReadByte implements the ARAM interface. Reads beyond the end of ARAM
// return zero.
func (mach *Machine) ReadByte(address uint32) uint8 {
	if int(address) >= len(mach.aram) {
		return 0
	}
	return mach.aram[address]
}

// PokeARAM writes a byte directly into ARAM. Provided for machine setup;
// the debugging layer itself never writes to ARAM.
func (mach *Machine) PokeARAM(address uint32, value uint8) {
	if int(address) >= len(mach.aram) {
		return
	}
	mach.aram[address] = value
}
