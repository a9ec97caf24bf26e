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

// Package emulation defines the small set of concepts shared between the
// machine and the debugging layer. It exists mainly to avoid a circular
// import between the hardware and debugger packages.
package emulation

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Stepping, Paused, etc.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

// Alive returns true if the machine has been started and has not yet begun
// shutting down. Debugging operations that touch emulated memory must not
// run against a machine that isn't alive.
func (s State) Alive() bool {
	return s >= Paused && s < Ending
}

// Stable returns true if the machine is alive but not freely running. A
// stable machine is one that can be probed for display purposes without
// racing the execution thread. Stepping counts as stable because the
// machine is between instructions.
func (s State) Stable() bool {
	return s == Paused || s == Stepping
}

// Emulation defines the functions required by the debugging layer to
// interrogate the state of the underlying machine.
//
// The State() function is an immediate request for the state of the
// emulation. There is no guarantee that the state has not changed by the
// time the caller acts on the result. The debugging layer accepts this and
// only ever treats the result as a snapshot.
type Emulation interface {
	State() State
}

// StateSetter is implemented by emulations that allow the debugging layer
// to change the machine state directly. Implementations of the Emulation
// interface are not required to support this.
type StateSetter interface {
	SetState(State)
}
