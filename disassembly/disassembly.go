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

// Package disassembly turns instruction words into text for display by a
// debugging tool. The actual decoding is done by an external Decoder; this
// package owns the policy of when a fetch is allowed to happen at all.
package disassembly

import (
	"github.com/jetsetilly/gopherppc/emulation"
	"github.com/jetsetilly/gopherppc/hardware"
)

// Decoder translates one instruction word into mnemonic text. The address
// is provided so relative branch targets can be rendered absolutely.
type Decoder interface {
	Decode(op uint32, address uint32) string
}

// HLEOpcode is the reserved major opcode used to mark instructions that
// have been replaced with a host-level call trampoline. Decoded text for
// these instructions is annotated so the user can see the instruction is
// not what the program originally contained.
const HLEOpcode = 0x01

// the annotation added to decoded text for HLEOpcode instructions.
const hleAnnotation = " (hle)"

// Opcode returns the major opcode field of an instruction word.
func Opcode(op uint32) uint32 {
	return op >> 26
}

// Disassembly is the disassembly service for an attached machine.
type Disassembly struct {
	emu emulation.Emulation
	cpu hardware.CPU
	dec Decoder
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly(emu emulation.Emulation, cpu hardware.CPU, dec Decoder) *Disassembly {
	return &Disassembly{
		emu: emu,
		cpu: cpu,
		dec: dec,
	}
}

// Disassemble the instruction at the address.
//
// The result depends on the state of the machine at the moment of the
// call. A machine that isn't alive produces empty text. A machine that is
// alive but running freely produces a fixed "<unknown>" string; fetching
// memory from under a running machine is not meaningful for display. Only
// when the machine is stable is the address checked and the instruction
// fetched.
func (dsm *Disassembly) Disassemble(address uint32) string {
	state := dsm.emu.State()

	// reading memory on a machine that has been shut down, or was never
	// started, must not reach the fetch
	if !state.Alive() {
		return ""
	}

	if !state.Stable() {
		return "<unknown>"
	}

	if !dsm.cpu.IsRAMAddress(address) {
		return "(No RAM here)"
	}

	op := dsm.cpu.ReadInstruction(address)
	d := dsm.dec.Decode(op, address)

	if Opcode(op) == HLEOpcode {
		d += hleAnnotation
	}

	return d
}
