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

package main

import (
	"fmt"
)

// ppcDecoder is a small instruction decoder covering the handful of
// instructions used by the seed program. Anything it doesn't recognise is
// emitted as a raw word.
//
// TODO: replace with a table driven decoder covering the full instruction
// set.
type ppcDecoder struct{}

// Decode implements the disassembly.Decoder interface.
func (d ppcDecoder) Decode(op uint32, address uint32) string {
	rD := (op >> 21) & 0x1f
	rA := (op >> 16) & 0x1f
	rB := (op >> 11) & 0x1f
	simm := int16(op)

	switch op >> 26 {
	case 14:
		if rA == 0 {
			return fmt.Sprintf("li r%d,%d", rD, simm)
		}
		return fmt.Sprintf("addi r%d,r%d,%d", rD, rA, simm)
	case 15:
		if rA == 0 {
			return fmt.Sprintf("lis r%d,%d", rD, simm)
		}
		return fmt.Sprintf("addis r%d,r%d,%d", rD, rA, simm)
	case 18:
		// LI field is bits 6 to 29, sign extended, word aligned
		li := int32(op&0x03fffffc) << 6 >> 6
		target := address + uint32(li)
		if op&0x02 == 0x02 {
			target = uint32(li)
		}
		return fmt.Sprintf("b 0x%08x", target)
	case 19:
		if (op>>1)&0x3ff == 16 && (op>>21)&0x1f == 0x14 {
			return "blr"
		}
	case 24:
		return fmt.Sprintf("ori r%d,r%d,0x%04x", rA, rD, uint16(op))
	case 31:
		if (op>>1)&0x3ff == 266 {
			return fmt.Sprintf("add r%d,r%d,r%d", rD, rA, rB)
		}
	case 32:
		return fmt.Sprintf("lwz r%d,%d(r%d)", rD, simm, rA)
	case 36:
		return fmt.Sprintf("stw r%d,%d(r%d)", rD, simm, rA)
	}

	return fmt.Sprintf(".long 0x%08x", op)
}
