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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherppc/hardware"
	"github.com/jetsetilly/gopherppc/test"
)

func TestBreakpoints(t *testing.T) {
	bp := hardware.NewBreakpoints()

	test.Equate(t, bp.Has(0x80000000), false)
	test.Equate(t, len(bp.List()), 0)

	bp.Add(0x80000000)
	bp.Add(0x80000100)
	test.Equate(t, bp.Has(0x80000000), true)
	test.Equate(t, bp.Has(0x80000100), true)
	test.Equate(t, bp.Has(0x80000004), false)
	test.Equate(t, len(bp.List()), 2)

	// adding an address twice is a no-op
	bp.Add(0x80000000)
	test.Equate(t, len(bp.List()), 2)

	// removing an address that isn't in the set is a no-op
	bp.Remove(0x80000004)
	test.Equate(t, len(bp.List()), 2)

	bp.Remove(0x80000000)
	test.Equate(t, bp.Has(0x80000000), false)
	test.Equate(t, bp.Has(0x80000100), true)
	test.Equate(t, len(bp.List()), 1)

	bp.Clear()
	test.Equate(t, len(bp.List()), 0)
}

func TestBreakpointsListOrder(t *testing.T) {
	bp := hardware.NewBreakpoints()

	bp.Add(0x80000200)
	bp.Add(0x80000000)
	bp.Add(0x80000100)

	// listing order is the order the addresses were added
	l := bp.List()
	test.Equate(t, l[0], 0x80000200)
	test.Equate(t, l[1], 0x80000000)
	test.Equate(t, l[2], 0x80000100)

	// removing from the middle preserves the order of the rest
	bp.Remove(0x80000000)
	l = bp.List()
	test.Equate(t, len(l), 2)
	test.Equate(t, l[0], 0x80000200)
	test.Equate(t, l[1], 0x80000100)
}
