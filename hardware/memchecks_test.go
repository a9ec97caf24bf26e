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

func TestMemChecks(t *testing.T) {
	mc := hardware.NewMemChecks()

	test.Equate(t, mc.Check(0x80001000, 1) == nil, true)

	mc.Add(hardware.MemCheck{
		Start:        0x80001000,
		End:          0x80001003,
		BreakOnRead:  true,
		BreakOnWrite: true,
		BreakOnHit:   true,
	})

	// every address in the range is covered, inclusive at both ends
	test.Equate(t, mc.Check(0x80001000, 1) != nil, true)
	test.Equate(t, mc.Check(0x80001003, 1) != nil, true)
	test.Equate(t, mc.Check(0x80001004, 1) == nil, true)
	test.Equate(t, mc.Check(0x80000fff, 1) == nil, true)

	// a sized access overlapping the start of the range is a hit
	test.Equate(t, mc.Check(0x80000ffd, 4) != nil, true)
	test.Equate(t, mc.Check(0x80000ffd, 2) == nil, true)

	// size of zero is treated as one
	test.Equate(t, mc.Check(0x80001000, 0) != nil, true)
}

func TestMemChecksReplaceOnSameStart(t *testing.T) {
	mc := hardware.NewMemChecks()

	mc.Add(hardware.MemCheck{Start: 0x80001000, End: 0x80001000, BreakOnRead: true})
	mc.Add(hardware.MemCheck{Start: 0x80001000, End: 0x8000100f, BreakOnWrite: true})

	// the second memcheck replaces the first rather than accumulating
	test.Equate(t, len(mc.List()), 1)

	c := mc.Check(0x80001008, 1)
	if c == nil {
		t.Fatalf("expected a memcheck covering 0x80001008")
	}
	test.Equate(t, c.BreakOnRead, false)
	test.Equate(t, c.BreakOnWrite, true)
}

func TestMemChecksRemove(t *testing.T) {
	mc := hardware.NewMemChecks()

	mc.Add(hardware.MemCheck{Start: 0x80001000, End: 0x8000100f})
	mc.Add(hardware.MemCheck{Start: 0x80002000, End: 0x80002000})

	// removal matches on the start address, not on coverage
	mc.Remove(0x80001008)
	test.Equate(t, len(mc.List()), 2)

	mc.Remove(0x80001000)
	test.Equate(t, len(mc.List()), 1)
	test.Equate(t, mc.Check(0x80001008, 1) == nil, true)
	test.Equate(t, mc.Check(0x80002000, 1) != nil, true)

	mc.Clear()
	test.Equate(t, len(mc.List()), 0)
}

func TestMemCheckString(t *testing.T) {
	c := hardware.MemCheck{Start: 0x80001000, End: 0x80001000, BreakOnRead: true, BreakOnWrite: true}
	test.Equate(t, c.String(), "80001000 read/write")

	c = hardware.MemCheck{Start: 0x80001000, End: 0x8000100f, BreakOnWrite: true, LogOnHit: true}
	test.Equate(t, c.String(), "80001000-8000100f write (log)")
}
