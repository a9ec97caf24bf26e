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

// Package hardware defines the contract between the debugging layer and the
// machine being debugged, along with the breakpoint and memcheck containers
// that the execution side consults.
//
// The CPU and ARAM interfaces describe what the debugging layer needs from
// an emulated core. Any emulator that can satisfy them can be attached to
// the debugger. The Machine type is a reference implementation: a flat
// big-endian RAM, a byte-addressed ARAM and a lifecycle state. It is used
// by the package tests and by the demonstration executable but it is not
// itself an execution engine; how an engine dispatches instructions or
// checks breakpoints per-instruction is outside the scope of this module.
package hardware
