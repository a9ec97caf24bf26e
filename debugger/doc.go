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

// Package debugger is the inspection layer between a debugging tool and
// the emulated machine. It owns the watch registry and composes the memory
// front-end, disassembly service, symbol lookups and the session's
// breakpoint/memcheck containers into one API (the Debugger type).
//
// The emulated core runs on its own goroutine; calls into the Debugger
// come from a single controlling goroutine at arbitrary times relative to
// execution. Query operations never fail: conditions that prevent an
// answer (machine not started, address not backed by RAM, unknown address
// space) resolve to defined placeholder values so that a debugging tool
// can always render something. The only errors returned anywhere in the
// package are for out-of-range watch indices, which indicate programmer
// error in the caller.
//
// The package also contains a terminal based interface to the Debugger.
// Attach a terminal implementation from the terminal sub-packages with
// Run() and the debugger becomes interactive.
package debugger
