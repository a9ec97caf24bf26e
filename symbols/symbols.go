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

// Package symbols describes the symbols attached to addresses in the
// emulated machine's memory. The debugging layer only ever reads symbols;
// how a symbol database is populated (map files, signature scanning, etc.)
// is the business of whatever implements the Resolver interface. The Table
// type is a simple implementation good enough for tests and for machines
// with hand-fed symbols.
package symbols

import (
	"fmt"
	"sort"
	"sync"
)

// Type classifies a symbol.
type Type int

// List of valid symbol types.
const (
	Data Type = iota
	Function
)

// Symbol is a named range of addresses.
type Symbol struct {
	Name    string
	Address uint32
	Size    uint32
	Type    Type

	// Index is the stable ordinal rank of the symbol within its database.
	// it survives lookups and re-sorts and is what display layers use for
	// deterministic per-symbol presentation.
	Index int
}

func (sym Symbol) String() string {
	return fmt.Sprintf("%s [%08x-%08x]", sym.Name, sym.Address, sym.Address+sym.Size-1)
}

// Resolver is how the debugging layer asks questions of a symbol database.
type Resolver interface {
	// SymbolFromAddress returns the symbol whose range covers the address,
	// or nil if there is none.
	SymbolFromAddress(address uint32) *Symbol

	// Description returns display text for the address. An address with no
	// symbol has an empty description.
	Description(address uint32) string
}

// Table is a map-free, sorted implementation of the Resolver interface.
type Table struct {
	crit sync.Mutex

	// sorted by address. ordinal indices are assigned in Add() order and
	// are not disturbed by the sorting.
	syms []Symbol
	ct   int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		syms: make([]Symbol, 0, 32),
	}
}

// Add a symbol to the table. A symbol with a size of zero covers exactly
// one address. Ordinal indices are assigned in the order symbols are
// added.
func (tbl *Table) Add(name string, address uint32, size uint32, typ Type) {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	if size == 0 {
		size = 1
	}

	tbl.syms = append(tbl.syms, Symbol{
		Name:    name,
		Address: address,
		Size:    size,
		Type:    typ,
		Index:   tbl.ct,
	})
	tbl.ct++

	sort.Slice(tbl.syms, func(i, j int) bool {
		return tbl.syms[i].Address < tbl.syms[j].Address
	})
}

// SymbolFromAddress implements the Resolver interface. The returned symbol
// is a copy; mutating it has no effect on the table.
func (tbl *Table) SymbolFromAddress(address uint32) *Symbol {
	tbl.crit.Lock()
	defer tbl.crit.Unlock()

	// index of the first symbol starting after the address
	i := sort.Search(len(tbl.syms), func(i int) bool {
		return tbl.syms[i].Address > address
	})
	if i == 0 {
		return nil
	}

	sym := tbl.syms[i-1]
	if address >= sym.Address && address-sym.Address < sym.Size {
		return &sym
	}
	return nil
}

// Description implements the Resolver interface.
func (tbl *Table) Description(address uint32) string {
	sym := tbl.SymbolFromAddress(address)
	if sym == nil {
		return ""
	}
	return sym.Name
}
