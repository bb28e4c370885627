// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package symbols

import (
	"fmt"
	"strings"
)

// SearchTable is used to select and identify a symbol table when searching.
type SearchTable int

// List of valid symbol table identifiers.
const (
	SearchAll SearchTable = iota
	SearchLabel
	SearchRead
	SearchWrite
)

func (t SearchTable) String() string {
	switch t {
	case SearchAll:
		return "unspecified"
	case SearchLabel:
		return "label"
	case SearchRead:
		return "read"
	case SearchWrite:
		return "write"
	}
	return ""
}

// SearchResults contains the normalised symbol info found in the SearchTable.
type SearchResults struct {
	Table   SearchTable
	Symbol  string
	Address uint16
}

func (res SearchResults) String() string {
	return fmt.Sprintf("%s -> %04X (%s)", res.Symbol, res.Address, res.Table)
}

// Search returns the address of the symbol. Returns nil if the symbol can not
// be found.
//
// Matching is case-insensitive and when the target is SearchAll the tables
// are searched in order: label > read > write.
func (sym *Symbols) Search(symbol string, target SearchTable) *SearchResults {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	symbol = strings.ToUpper(symbol)
	for _, t := range sym.tables(target) {
		if norm, a, ok := t.t.search(symbol); ok {
			return &SearchResults{
				Table:   t.id,
				Symbol:  norm,
				Address: a,
			}
		}
	}

	return nil
}

// ReverseSearch returns the symbol for the address. Returns nil if there is
// no symbol.
//
// When the target is SearchAll the tables are searched in order: label >
// read > write.
func (sym *Symbols) ReverseSearch(address uint16, target SearchTable) *SearchResults {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	for _, t := range sym.tables(target) {
		if s, ok := t.t.entries[address]; ok {
			return &SearchResults{
				Table:   t.id,
				Symbol:  s,
				Address: address,
			}
		}
	}

	return nil
}
