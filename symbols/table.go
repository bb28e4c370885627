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
	"sort"
	"strings"
)

// table maps an address to a symbol. it also keeps track of the widest
// symbol in the table.
type table struct {
	entries map[uint16]string

	// index of keys in entries. sortable through the sort.Interface
	idx []uint16

	// the longest symbol in the entries map
	maxWidth int
}

// newTable is the preferred method of initialisation for the table type.
func newTable() *table {
	return &table{
		entries: make(map[uint16]string),
	}
}

func (t *table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%04X -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// add symbol to the table. an existing symbol for the address is replaced
// only if prefer is true.
func (t *table) add(address uint16, symbol string, prefer bool) {
	if _, ok := t.entries[address]; ok {
		if !prefer {
			return
		}
	} else {
		t.idx = append(t.idx, address)
		sort.Sort(t)
	}

	t.entries[address] = symbol
	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}
}

// search for the symbol. the symbol argument should be in upper case.
func (t *table) search(symbol string) (string, uint16, bool) {
	for _, a := range t.idx {
		if strings.ToUpper(t.entries[a]) == symbol {
			return t.entries[a], a, true
		}
	}
	return "", 0, false
}

// Len implements the sort.Interface.
func (t *table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
