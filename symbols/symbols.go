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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Sentinal error patterns.
const (
	SymbolsFileError = "symbols: %v"
)

// Symbols contains the label, read and write tables. It is safe to use from
// more than one goroutine.
type Symbols struct {
	crit sync.Mutex

	label *table
	read  *table
	write *table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The read and write tables are populated with the canonical names of the
// NES registers.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label: newTable(),
		read:  newTable(),
		write: newTable(),
	}
	for a, s := range nesReadSymbols {
		sym.read.add(a, s, true)
	}
	for a, s := range nesWriteSymbols {
		sym.write.add(a, s, true)
	}
	return sym
}

// AddLabel adds a label for the address. An existing label is replaced.
func (sym *Symbols) AddLabel(address uint16, label string) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	sym.label.add(address, label, true)
}

// ReadSymbolsFile adds the labels in the named file to the label table.
func (sym *Symbols) ReadSymbolsFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(SymbolsFileError, err)
	}
	defer f.Close()

	n, err := sym.ReadSymbols(f)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "symbols", "%d labels read from %s", n, filename)

	return nil
}

// ReadSymbols adds the labels read from io.Reader to the label table. Lines
// that can not be understood are ignored. Returns the number of labels
// added.
func (sym *Symbols) ReadSymbols(r io.Reader) (int, error) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	var n int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p := strings.Fields(scanner.Text())
		if len(p) < 2 || p[0] == "---" {
			continue // for loop
		}

		var symbol string
		var address string

		if p[0] == "al" {
			if len(p) < 3 {
				continue // for loop
			}
			address = p[1]
			symbol = strings.TrimPrefix(p[2], ".")
		} else {
			symbol = p[0]
			address = p[1]
		}

		a, err := strconv.ParseUint(address, 16, 32)
		if err != nil || a > 0xffff || symbol == "" {
			continue // for loop
		}

		sym.label.add(uint16(a), symbol, true)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, curated.Errorf(SymbolsFileError, err)
	}

	return n, nil
}

// MaxWidth returns the width of the longest symbol in the specified table.
func (sym *Symbols) MaxWidth(target SearchTable) int {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	w := 0
	for _, t := range sym.tables(target) {
		if t.t.maxWidth > w {
			w = t.t.maxWidth
		}
	}
	return w
}

type namedTable struct {
	id SearchTable
	t  *table
}

// the tables to search for the target, in order of preference.
func (sym *Symbols) tables(target SearchTable) []namedTable {
	switch target {
	case SearchLabel:
		return []namedTable{{SearchLabel, sym.label}}
	case SearchRead:
		return []namedTable{{SearchRead, sym.read}}
	case SearchWrite:
		return []namedTable{{SearchWrite, sym.write}}
	}
	return []namedTable{{SearchLabel, sym.label}, {SearchRead, sym.read}, {SearchWrite, sym.write}}
}
