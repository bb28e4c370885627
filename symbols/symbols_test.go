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

package symbols_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/symbols"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestCanonicalSymbols(t *testing.T) {
	sym := symbols.NewSymbols()

	res := sym.ReverseSearch(0x2002, symbols.SearchRead)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Symbol, "PPUSTATUS")

	// $4017 is a different register depending on the direction of access
	res = sym.ReverseSearch(0x4017, symbols.SearchRead)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Symbol, "JOY2")
	res = sym.ReverseSearch(0x4017, symbols.SearchWrite)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Symbol, "FRAMECNT")

	test.ExpectSuccess(t, sym.ReverseSearch(0x2000, symbols.SearchRead) == nil)
	test.ExpectSuccess(t, sym.ReverseSearch(0x0200, symbols.SearchAll) == nil)

	res = sym.Search("ppuctrl", symbols.SearchAll)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Address, uint16(0x2000))
	test.ExpectEquality(t, res.Table, symbols.SearchWrite)
	test.ExpectEquality(t, res.String(), "PPUCTRL -> 2000 (write)")

	test.ExpectEquality(t, sym.MaxWidth(symbols.SearchWrite), len("TRI_LINEAR"))
}

func TestReadSymbols(t *testing.T) {
	sym := symbols.NewSymbols()

	n, err := sym.ReadSymbols(strings.NewReader(`--- Symbol List (sorted by symbol)
reset                    c000
nmi c0a0
al 00C100 .irq
al 00C200
not_an_address zzzz
`))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	res := sym.Search("RESET", symbols.SearchAll)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Address, uint16(0xc000))
	test.ExpectEquality(t, res.Table, symbols.SearchLabel)

	res = sym.ReverseSearch(0xc100, symbols.SearchAll)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Symbol, "irq")

	// labels take priority over register names
	sym.AddLabel(0x2000, "ctrl")
	res = sym.ReverseSearch(0x2000, symbols.SearchAll)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Symbol, "ctrl")

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, sym.ListSymbols(w, symbols.SearchLabel))
	test.ExpectEquality(t, w.String(), "label symbols\n-------------\n2000 -> ctrl\nC000 -> reset\nC0A0 -> nmi\nC100 -> irq\n")
}

func TestReadSymbolsFile(t *testing.T) {
	sym := symbols.NewSymbols()
	test.ExpectFailure(t, sym.ReadSymbolsFile(filepath.Join(t.TempDir(), "missing.sym")))

	fn := filepath.Join(t.TempDir(), "test.lbl")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("al 00C000 .start\n"), 0o644))
	test.ExpectSuccess(t, sym.ReadSymbolsFile(fn))

	res := sym.Search("start", symbols.SearchLabel)
	test.DemandSuccess(t, res != nil)
	test.ExpectEquality(t, res.Address, uint16(0xc000))
}
