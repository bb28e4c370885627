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
	"io"
	"strings"
)

// ListSymbols writes the symbols in the specified table to io.Writer. Every
// table is listed if the target is SearchAll.
func (sym *Symbols) ListSymbols(output io.Writer, target SearchTable) error {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	s := strings.Builder{}
	for i, t := range sym.tables(target) {
		if i > 0 {
			s.WriteString("\n")
		}
		h := fmt.Sprintf("%s symbols", t.id)
		s.WriteString(fmt.Sprintf("%s\n%s\n", h, strings.Repeat("-", len(h))))
		s.WriteString(t.t.String())
	}

	_, err := io.WriteString(output, s.String())
	return err
}
