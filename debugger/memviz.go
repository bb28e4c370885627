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

package debugger

import (
	"bufio"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher2a03/curated"
)

// memviz writes a graphviz description of the most recent CPU result and
// the cartridge header to the named file.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	// memviz.Map does not return write errors. the buffered writer keeps
	// the first one and returns it from Flush()
	w := bufio.NewWriter(f)

	if dbg.nes.Cart != nil {
		memviz.Map(w, &dbg.nes.CPU.LastResult, dbg.nes.Cart.Header)
	} else {
		memviz.Map(w, &dbg.nes.CPU.LastResult)
	}

	err = w.Flush()
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	return nil
}
