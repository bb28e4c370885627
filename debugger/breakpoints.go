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

// breakpoints are used to halt execution when the program counter reaches a
// specific address. the instruction at the address is not executed until
// the emulation is resumed.

package debugger

import (
	"fmt"
	"sort"
	"strings"
)

type breakpoint uint16

func (bp breakpoint) String() string {
	return fmt.Sprintf("PC->%04X", uint16(bp))
}

// breakpoints keeps track of all the currently defined breakpoints.
type breakpoints struct {
	breaks map[breakpoint]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		breaks: make(map[breakpoint]bool),
	}
}

// add a breakpoint. returns false if the breakpoint already exists.
func (bps *breakpoints) add(address uint16) bool {
	bp := breakpoint(address)
	if bps.breaks[bp] {
		return false
	}
	bps.breaks[bp] = true
	return true
}

// drop a breakpoint. returns false if the breakpoint does not exist.
func (bps *breakpoints) drop(address uint16) bool {
	bp := breakpoint(address)
	if !bps.breaks[bp] {
		return false
	}
	delete(bps.breaks, bp)
	return true
}

func (bps *breakpoints) clear() {
	bps.breaks = make(map[breakpoint]bool)
}

func (bps *breakpoints) len() int {
	return len(bps.breaks)
}

// check returns the matching breakpoint if the address has a breakpoint.
func (bps *breakpoints) check(address uint16) (breakpoint, bool) {
	bp := breakpoint(address)
	return bp, bps.breaks[bp]
}

// list returns the breakpoints in address order.
func (bps *breakpoints) list() []breakpoint {
	l := make([]breakpoint, 0, len(bps.breaks))
	for bp := range bps.breaks {
		l = append(l, bp)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

func (bps *breakpoints) String() string {
	if len(bps.breaks) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, bp := range bps.list() {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("% 2d: %s", i, bp))
	}
	return s.String()
}
