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
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestBreakpoints(t *testing.T) {
	bps := newBreakpoints()
	test.ExpectEquality(t, bps.String(), "no breakpoints")

	test.ExpectSuccess(t, bps.add(0xc010))
	test.ExpectSuccess(t, bps.add(0x8000))
	test.ExpectFailure(t, bps.add(0xc010))
	test.ExpectEquality(t, bps.len(), 2)

	bp, ok := bps.check(0xc010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, bp.String(), "PC->C010")

	_, ok = bps.check(0xc011)
	test.ExpectFailure(t, ok)

	// listed in address order
	test.ExpectEquality(t, bps.String(), " 0: PC->8000\n 1: PC->C010")

	test.ExpectSuccess(t, bps.drop(0x8000))
	test.ExpectFailure(t, bps.drop(0x8000))
	test.ExpectEquality(t, bps.len(), 1)

	bps.clear()
	test.ExpectEquality(t, bps.len(), 0)
	_, ok = bps.check(0xc010)
	test.ExpectFailure(t, ok)
}
