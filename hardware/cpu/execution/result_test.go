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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result

	// not final
	test.ExpectFailure(t, r.IsValid())

	// LDA abs,X without page fault
	r = execution.Result{Defn: instructions.Decode(0xbd), ByteCount: 3, Cycles: 4, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	// with page fault
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	// page fault on an instruction that is not page sensitive
	r = execution.Result{Defn: instructions.Decode(0x9d), ByteCount: 3, Cycles: 6, PageFault: true, Final: true}
	test.ExpectFailure(t, r.IsValid())

	// wrong byte count
	r = execution.Result{Defn: instructions.Decode(0xea), ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	// BNE not taken
	r := execution.Result{Defn: instructions.Decode(0xd0), ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	// taken
	r.BranchSuccess = true
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())

	// taken to a different page
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())
}

func TestInterruptValidity(t *testing.T) {
	r := execution.Result{Interrupt: execution.NMI, Cycles: 7, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "0000 NMI (7 cycles)")

	r.Cycles = 6
	test.ExpectFailure(t, r.IsValid())
}
