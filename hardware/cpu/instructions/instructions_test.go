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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestDecodeIsTotal(t *testing.T) {
	var documented, undocumented int

	for i := 0; i < 256; i++ {
		defn := instructions.Decode(uint8(i))
		test.DemandSuccess(t, defn != nil)

		// table is indexed by opcode
		test.ExpectEquality(t, defn.OpCode, uint8(i))

		// number of bytes agrees with addressing mode
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), defn.Mnemonic)

		test.ExpectInequality(t, defn.Mnemonic, "")
		test.ExpectEquality(t, defn.Cycles >= 2, true, defn.OpCode)

		if defn.Undocumented {
			undocumented++
			test.ExpectEquality(t, defn.IsImplemented(), false, defn.OpCode)
		} else {
			documented++
			test.ExpectEquality(t, defn.IsImplemented(), true, defn.OpCode)
			test.ExpectEquality(t, defn.Operator.String(), defn.Mnemonic)
		}
	}

	test.ExpectEquality(t, documented, 151)
	test.ExpectEquality(t, undocumented, 105)
}

func TestDefinitionDetails(t *testing.T) {
	defn := instructions.Decode(0x6c)
	test.ExpectEquality(t, defn.Operator, instructions.Jmp)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defn.Cycles, 5)

	defn = instructions.Decode(0xb1)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.IndirectIndexed)
	test.ExpectEquality(t, defn.PageSensitive, true)

	// stores are never page sensitive
	defn = instructions.Decode(0x9d)
	test.ExpectEquality(t, defn.PageSensitive, false)
	test.ExpectEquality(t, defn.Cycles, 5)
	test.ExpectEquality(t, defn.Effect, instructions.Write)

	defn = instructions.Decode(0xd0)
	test.ExpectEquality(t, defn.IsBranch(), true)
	test.ExpectEquality(t, instructions.Decode(0x4c).IsBranch(), false)

	defn = instructions.Decode(0xa7)
	test.ExpectEquality(t, defn.Mnemonic, "LAX")
	test.ExpectEquality(t, defn.Undocumented, true)
	test.ExpectEquality(t, defn.Operator, instructions.Unimplemented)
}

func TestLookupOperator(t *testing.T) {
	o, ok := instructions.LookupOperator("ADC")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, instructions.Adc)

	_, ok = instructions.LookupOperator("LAX")
	test.ExpectFailure(t, ok)

	_, ok = instructions.LookupOperator("???")
	test.ExpectFailure(t, ok)
}
