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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), 1)

	// addition of 0xff with carry leaves the value unchanged
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)
	test.ExpectEquality(t, carry, true)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectEquality(t, carry, false)

	// signed overflow on subtraction: -128 - 1
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectEquality(t, carry, false)

	r8.Load(0x40)
	test.ExpectEquality(t, r8.IsBitV(), true)
	test.ExpectEquality(t, r8.String(), "40")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.ExpectEquality(t, pc.Address(), 0xfffe)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0xffff)

	// wraps around to the bottom of memory
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 0x0001)

	pc.Load(0xc000)
	test.ExpectEquality(t, pc.String(), "C000")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x01)
	test.ExpectEquality(t, sp.Address(), 0x0101)

	test.ExpectEquality(t, sp.Push(), 0x0101)
	test.ExpectEquality(t, sp.Push(), 0x0100)

	// pushing from zero wraps to the top of page one
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	// and pulling wraps back again
	test.ExpectEquality(t, sp.Pull(), 0x0100)
	test.ExpectEquality(t, sp.Pull(), 0x0101)
	test.ExpectEquality(t, sp.Value(), 0x01)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister(0x24)
	test.ExpectEquality(t, sr.Value(), 0x24)
	test.ExpectEquality(t, sr.String(), "nv-bdIzc")
	test.ExpectEquality(t, sr.InterruptDisable(), true)

	// the unused bit always reads as one
	sr.Load(0x00)
	test.ExpectEquality(t, sr.Value(), 0x20)

	// the break bit never exists in the register itself
	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), 0xef)
	test.ExpectEquality(t, sr.String(), "NV-bDIZC")

	// but is set when pushing for PHP and BRK
	test.ExpectEquality(t, sr.Push(true), 0xff)
	test.ExpectEquality(t, sr.Push(false), 0xef)

	sr.Set(registers.Break, true)
	test.ExpectEquality(t, sr.Value(), 0xef)
	sr.Set(registers.Unused, false)
	test.ExpectEquality(t, sr.Value(), 0xef)

	sr.SetCarry(false)
	sr.SetOverflow(false)
	sr.SetDecimal(false)
	test.ExpectEquality(t, sr.Value(), 0xa6)
	test.ExpectEquality(t, sr.Carry(), false)
	test.ExpectEquality(t, sr.Overflow(), false)
	test.ExpectEquality(t, sr.Decimal(), false)

	sr.SetZN(0x00)
	test.ExpectEquality(t, sr.Zero(), true)
	test.ExpectEquality(t, sr.Negative(), false)
	sr.SetZN(0x80)
	test.ExpectEquality(t, sr.Zero(), false)
	test.ExpectEquality(t, sr.Negative(), true)
	sr.SetZN(0x01)
	test.ExpectEquality(t, sr.Zero(), false)
	test.ExpectEquality(t, sr.Negative(), false)
}
