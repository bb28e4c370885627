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

package registers

import (
	"strings"
)

// Flag is a single bit in the status register.
type Flag uint8

// List of valid Flag values. The Break and Unused bits only have meaning in
// the copy of the status register pushed to the stack.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	Decimal          Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the
// StatusRegister type. The break bit is ignored and the unused bit is always
// set.
func NewStatusRegister(val uint8) StatusRegister {
	var sr StatusRegister
	sr.Load(val)
	return sr
}

// Label returns an identifying string for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(f Flag, on, off rune) {
		if sr.value&uint8(f) == uint8(f) {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(Negative, 'N', 'n')
	flag(Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(Break, 'B', 'b')
	flag(Decimal, 'D', 'd')
	flag(InterruptDisable, 'I', 'i')
	flag(Zero, 'Z', 'z')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Value converts the StatusRegister to an 8 bit value. Bit 5 is always set.
func (sr StatusRegister) Value() uint8 {
	return sr.value | uint8(Unused)
}

// Load sets the status register from an 8 bit value. This is the behaviour
// of PLP and RTI: the break bit does not exist in the register and the
// unused bit is always one.
func (sr *StatusRegister) Load(val uint8) {
	sr.value = (val &^ uint8(Break)) | uint8(Unused)
}

// Push returns the value to be written to the stack. The break bit is set
// for PHP and BRK and clear for hardware interrupts.
func (sr StatusRegister) Push(brk bool) uint8 {
	v := sr.Value()
	if brk {
		v |= uint8(Break)
	}
	return v
}

// Is returns the state of the flag.
func (sr StatusRegister) Is(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// Set changes the state of the flag. The break and unused bits cannot be
// changed.
func (sr *StatusRegister) Set(f Flag, on bool) {
	f &^= Break | Unused
	if on {
		sr.value |= uint8(f)
	} else {
		sr.value &^= uint8(f)
	}
}

// SetZN sets the zero and negative flags according to the value.
func (sr *StatusRegister) SetZN(val uint8) {
	sr.Set(Zero, val == 0)
	sr.Set(Negative, val&0x80 == 0x80)
}

// Carry flag.
func (sr StatusRegister) Carry() bool { return sr.Is(Carry) }

// Zero flag.
func (sr StatusRegister) Zero() bool { return sr.Is(Zero) }

// InterruptDisable flag.
func (sr StatusRegister) InterruptDisable() bool { return sr.Is(InterruptDisable) }

// Decimal flag.
func (sr StatusRegister) Decimal() bool { return sr.Is(Decimal) }

// Overflow flag.
func (sr StatusRegister) Overflow() bool { return sr.Is(Overflow) }

// Negative flag.
func (sr StatusRegister) Negative() bool { return sr.Is(Negative) }

// SetCarry flag.
func (sr *StatusRegister) SetCarry(on bool) { sr.Set(Carry, on) }

// SetZero flag.
func (sr *StatusRegister) SetZero(on bool) { sr.Set(Zero, on) }

// SetInterruptDisable flag.
func (sr *StatusRegister) SetInterruptDisable(on bool) { sr.Set(InterruptDisable, on) }

// SetDecimal flag.
func (sr *StatusRegister) SetDecimal(on bool) { sr.Set(Decimal, on) }

// SetOverflow flag.
func (sr *StatusRegister) SetOverflow(on bool) { sr.Set(Overflow, on) }

// SetNegative flag.
func (sr *StatusRegister) SetNegative(on bool) { sr.Set(Negative, on) }
