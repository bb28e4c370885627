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

package trace

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// PeekFunc reads memory without side effects.
type PeekFunc func(address uint16) uint8

// Disassemble returns the instruction in the entry as assembly language in
// the style of Nintendulator. If peek is not nil then the operand is
// annotated with the effective address and the value in memory. The X and Y
// fields of the entry are used to calculate indexed addresses.
func Disassemble(e Entry, peek PeekFunc) string {
	if e.IsInterrupt() {
		return fmt.Sprintf("[%s]", e.Interrupt)
	}

	defn := instructions.Decode(e.Bytes[0])
	mnemonic := defn.Mnemonic

	// the entry may not have all the bytes required by the definition
	if e.ByteCount < defn.Bytes {
		return mnemonic
	}

	zp := e.Bytes[1]
	abs := uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])

	// peek a 16 bit value from the zero page. the high byte wraps around to
	// the start of the zero page
	peekZP16 := func(ptr uint8) uint16 {
		return uint16(peek(uint16(ptr+1)))<<8 | uint16(peek(uint16(ptr)))
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		return mnemonic

	case instructions.Accumulator:
		return fmt.Sprintf("%s A", mnemonic)

	case instructions.Immediate:
		return fmt.Sprintf("%s #$%02X", mnemonic, zp)

	case instructions.Relative:
		target := e.PC + 2 + uint16(int8(zp))
		return fmt.Sprintf("%s $%04X", mnemonic, target)

	case instructions.ZeroPage:
		if peek == nil {
			return fmt.Sprintf("%s $%02X", mnemonic, zp)
		}
		return fmt.Sprintf("%s $%02X = %02X", mnemonic, zp, peek(uint16(zp)))

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		idx, reg := e.X, "X"
		if defn.AddressingMode == instructions.ZeroPageIndexedY {
			idx, reg = e.Y, "Y"
		}
		if peek == nil {
			return fmt.Sprintf("%s $%02X,%s", mnemonic, zp, reg)
		}
		ea := zp + idx
		return fmt.Sprintf("%s $%02X,%s @ %02X = %02X", mnemonic, zp, reg, ea, peek(uint16(ea)))

	case instructions.Absolute:
		if peek == nil || defn.Effect == instructions.Flow || defn.Effect == instructions.Subroutine {
			return fmt.Sprintf("%s $%04X", mnemonic, abs)
		}
		return fmt.Sprintf("%s $%04X = %02X", mnemonic, abs, peek(abs))

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		idx, reg := e.X, "X"
		if defn.AddressingMode == instructions.AbsoluteIndexedY {
			idx, reg = e.Y, "Y"
		}
		if peek == nil {
			return fmt.Sprintf("%s $%04X,%s", mnemonic, abs, reg)
		}
		ea := abs + uint16(idx)
		return fmt.Sprintf("%s $%04X,%s @ %04X = %02X", mnemonic, abs, reg, ea, peek(ea))

	case instructions.Indirect:
		if peek == nil {
			return fmt.Sprintf("%s ($%04X)", mnemonic, abs)
		}
		// the high byte is read from the same page as the low byte
		hi := abs&0xff00 | uint16(uint8(abs)+1)
		target := uint16(peek(hi))<<8 | uint16(peek(abs))
		return fmt.Sprintf("%s ($%04X) = %04X", mnemonic, abs, target)

	case instructions.IndexedIndirect:
		if peek == nil {
			return fmt.Sprintf("%s ($%02X,X)", mnemonic, zp)
		}
		ptr := zp + e.X
		ea := peekZP16(ptr)
		return fmt.Sprintf("%s ($%02X,X) @ %02X = %04X = %02X", mnemonic, zp, ptr, ea, peek(ea))

	case instructions.IndirectIndexed:
		if peek == nil {
			return fmt.Sprintf("%s ($%02X),Y", mnemonic, zp)
		}
		base := peekZP16(zp)
		ea := base + uint16(e.Y)
		return fmt.Sprintf("%s ($%02X),Y = %04X @ %04X = %02X", mnemonic, zp, base, ea, peek(ea))
	}

	return mnemonic
}
