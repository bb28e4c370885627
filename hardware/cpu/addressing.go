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

package cpu

import (
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// resolveAddress reads the operand of the instruction and returns the
// effective address. The PC is advanced past the operand.
//
// For immediate addressing the returned address is that of the operand
// itself. For relative addressing it is the branch target. For implied and
// accumulator addressing the address is meaningless.
//
// The PageFault and CPUBug fields of LastResult are set as appropriate.
func (mc *CPU) resolveAddress(defn *instructions.Definition) uint16 {
	var address uint16

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// no operand

	case instructions.Immediate:
		address = mc.PC.Address()
		mc.LastResult.InstructionData = uint16(mc.read8BitPC())

	case instructions.Relative:
		offset := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(offset)

		// the offset is signed and relative to the following instruction
		address = mc.PC.Address() + uint16(int8(offset))

	case instructions.ZeroPage:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp)

	case instructions.ZeroPageIndexedX:
		address = mc.zeroPageIndexed(mc.X.Value())

	case instructions.ZeroPageIndexedY:
		address = mc.zeroPageIndexed(mc.Y.Value())

	case instructions.Absolute:
		address = mc.read16BitPC()

	case instructions.AbsoluteIndexedX:
		address = mc.absoluteIndexed(defn, mc.read16BitPC(), mc.X.Value())

	case instructions.AbsoluteIndexedY:
		address = mc.absoluteIndexed(defn, mc.read16BitPC(), mc.Y.Value())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command
		indirect := mc.read16BitPC()

		lo := mc.read8Bit(indirect)

		// the high byte is read from the same page as the low byte. if the
		// pointer is at the end of a page the high byte comes from the start
		// of that page and not from the start of the next page
		hiAddress := indirect&0xff00 | uint16(uint8(indirect)+1)
		if indirect&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		hi := mc.read8Bit(hiAddress)

		address = uint16(hi)<<8 | uint16(lo)

	case instructions.IndexedIndirect: // x indexing
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)

		// using 8bit addition. the pointer never leaves the zero page
		ptr := zp + mc.X.Value()
		if ptr == 0xff {
			mc.LastResult.CPUBug = execution.ZeroPagePointerBug
		} else if ptr < zp {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		address = mc.read16BitZeroPage(ptr)

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)

		if zp == 0xff {
			mc.LastResult.CPUBug = execution.ZeroPagePointerBug
		}
		base := mc.read16BitZeroPage(zp)
		address = base + uint16(mc.Y.Value())
		mc.LastResult.PageFault = defn.PageSensitive && base&0xff00 != address&0xff00
	}

	return address
}

func (mc *CPU) zeroPageIndexed(index uint8) uint16 {
	zp := mc.read8BitPC()
	mc.LastResult.InstructionData = uint16(zp)

	mc.acc8.Load(zp)
	carry, _ := mc.acc8.Add(index, false)

	// zero page indexing never leaves the zero page
	if carry {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return mc.acc8.Address()
}

func (mc *CPU) absoluteIndexed(defn *instructions.Definition, base uint16, index uint8) uint16 {
	address := base + uint16(index)
	mc.LastResult.PageFault = defn.PageSensitive && base&0xff00 != address&0xff00
	return address
}
