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

// bus access. the data bus cannot fail so none of these functions return an
// error.

func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// read8BitPC reads the byte at the PC and advances the PC. the ByteCount
// field of LastResult is incremented.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.read8Bit(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16BitPC reads a little endian address from the program and stores it
// in the InstructionData field of LastResult.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	mc.LastResult.InstructionData = uint16(hi)<<8 | uint16(lo)
	return mc.LastResult.InstructionData
}

// read16BitZeroPage reads a little endian address from the zero page. if the
// pointer is $FF the high byte is read from $00.
func (mc *CPU) read16BitZeroPage(ptr uint8) uint16 {
	lo := mc.read8Bit(uint16(ptr))
	hi := mc.read8Bit(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push8(value uint8) {
	mc.write8Bit(mc.SP.Push(), value)
}

func (mc *CPU) pull8() uint8 {
	return mc.read8Bit(mc.SP.Pull())
}

// high byte is pushed first.
func (mc *CPU) push16(value uint16) {
	mc.push8(uint8(value >> 8))
	mc.push8(uint8(value))
}

// low byte is pulled first.
func (mc *CPU) pull16() uint16 {
	lo := mc.pull8()
	hi := mc.pull8()
	return uint16(hi)<<8 | uint16(lo)
}
