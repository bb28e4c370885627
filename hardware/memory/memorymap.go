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

package memory

// Area identifies a region of the NES memory map.
type Area int

// List of memory areas.
const (
	Undefined Area = iota
	InternalRAM
	PPURegisters
	APURegisters
	Cartridge
)

func (a Area) String() string {
	switch a {
	case InternalRAM:
		return "RAM"
	case PPURegisters:
		return "PPU"
	case APURegisters:
		return "APU/IO"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// Boundaries of the memory areas and the size of the mirrored regions.
const (
	OriginRAM     = uint16(0x0000)
	MemtopRAM     = uint16(0x1fff)
	SizeRAM       = 0x0800
	OriginPPU     = uint16(0x2000)
	MemtopPPU     = uint16(0x3fff)
	SizePPU       = 0x0008
	OriginAPU     = uint16(0x4000)
	MemtopAPU     = uint16(0x401f)
	SizeAPU       = 0x0020
	OriginCart    = uint16(0x4020)
	MemtopCart    = uint16(0xffff)
	OriginCartRAM = uint16(0x6000)
	OriginCartROM = uint16(0x8000)
)

// MapAddress returns the area the address belongs to and the address with
// any mirroring removed.
func MapAddress(address uint16) (Area, uint16) {
	switch {
	case address <= MemtopRAM:
		return InternalRAM, address & (SizeRAM - 1)
	case address <= MemtopPPU:
		return PPURegisters, OriginPPU | address&(SizePPU-1)
	case address <= MemtopAPU:
		return APURegisters, address
	}
	return Cartridge, address
}
