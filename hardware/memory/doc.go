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

// Package memory implements the CPU address space of the NES.
//
// The RAM type is a flat 64K read/write memory, useful for running test
// programs that expect the entire address space to be available.
//
// The Memory type is the NES memory map. The 2K of internal RAM is mirrored
// four times through $1FFF. The eight PPU registers are mirrored through
// $3FFF and the APU and IO registers occupy $4000 to $401F. Neither the PPU
// nor the APU are emulated so these registers behave like plain RAM. Everything
// from $4020 upwards belongs to the cartridge.
//
// Reading an address that nothing drives returns the value last seen on the
// data bus.
package memory
