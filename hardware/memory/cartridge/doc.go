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

// Package cartridge fully implements loading of the cartridge formats
// supported by the emulator and the mapping of cartridge memory into the CPU
// address space.
//
// iNES images are recognised by their header. Only mapper 0 (NROM) is
// supported. NROM images have either one or two 16K banks of PRG ROM. A
// single bank is mirrored so that it is visible at both $8000 and $C000. The
// 8K area at $6000 is battery backed RAM on some boards and is always
// present. If the image contains a trainer, it is loaded into this RAM at
// $7000.
//
// Flat binaries are loaded at an explicit origin and are read only. They are
// useful for test programs that need nothing more than a block of code and
// the interrupt vectors.
package cartridge
