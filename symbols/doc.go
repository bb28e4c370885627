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

// Package symbols associates names with addresses. There are three tables:
// labels, read symbols and write symbols.
//
// Read and write symbols are the canonical names of the PPU, APU and IO
// registers. They are separate tables because some registers behave
// differently when read to when written.
//
// Labels are taken from a symbols file. Two formats are understood: the
// symbol list produced by DASM, in which each line is a symbol followed by
// a hexadecimal address, and the VICE label file produced by ld65 with the
// -Ln option, in which each line has the form:
//
//	al 00C000 .reset
package symbols
