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

// Package disassembly creates a static disassembly of memory.
//
// The disassembly is linear. Decoding begins at the specified address and
// continues with the byte following each instruction. This means that data
// will be decoded as though it were code, and that code reached only by a
// jump into the middle of another instruction will not be seen. For the
// purposes of the debugger and for examining test ROMs this is sufficient.
//
// Operands are not annotated with the contents of memory because the values
// of the registers are not known. The Next field of an Entry lists the
// addresses that a flow instruction can transfer control to.
package disassembly
