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

package execution

// Bug describes a known hardware quirk that was triggered by an instruction.
type Bug string

// List of CPU bugs. The 2A03 reproduces these in the same way as other 6502
// derived processors.
const (
	NoBug Bug = ""

	// JMP ($xxFF) takes the high byte of the target from $xx00
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the pointer for (zp,X) and (zp),Y addressing never leaves the zero page
	ZeroPagePointerBug Bug = "zero page pointer wrap"

	// zp,X and zp,Y addressing never leaves the zero page
	ZeroPageIndexBug Bug = "zero page index bug"
)
