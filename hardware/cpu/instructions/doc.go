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

// Package instructions defines the table of 2A03 instruction definitions.
// Every one of the 256 opcodes has an entry in the table. The 151 documented
// opcodes are implemented by the CPU. The remaining opcodes are described
// (addressing mode, cycle count, conventional mnemonic) but their Operator is
// Unimplemented and the CPU will refuse to execute them.
//
// The table is generated from the instructions.csv file in the generator
// directory.
package instructions

//go:generate go run ./generator
