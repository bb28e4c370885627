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

// Package registers implements the three types of registers found in the
// 2A03. The 8 bit general purpose registers (A, X and Y) and the stack
// pointer are instances of the Register and StackPointer types. The program
// counter is a 16 bit register. The status register is a single byte with
// named accessors for each flag.
//
// Registers do not affect the status register themselves. Setting the flags
// as appropriate is the responsibility of the CPU:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.SetZN(a.Value())
//
// The 2A03 has no binary coded decimal arithmetic. The decimal flag can be set
// and cleared but it has no effect on ADC or SBC.
package registers
