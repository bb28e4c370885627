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

// Package cpu emulates the Ricoh 2A03 found in the Nintendo Entertainment
// System. The 2A03 is a 6502 without the decimal arithmetic circuitry. The
// decimal flag can be set and cleared but it has no effect on ADC and SBC.
//
// Like all 8-bit processors of the era, the 2A03 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. If the memory also
// implements cpubus.Debugger then trace entries will include the values in
// memory referred to by each instruction.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		entry, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		fmt.Println(entry)
//	}
//
// Step() executes exactly one instruction or, if one is pending, services an
// interrupt. In both cases a trace.Entry is returned. For an instruction the
// entry describes the state of the CPU before the instruction is executed.
// For an interrupt the entry describes the state after the interrupt has
// been serviced.
//
// The LastResult field can be probed for information about the last
// instruction executed: the number of cycles it took, whether a page was
// crossed, whether a branch was taken and whether a known CPU bug was
// triggered. See the execution package for more information. Very useful for
// debuggers.
//
// Undocumented opcodes are not executed. Step() returns an
// UnimplementedOpcode error and leaves the CPU at the start of the
// instruction.
package cpu
