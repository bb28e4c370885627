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

// Package cpubus defines the interface between the CPU and memory. Reads and
// writes never fail: every address in the 16 bit address space is defined
// even if only by the value last seen on the data bus.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Debugger defines the operations for the memory system when accessed from
// outside the emulated machine. Peek and Poke never have side effects and do
// not affect the data bus.
type Debugger interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// List of interrupt vectors. Each vector is a little endian address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// ReadVector returns the 16 bit address stored at the vector location.
func ReadVector(mem Memory, vector uint16) uint16 {
	lo := uint16(mem.Read(vector))
	hi := uint16(mem.Read(vector + 1))
	return hi<<8 | lo
}
