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

// RAM is a flat 64K memory. Every address can be read and written.
type RAM struct {
	data [0x10000]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.data[address]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.data[address] = data
}

// Peek implements the cpubus.Debugger interface.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.data[address]
}

// Poke implements the cpubus.Debugger interface.
func (ram *RAM) Poke(address uint16, data uint8) {
	ram.data[address] = data
}

// Load copies data into memory starting at origin. Data that runs past the
// top of memory wraps around to address zero.
func (ram *RAM) Load(origin uint16, data []uint8) {
	for i, d := range data {
		ram.data[origin+uint16(i)] = d
	}
}

// Clear sets all bytes in memory to zero.
func (ram *RAM) Clear() {
	ram.data = [0x10000]uint8{}
}
