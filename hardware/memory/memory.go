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

import (
	"fmt"
)

// Mapper is implemented by anything that can be attached to the cartridge
// area of the memory map. Addresses are never mirrored before being passed to
// the mapper. The boolean return values indicate whether the mapper drives
// the address.
type Mapper interface {
	Read(address uint16) (uint8, bool)
	Write(address uint16, data uint8) bool
	Peek(address uint16) (uint8, bool)
	Poke(address uint16, data uint8) bool
}

// Access describes the most recent access of the data bus.
type Access struct {
	Address uint16
	Data    uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("write %02X -> %04X", a.Data, a.Address)
	}
	return fmt.Sprintf("read %04X -> %02X", a.Address, a.Data)
}

// Memory is the NES CPU memory map.
type Memory struct {
	ram [SizeRAM]uint8
	ppu [SizePPU]uint8
	apu [SizeAPU]uint8

	cart Mapper

	last Access
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The cartridge can be nil.
func NewMemory(cart Mapper) *Memory {
	return &Memory{cart: cart}
}

// AttachCartridge replaces the cartridge. A nil value leaves the cartridge
// area undriven.
func (mem *Memory) AttachCartridge(cart Mapper) {
	mem.cart = cart
}

// Reset clears internal RAM and the register stubs. The cartridge is
// unaffected.
func (mem *Memory) Reset() {
	mem.ram = [SizeRAM]uint8{}
	mem.ppu = [SizePPU]uint8{}
	mem.apu = [SizeAPU]uint8{}
	mem.last = Access{}
}

// LastAccess returns details of the most recent read or write.
func (mem *Memory) LastAccess() Access {
	return mem.last
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	data, ok := mem.read(address, false)
	if !ok {
		data = mem.last.Data
	}
	mem.last = Access{Address: address, Data: data}
	return data
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.write(address, data)
	mem.last = Access{Address: address, Data: data, Write: true}
}

// Peek implements the cpubus.Debugger interface. Undriven addresses return
// the current value of the data bus.
func (mem *Memory) Peek(address uint16) uint8 {
	data, ok := mem.read(address, true)
	if !ok {
		return mem.last.Data
	}
	return data
}

// Poke implements the cpubus.Debugger interface.
func (mem *Memory) Poke(address uint16, data uint8) {
	area, ma := MapAddress(address)
	if area == Cartridge {
		if mem.cart != nil {
			mem.cart.Poke(ma, data)
		}
		return
	}
	mem.write(address, data)
}

func (mem *Memory) read(address uint16, peek bool) (uint8, bool) {
	area, ma := MapAddress(address)
	switch area {
	case InternalRAM:
		return mem.ram[ma], true
	case PPURegisters:
		return mem.ppu[ma-OriginPPU], true
	case APURegisters:
		return mem.apu[ma-OriginAPU], true
	}

	if mem.cart == nil {
		return 0, false
	}
	if peek {
		return mem.cart.Peek(ma)
	}
	return mem.cart.Read(ma)
}

func (mem *Memory) write(address uint16, data uint8) {
	area, ma := MapAddress(address)
	switch area {
	case InternalRAM:
		mem.ram[ma] = data
	case PPURegisters:
		mem.ppu[ma-OriginPPU] = data
	case APURegisters:
		mem.apu[ma-OriginAPU] = data
	default:
		if mem.cart != nil {
			mem.cart.Write(ma, data)
		}
	}
}
