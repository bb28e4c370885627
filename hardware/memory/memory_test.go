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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/test"
)

// simple mapper that drives $8000 to $FFFF only.
type rom struct {
	data [0x8000]uint8
}

func (r *rom) Read(address uint16) (uint8, bool) {
	if address < 0x8000 {
		return 0, false
	}
	return r.data[address-0x8000], true
}

func (r *rom) Write(_ uint16, _ uint8) bool {
	return false
}

func (r *rom) Peek(address uint16) (uint8, bool) {
	return r.Read(address)
}

func (r *rom) Poke(address uint16, data uint8) bool {
	if address < 0x8000 {
		return false
	}
	r.data[address-0x8000] = data
	return true
}

func TestMapAddress(t *testing.T) {
	area, ma := memory.MapAddress(0x1801)
	test.ExpectEquality(t, area, memory.InternalRAM)
	test.ExpectEquality(t, ma, uint16(0x0001))

	area, ma = memory.MapAddress(0x3ffa)
	test.ExpectEquality(t, area, memory.PPURegisters)
	test.ExpectEquality(t, ma, uint16(0x2002))

	area, ma = memory.MapAddress(0x4015)
	test.ExpectEquality(t, area, memory.APURegisters)
	test.ExpectEquality(t, ma, uint16(0x4015))

	area, ma = memory.MapAddress(0x4020)
	test.ExpectEquality(t, area, memory.Cartridge)
	test.ExpectEquality(t, ma, uint16(0x4020))
}

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(0x0012, 0x34)
	test.ExpectEquality(t, mem.Read(0x0812), uint8(0x34))
	test.ExpectEquality(t, mem.Read(0x1012), uint8(0x34))
	test.ExpectEquality(t, mem.Read(0x1812), uint8(0x34))

	mem.Write(0x1fff, 0x56)
	test.ExpectEquality(t, mem.Read(0x07ff), uint8(0x56))

	// PPU registers repeat every eight bytes
	mem.Write(0x2003, 0x78)
	test.ExpectEquality(t, mem.Read(0x200b), uint8(0x78))
	test.ExpectEquality(t, mem.Read(0x3ffb), uint8(0x78))

	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x0012), uint8(0x00))
}

func TestOpenBus(t *testing.T) {
	cart := &rom{}
	cart.data[0x7ffc] = 0x00
	cart.data[0x7ffd] = 0xc0

	mem := memory.NewMemory(cart)
	test.ExpectEquality(t, mem.Read(0xfffd), uint8(0xc0))

	// nothing drives $5000 so the last value on the data bus is returned
	test.ExpectEquality(t, mem.Read(0x5000), uint8(0xc0))
	test.ExpectEquality(t, mem.Peek(0x5000), uint8(0xc0))

	// writes to ROM are ignored
	mem.Write(0x8000, 0xff)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x00))

	// but pokes are not
	mem.Poke(0x8000, 0xff)
	test.ExpectEquality(t, mem.Peek(0x8000), uint8(0xff))

	// no cartridge at all
	mem.AttachCartridge(nil)
	mem.Write(0x0000, 0x99)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x99))
}

func TestLastAccess(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.Write(0x0200, 0x42)
	test.ExpectEquality(t, mem.LastAccess(), memory.Access{Address: 0x0200, Data: 0x42, Write: true})
	test.ExpectEquality(t, mem.LastAccess().String(), "write 42 -> 0200")

	_ = mem.Read(0x0a00)
	test.ExpectEquality(t, mem.LastAccess(), memory.Access{Address: 0x0a00, Data: 0x42})

	// peek does not change the bus
	mem.Poke(0x0300, 0x11)
	_ = mem.Peek(0x0300)
	test.ExpectEquality(t, mem.LastAccess().Address, uint16(0x0a00))
}

func TestRAM(t *testing.T) {
	ram := memory.NewRAM()
	ram.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectEquality(t, ram.Read(0xfffe), uint8(0x01))
	test.ExpectEquality(t, ram.Read(0xffff), uint8(0x02))
	test.ExpectEquality(t, ram.Read(0x0000), uint8(0x03))

	ram.Clear()
	test.ExpectEquality(t, ram.Peek(0xffff), uint8(0x00))
}
