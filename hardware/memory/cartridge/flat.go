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

package cartridge

import (
	"fmt"
)

// flat is a block of read only memory at a fixed origin.
type flat struct {
	origin uint16
	data   []uint8
}

func newFlat(origin uint16, data []uint8) (*flat, error) {
	if origin < 0x4020 {
		return nil, fmt.Errorf("origin %04X is below cartridge space", origin)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no data")
	}
	if int(origin)+len(data) > 0x10000 {
		return nil, fmt.Errorf("%d bytes at origin %04X exceeds address space", len(data), origin)
	}
	return &flat{origin: origin, data: data}, nil
}

func (cart *flat) ID() string {
	return "flat"
}

func (cart *flat) read(address uint16) (uint8, bool) {
	if address < cart.origin {
		return 0, false
	}
	idx := int(address - cart.origin)
	if idx >= len(cart.data) {
		return 0, false
	}
	return cart.data[idx], true
}

func (cart *flat) write(_ uint16, _ uint8) bool {
	return false
}

func (cart *flat) poke(address uint16, data uint8) bool {
	if _, ok := cart.read(address); !ok {
		return false
	}
	cart.data[address-cart.origin] = data
	return true
}
