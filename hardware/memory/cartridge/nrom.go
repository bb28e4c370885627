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

// nrom is mapper 0. No bank switching. 16K or 32K of PRG ROM mapped at $8000
// and 8K of RAM mapped at $6000.
type nrom struct {
	prg []uint8
	chr []uint8
	ram []uint8
}

func newNROM(h Header, trainer []uint8, prg []uint8, chr []uint8) (*nrom, error) {
	switch len(prg) {
	case prgBankSize, prgBankSize * 2:
	default:
		return nil, fmt.Errorf("NROM requires one or two PRG banks (%d)", h.PRGBanks)
	}

	cart := &nrom{
		prg: prg,
		chr: chr,
		ram: make([]uint8, prgRAMUnitSize),
	}

	// the trainer occupies $7000 to $71FF
	copy(cart.ram[0x1000:], trainer)

	return cart, nil
}

func (cart *nrom) ID() string {
	return "NROM"
}

func (cart *nrom) read(address uint16) (uint8, bool) {
	switch {
	case address >= 0x8000:
		// a single 16K bank is mirrored because len(prg)-1 masks bit 14
		return cart.prg[int(address-0x8000)&(len(cart.prg)-1)], true
	case address >= 0x6000:
		return cart.ram[address-0x6000], true
	}
	return 0, false
}

func (cart *nrom) write(address uint16, data uint8) bool {
	if address >= 0x6000 && address < 0x8000 {
		cart.ram[address-0x6000] = data
		return true
	}
	return false
}

func (cart *nrom) poke(address uint16, data uint8) bool {
	if address >= 0x8000 {
		cart.prg[int(address-0x8000)&(len(cart.prg)-1)] = data
		return true
	}
	return cart.write(address, data)
}
