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

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
)

type cartMapper interface {
	ID() string
	read(address uint16) (uint8, bool)
	write(address uint16, data uint8) bool
	poke(address uint16, data uint8) bool
}

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// the iNES header. nil if the cartridge was not loaded from an iNES
	// image
	Header *Header

	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data is treated as an iNES image.
func NewCartridge(data []byte) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < h.imageSize() {
		return nil, curated.Errorf(InvalidImage, fmt.Sprintf("image truncated (%d bytes instead of %d)", len(data), h.imageSize()))
	}

	if h.Mapper != 0 {
		return nil, curated.Errorf(UnsupportedMapper, h.Mapper)
	}

	idx := inesHeaderSize

	var trainer []uint8
	if h.Trainer {
		trainer = data[idx : idx+inesTrainerSize]
		idx += inesTrainerSize
	}

	prg := make([]uint8, h.PRGBanks*prgBankSize)
	idx += copy(prg, data[idx:])

	chr := make([]uint8, h.CHRBanks*chrBankSize)
	copy(chr, data[idx:])

	mpr, err := newNROM(h, trainer, prg, chr)
	if err != nil {
		return nil, curated.Errorf(InvalidImage, err)
	}

	logger.Logf(logger.Allow, "cartridge", "iNES %s", h)
	if h.Trainer {
		logger.Log(logger.Allow, "cartridge", "trainer loaded at $7000")
	}

	return &Cartridge{Header: &h, mapper: mpr}, nil
}

// NewFlat creates a cartridge from a flat binary loaded at origin.
func NewFlat(data []byte, origin uint16) (*Cartridge, error) {
	mpr, err := newFlat(origin, append([]uint8{}, data...))
	if err != nil {
		return nil, curated.Errorf(InvalidImage, err)
	}
	logger.Logf(logger.Allow, "cartridge", "flat binary of %d bytes at $%04X", len(data), origin)
	return &Cartridge{mapper: mpr}, nil
}

// Load the cartridge described by the loader. The loader's mapping field
// decides how the data is interpreted.
func Load(cl *cartridgeloader.Loader) (*Cartridge, error) {
	err := cl.Load()
	if err != nil {
		return nil, err
	}

	var cart *Cartridge

	switch cl.Mapping {
	case cartridgeloader.MappingFlat:
		cart, err = NewFlat(cl.Data, cl.Origin)
	default:
		cart, err = NewCartridge(cl.Data)
	}
	if err != nil {
		return nil, err
	}

	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	return cart, nil
}

func (cart Cartridge) String() string {
	if cart.Filename == "" {
		return cart.ID()
	}
	return fmt.Sprintf("%s [%s]", cart.Filename, cart.ID())
}

// ID returns the name of the mapper.
func (cart Cartridge) ID() string {
	if cart.mapper == nil {
		return "-"
	}
	return cart.mapper.ID()
}

// Read implements the memory.Mapper interface.
func (cart *Cartridge) Read(address uint16) (uint8, bool) {
	if cart.mapper == nil {
		return 0, false
	}
	return cart.mapper.read(address)
}

// Write implements the memory.Mapper interface.
func (cart *Cartridge) Write(address uint16, data uint8) bool {
	if cart.mapper == nil {
		return false
	}
	return cart.mapper.write(address, data)
}

// Peek implements the memory.Mapper interface.
func (cart *Cartridge) Peek(address uint16) (uint8, bool) {
	return cart.Read(address)
}

// Poke implements the memory.Mapper interface. Unlike Write(), Poke() can
// change the contents of ROM.
func (cart *Cartridge) Poke(address uint16, data uint8) bool {
	if cart.mapper == nil {
		return false
	}
	return cart.mapper.poke(address, data)
}
