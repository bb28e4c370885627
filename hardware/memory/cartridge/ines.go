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
	"bytes"
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
)

// the four bytes at the start of every iNES image.
var inesIdentifier = []byte{'N', 'E', 'S', 0x1a}

// sizes of the various parts of an iNES image.
const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
	prgBankSize     = 0x4000
	chrBankSize     = 0x2000
	prgRAMUnitSize  = 0x2000
)

// Mirroring of the PPU nametables. Recorded from the header but otherwise
// unused because the PPU is not emulated.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four screen"
	}
	return "horizontal"
}

// Header is the information in the first 16 bytes of an iNES image.
type Header struct {
	// number of 16K PRG ROM banks
	PRGBanks int

	// number of 8K CHR ROM banks. zero means the board uses CHR RAM
	CHRBanks int

	Mapper    int
	Mirroring Mirroring
	Battery   bool
	Trainer   bool

	// size of PRG RAM in 8K units. zero is treated as one unit for
	// compatibility with older images
	PRGRAMSize int
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d, %dx16K PRG, %dx8K CHR, %s mirroring", h.Mapper, h.PRGBanks, h.CHRBanks, h.Mirroring)
}

// IsINES returns true if the data begins with the iNES identifier.
func IsINES(data []byte) bool {
	return len(data) >= len(inesIdentifier) && bytes.Equal(data[:len(inesIdentifier)], inesIdentifier)
}

// ParseHeader parses the first 16 bytes of an iNES image.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < inesHeaderSize {
		return h, curated.Errorf(InvalidImage, "too short for iNES header")
	}
	if !IsINES(data) {
		return h, curated.Errorf(InvalidImage, "missing iNES identifier")
	}

	flags6 := data[6]
	flags7 := data[7]

	h.PRGBanks = int(data[4])
	h.CHRBanks = int(data[5])
	h.Mapper = int(flags7&0xf0) | int(flags6>>4)
	h.Battery = flags6&0x02 == 0x02
	h.Trainer = flags6&0x04 == 0x04

	switch {
	case flags6&0x08 == 0x08:
		h.Mirroring = FourScreen
	case flags6&0x01 == 0x01:
		h.Mirroring = Vertical
	default:
		h.Mirroring = Horizontal
	}

	h.PRGRAMSize = int(data[8])
	if h.PRGRAMSize == 0 {
		h.PRGRAMSize = 1
	}

	if h.PRGBanks == 0 {
		return h, curated.Errorf(InvalidImage, "no PRG ROM")
	}

	return h, nil
}

// imageSize returns the number of bytes required for the image described by
// the header.
func (h Header) imageSize() int {
	n := inesHeaderSize + h.PRGBanks*prgBankSize + h.CHRBanks*chrBankSize
	if h.Trainer {
		n += inesTrainerSize
	}
	return n
}
