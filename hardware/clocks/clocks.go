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

// Package clocks defines the speed of the CPU clock in the NES and its
// regional variants. Values are in MHz.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

const (
	NTSC  = 1.789773
	PAL   = 1.662607
	Dendy = 1.773448
)

// the PPU runs at a multiple of the CPU clock. the PAL PPU produces 3.2 dots
// for every CPU cycle.
const (
	NTSC_PPU  = NTSC * 3
	PAL_PPU   = PAL * 3.2
	Dendy_PPU = Dendy * 3
)

// frames per second of the video signal. used to pace the emulation.
const (
	NTSC_FPS  = 60.0988
	PAL_FPS   = 50.0070
	Dendy_FPS = 50.0070
)
