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

package hardware

import (
	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/trace"
)

// Sentinal error patterns.
const (
	NoCartridge = "nes: no cartridge attached"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	Cart *cartridge.Cartridge

	// number of instructions executed since the last reset. interrupt
	// service is not counted
	Instructions int
}

// NewNES creates a new NES and everything associated with the hardware. A
// cartridge must be attached before the emulation can be run.
func NewNES() *NES {
	nes := &NES{}
	nes.Mem = memory.NewMemory(nil)
	nes.CPU = cpu.NewCPU(nes.Mem)
	return nes
}

// AttachCartridge loads the cartridge described by the loader and resets
// the NES.
func (nes *NES) AttachCartridge(cl *cartridgeloader.Loader) error {
	cart, err := cartridge.Load(cl)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	nes.Insert(cart)
	return nil
}

// Insert a cartridge that has already been loaded and reset the NES. A nil
// cartridge ejects the current cartridge.
func (nes *NES) Insert(cart *cartridge.Cartridge) {
	nes.Cart = cart
	if cart == nil {
		nes.Mem.AttachCartridge(nil)
		logger.Log(logger.Allow, "nes", "cartridge ejected")
	} else {
		nes.Mem.AttachCartridge(cart)
		logger.Logf(logger.Allow, "nes", "cartridge attached: %s", cart)
	}
	nes.Reset()
}

// Reset emulates the reset button. RAM is cleared and the CPU is reset. The
// contents of cartridge RAM survive.
func (nes *NES) Reset() {
	nes.Mem.Reset()
	nes.CPU.Reset()
	nes.Instructions = 0
}

// AttachRecorder adds a trace recorder to the CPU.
func (nes *NES) AttachRecorder(r trace.Recorder) {
	nes.CPU.AttachRecorder(r)
}

// Step the emulation forward one instruction or one interrupt.
func (nes *NES) Step() (trace.Entry, error) {
	if nes.Cart == nil {
		return trace.Entry{}, curated.Errorf(NoCartridge)
	}

	e, err := nes.CPU.Step()
	if !e.IsInterrupt() && nes.CPU.LastResult.Final && err == nil {
		nes.Instructions++
	}
	return e, err
}
