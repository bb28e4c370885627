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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Interrupt is the kind of interrupt serviced instead of an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil if the step was an interrupt
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of a branch instruction, it is the offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction jumped to its target
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// the interrupt that was serviced in place of an instruction
	Interrupt Interrupt

	// whether the instruction has been fully executed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04X %s (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04X ???", r.Address)
	}

	s := fmt.Sprintf("%04X %s", r.Address, r.Defn.Mnemonic)
	switch r.Defn.Bytes {
	case 2:
		s = fmt.Sprintf("%s %02X", s, r.InstructionData)
	case 3:
		s = fmt.Sprintf("%s %04X", s, r.InstructionData)
	}
	s = fmt.Sprintf("%s (%d cycles)", s, r.Cycles)

	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}

	return s
}
