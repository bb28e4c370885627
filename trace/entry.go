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

package trace

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
)

// Entry is the state of the CPU at the moment an instruction is fetched.
// Entries for interrupt service record the state after the interrupt has
// been serviced.
type Entry struct {
	// address of the opcode
	PC uint16

	// the opcode and operand bytes. only the first ByteCount bytes are
	// meaningful
	Bytes     [3]uint8
	ByteCount int

	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8

	// the number of CPU cycles that have elapsed before the instruction
	Cycles uint64

	// NoCycles is true if the cycle count is unknown. logs in the older
	// Nintendulator layout have a CYC field that is the PPU dot within the
	// scanline and not a CPU cycle count
	NoCycles bool

	Mnemonic     string
	Undocumented bool

	// the interrupt that was serviced. for normal instructions the value is
	// execution.NoInterrupt
	Interrupt execution.Interrupt

	// the instruction in assembly language with any memory annotations
	Disassembly string
}

// IsInterrupt returns true if the entry records interrupt service rather
// than an instruction.
func (e Entry) IsInterrupt() bool {
	return e.Interrupt != execution.NoInterrupt
}

// Opcode returns the first byte of the instruction.
func (e Entry) Opcode() uint8 {
	return e.Bytes[0]
}

// BytesString returns the instruction bytes as space separated hex.
func (e Entry) BytesString() string {
	s := strings.Builder{}
	for i := 0; i < e.ByteCount && i < len(e.Bytes); i++ {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", e.Bytes[i]))
	}
	return s.String()
}

func (e Entry) String() string {
	return Format(e)
}
