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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/trace"
)

// Entry is a single disassembled instruction.
type Entry struct {
	trace.Entry

	Defn *instructions.Definition

	// addresses other than the following instruction that the instruction
	// can transfer control to. an indirect JMP is resolved using the memory
	// at the time of the disassembly
	Next []uint16
}

func (e Entry) String() string {
	return fmt.Sprintf("%04X  %-8s %c%s", e.PC, e.BytesString(), e.marker(), trace.Disassemble(e.Entry, nil))
}

// undocumented opcodes are marked in the same way as in a Nintendulator log.
func (e Entry) marker() rune {
	if e.Undocumented {
		return '*'
	}
	return ' '
}

// Decode the instruction at the address.
func Decode(peek trace.PeekFunc, address uint16) Entry {
	defn := instructions.Decode(peek(address))

	e := Entry{
		Entry: trace.Entry{
			PC:           address,
			ByteCount:    defn.Bytes,
			Mnemonic:     defn.Mnemonic,
			Undocumented: defn.Undocumented,
		},
		Defn: defn,
	}

	if e.ByteCount < 1 {
		e.ByteCount = 1
	}
	for i := 0; i < e.ByteCount; i++ {
		e.Bytes[i] = peek(address + uint16(i))
	}

	abs := uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])

	switch defn.Effect {
	case instructions.Flow:
		switch defn.AddressingMode {
		case instructions.Relative:
			e.Next = []uint16{address + 2 + uint16(int8(e.Bytes[1]))}
		case instructions.Absolute:
			e.Next = []uint16{abs}
		case instructions.Indirect:
			// the high byte of the pointer does not cross a page boundary
			hi := abs&0xff00 | uint16(uint8(abs)+1)
			e.Next = []uint16{uint16(peek(hi))<<8 | uint16(peek(abs))}
		}
	case instructions.Subroutine:
		if defn.AddressingMode == instructions.Absolute {
			e.Next = []uint16{abs}
		}
	}

	return e
}

// Range disassembles n instructions beginning at the address. Addresses wrap
// around at the top of memory.
func Range(peek trace.PeekFunc, address uint16, n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		e := Decode(peek, address)
		entries = append(entries, e)
		address += uint16(e.ByteCount)
	}
	return entries
}

// Linear disassembles every instruction that begins between the start and
// end addresses inclusive. Decoding stops if the address wraps around the
// top of memory.
func Linear(peek trace.PeekFunc, start uint16, end uint16) []Entry {
	var entries []Entry

	address := uint32(start)
	for address <= uint32(end) {
		e := Decode(peek, uint16(address))
		entries = append(entries, e)
		address += uint32(e.ByteCount)
	}

	return entries
}
