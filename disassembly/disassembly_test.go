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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/symbols"
	"github.com/jetsetilly/gopher2a03/test"
)

// memory with a short program at $C000. reading any other address returns
// the contents of the second page
type mem struct {
	program []uint8
	page    [256]uint8
}

func (m *mem) peek(address uint16) uint8 {
	if address >= 0xc000 && int(address-0xc000) < len(m.program) {
		return m.program[address-0xc000]
	}
	return m.page[address&0xff]
}

func newMem() *mem {
	m := &mem{
		program: []uint8{
			0xa2, 0x03, // LDX #$03
			0xca,       // DEX
			0xd0, 0xfd, // BNE $C002
			0x20, 0x00, 0xd0, // JSR $D000
			0x6c, 0xff, 0x02, // JMP ($02FF)
			0x04, 0x10, // *NOP $10
			0x60, // RTS
		},
	}
	m.page[0xff] = 0x34
	m.page[0x00] = 0x12
	return m
}

func TestRange(t *testing.T) {
	m := newMem()

	entries := disassembly.Range(m.peek, 0xc000, 7)
	test.DemandEquality(t, len(entries), 7)

	test.ExpectEquality(t, entries[0].String(), "C000  A2 03     LDX #$03")
	test.ExpectEquality(t, entries[1].String(), "C002  CA        DEX")
	test.ExpectEquality(t, entries[5].String(), "C00B  04 10    *NOP $10")
	test.ExpectSuccess(t, entries[5].Undocumented)

	// branch
	test.DemandEquality(t, len(entries[2].Next), 1)
	test.ExpectEquality(t, entries[2].Next[0], uint16(0xc002))

	// subroutine
	test.DemandEquality(t, len(entries[3].Next), 1)
	test.ExpectEquality(t, entries[3].Next[0], uint16(0xd000))

	// indirect jump with the page boundary bug. the high byte of the
	// target is read from $0200 rather than $0300
	test.DemandEquality(t, len(entries[4].Next), 1)
	test.ExpectEquality(t, entries[4].Next[0], uint16(0x1234))

	test.ExpectEquality(t, len(entries[6].Next), 0)
}

func TestLinear(t *testing.T) {
	m := newMem()

	entries := disassembly.Linear(m.peek, 0xc000, 0xc00d)
	test.DemandEquality(t, len(entries), 7)
	test.ExpectEquality(t, entries[6].PC, uint16(0xc00d))

	// decoding stops at the top of memory
	entries = disassembly.Linear(m.peek, 0xfffe, 0xffff)
	test.ExpectInequality(t, len(entries), 0)
	test.ExpectEquality(t, entries[0].PC, uint16(0xfffe))
}

func TestWrite(t *testing.T) {
	m := newMem()
	entries := disassembly.Range(m.peek, 0xc000, 4)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, disassembly.Write(w, disassembly.WriteAttr{ByteCode: true}, entries[:1]))
	test.ExpectEquality(t, w.String(), "C000  A2 03     LDX #$03\n")

	w.Clear()
	test.DemandSuccess(t, disassembly.WriteLine(w, disassembly.WriteAttr{}, entries[0]))
	test.ExpectEquality(t, w.String(), "C000   LDX #$03\n")

	w.Clear()
	test.DemandSuccess(t, disassembly.WriteLine(w, disassembly.WriteAttr{FlowInfo: true}, entries[2]))
	test.ExpectEquality(t, w.String(), "C003   BNE $C002 -> C002\n")

	w.Clear()
	test.DemandSuccess(t, disassembly.WriteLine(w, disassembly.WriteAttr{Cycles: true}, entries[2]))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "[2]\n"))
}

func TestWriteSymbols(t *testing.T) {
	m := &mem{
		program: []uint8{
			0xad, 0x02, 0x20, // LDA $2002
			0x8d, 0x00, 0x20, // STA $2000
			0x10, 0xf8, // BPL $C000
		},
	}

	sym := symbols.NewSymbols()
	sym.AddLabel(0xc000, "wait")

	attr := disassembly.WriteAttr{ByteCode: true, Symbols: sym}
	w := &test.CompareWriter{}
	test.DemandSuccess(t, disassembly.Write(w, attr, disassembly.Range(m.peek, 0xc000, 3)))

	lines := strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 5)
	test.ExpectEquality(t, lines[0], "wait:")
	test.ExpectEquality(t, lines[1], "C000  AD 02 20  LDA $2002 ; PPUSTATUS")
	test.ExpectEquality(t, lines[2], "C003  8D 00 20  STA $2000 ; PPUCTRL")
	test.ExpectEquality(t, lines[3], "C006  10 F8     BPL $C000 ; wait")
}
