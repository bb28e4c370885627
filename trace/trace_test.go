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

package trace_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/test"
	"github.com/jetsetilly/gopher2a03/trace"
)

const referenceLog = `C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
C5F5  A2 00     LDX #$00                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 30 CYC:10

C5F7  86 00     STX $00 = 00                    A:00 X:00 Y:00 P:26 SP:FD PPU:  0, 36 CYC:12
C6BD  04 A9    *NOP $A9 = 00                    A:AA X:97 Y:4E P:EF SP:F5 PPU: 17,125 CYC:1974
`

func reference(t *testing.T) []trace.Entry {
	t.Helper()
	entries, err := trace.ParseReference(strings.NewReader(referenceLog))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 4)
	return entries
}

func TestParseReference(t *testing.T) {
	entries := reference(t)

	e := entries[0]
	test.ExpectEquality(t, e.PC, uint16(0xc000))
	test.ExpectEquality(t, e.ByteCount, 3)
	test.ExpectEquality(t, e.Bytes, [3]uint8{0x4c, 0xf5, 0xc5})
	test.ExpectEquality(t, e.Mnemonic, "JMP")
	test.ExpectEquality(t, e.Disassembly, "JMP $C5F5")
	test.ExpectEquality(t, e.P, uint8(0x24))
	test.ExpectEquality(t, e.SP, uint8(0xfd))
	test.ExpectEquality(t, e.Cycles, uint64(7))
	test.ExpectFailure(t, e.Undocumented)

	e = entries[2]
	test.ExpectEquality(t, e.ByteCount, 2)
	test.ExpectEquality(t, e.P, uint8(0x26))

	e = entries[3]
	test.ExpectSuccess(t, e.Undocumented)
	test.ExpectEquality(t, e.Mnemonic, "NOP")
	test.ExpectEquality(t, e.A, uint8(0xaa))
	test.ExpectEquality(t, e.X, uint8(0x97))
	test.ExpectEquality(t, e.Y, uint8(0x4e))
	test.ExpectEquality(t, e.SP, uint8(0xf5))
	test.ExpectEquality(t, e.Cycles, uint64(1974))
}

const oldLayoutLog = `C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:  0 SL:241
C5F5  A2 00     LDX #$00                        A:00 X:00 Y:00 P:24 SP:FD CYC:  9 SL:241
C5F7  86 00     STX $00 = 00                    A:00 X:00 Y:00 P:26 SP:FD CYC: 15 SL:241
`

func TestParseOldFormat(t *testing.T) {
	e, err := trace.ParseLine("C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:  0 SL:241")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, e.NoCycles)
	test.ExpectEquality(t, e.Cycles, uint64(0))
	test.ExpectEquality(t, e.SP, uint8(0xfd))

	// CYC is a PPU dot in the older layout
	_, err = trace.ParseLine("C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:341 SL:241")
	test.ExpectFailure(t, err)

	// the newer layout always has a cycle count
	ref := reference(t)
	test.ExpectFailure(t, ref[0].NoCycles)

	// the cycle count of the emulation is not compared with the older layout
	old, err := trace.ParseReference(strings.NewReader(oldLayoutLog))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(old), 3)

	v := trace.NewVerifier(old, 0)
	for _, e := range ref[:3] {
		test.ExpectSuccess(t, v.Record(e))
	}
	res := v.Finish()
	test.ExpectSuccess(t, res.Passed())
	test.ExpectEquality(t, res.Compared, 3)

	// other fields are still compared
	v = trace.NewVerifier(old, 0)
	p := ref[0]
	p.A = 0x01
	m, ok := curated.As[*trace.Mismatch](v.Record(p))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.Field, "A")

	// windows line endings
	entries, err := trace.ParseReference(strings.NewReader(strings.ReplaceAll(referenceLog, "\n", "\r\n")))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 4)
}

func TestParseMalformed(t *testing.T) {
	for _, log := range []string{
		"C000  4C F5 C5  JMP $C5F5\n",
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7\nZZZZ  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7\n",
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 PPU:  0, 21 CYC:7\n",
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:x\n",
		"C000            JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7\n",
	} {
		_, err := trace.ParseReference(strings.NewReader(log))
		test.ExpectSuccess(t, curated.Is(err, trace.MalformedReferenceLog), log)
	}

	_, err := trace.ParseReference(strings.NewReader(referenceLog + "garbage\n"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 6"), err)
}

func TestFormat(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(referenceLog), "\n")
	lines = append(lines[:2], lines[3:]...)

	for i, e := range reference(t) {
		test.ExpectEquality(t, trace.Format(e), lines[i])

		// formatting and parsing is symmetrical
		p, err := trace.ParseLine(trace.Format(e))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, e)
	}
}

func TestCompare(t *testing.T) {
	ref := reference(t)

	res := trace.Compare(ref, ref, 0)
	test.ExpectSuccess(t, res.Passed())
	test.ExpectEquality(t, res.Compared, 4)

	// a single differing field
	produced := append([]trace.Entry{}, ref...)
	produced[2].P = 0x24
	res = trace.Compare(produced, ref, 0)
	test.DemandFailure(t, res.Passed())
	test.ExpectEquality(t, res.Compared, 2)
	test.ExpectEquality(t, res.Mismatch.Index, 2)
	test.ExpectEquality(t, res.Mismatch.Field, "P")
	test.ExpectEquality(t, res.Mismatch.Expected, "26")
	test.ExpectEquality(t, res.Mismatch.Actual, "24")
	test.ExpectEquality(t, res.Mismatch.PC, uint16(0xc5f7))

	// the limit stops the comparison before the mismatch
	res = trace.Compare(produced, ref, 2)
	test.ExpectSuccess(t, res.Passed())

	// cycles are compared
	produced = append([]trace.Entry{}, ref...)
	produced[1].Cycles++
	res = trace.Compare(produced, ref, 0)
	test.ExpectEquality(t, res.Mismatch.Field, "CYC")

	// opcode bytes are compared
	produced = append([]trace.Entry{}, ref...)
	produced[0].ByteCount = 1
	res = trace.Compare(produced, ref, 0)
	test.ExpectEquality(t, res.Mismatch.Field, "BYTES")

	// interrupt entries are not compared
	nmi := trace.Entry{PC: 0x8000, Interrupt: execution.NMI, Cycles: 17}
	produced = append([]trace.Entry{}, ref[:2]...)
	produced = append(produced, nmi)
	produced = append(produced, ref[2:]...)
	res = trace.Compare(produced, ref, 0)
	test.ExpectSuccess(t, res.Passed())
	test.ExpectEquality(t, res.Compared, 4)
}

func TestCompareLength(t *testing.T) {
	ref := reference(t)

	res := trace.Compare(ref[:3], ref, 0)
	test.DemandFailure(t, res.Passed())
	test.ExpectEquality(t, res.Mismatch.Field, "LENGTH")
	test.ExpectEquality(t, res.Mismatch.Index, 3)

	res = trace.Compare(ref, ref[:3], 0)
	test.ExpectEquality(t, res.Mismatch.Field, "LENGTH")

	// the limit has been reached so the length does not matter
	res = trace.Compare(ref, ref[:3], 3)
	test.ExpectSuccess(t, res.Passed())

	res = trace.Compare(nil, nil, 0)
	test.ExpectSuccess(t, res.Passed())
}

func TestUndocumentedCap(t *testing.T) {
	ref := reference(t)
	test.ExpectEquality(t, trace.UndocumentedCap(ref), 3)
	test.ExpectEquality(t, trace.UndocumentedCap(ref[:2]), 2)
}

func TestVerifier(t *testing.T) {
	ref := reference(t)

	v := trace.NewVerifier(ref, trace.UndocumentedCap(ref))
	test.ExpectEquality(t, v.Limit(), 3)
	for _, e := range ref[:3] {
		test.ExpectSuccess(t, v.Record(e))
	}
	test.ExpectSuccess(t, v.Done())
	test.ExpectSuccess(t, v.Finish().Passed())

	// entries after the limit are ignored
	test.ExpectSuccess(t, v.Record(ref[0]))

	// mismatch
	v = trace.NewVerifier(ref, 0)
	test.ExpectSuccess(t, v.Record(ref[0]))
	err := v.Record(ref[0])
	m, ok := curated.As[*trace.Mismatch](err)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, m.Index, 1)
	test.ExpectEquality(t, m.Field, "PC")
	test.ExpectEquality(t, m.Expected, "C5F5")
	test.ExpectEquality(t, m.Actual, "C000")
	test.ExpectSuccess(t, v.Done())
	test.ExpectFailure(t, v.Finish().Passed())

	// ended early
	v = trace.NewVerifier(ref, 0)
	test.ExpectSuccess(t, v.Record(ref[0]))
	res := v.Finish()
	test.DemandFailure(t, res.Passed())
	test.ExpectEquality(t, res.Mismatch.Field, "LENGTH")
}

func TestRecorders(t *testing.T) {
	ref := reference(t)

	h := trace.NewHistory(2)
	l := &trace.Log{}
	w := &strings.Builder{}
	m := trace.Multi{h, l, trace.NewWriter(w)}

	test.ExpectEquality(t, h.Len(), 0)
	for _, e := range ref {
		test.ExpectSuccess(t, m.Record(e))
	}
	test.ExpectSuccess(t, m.Record(trace.Entry{PC: 0xc000, Interrupt: execution.IRQ}))

	test.ExpectEquality(t, len(l.Entries), 5)
	test.ExpectEquality(t, l.Instructions(), 4)

	test.ExpectEquality(t, h.Len(), 2)
	entries := h.Entries()
	test.ExpectEquality(t, entries[0].PC, uint16(0xc6bd))
	test.ExpectSuccess(t, entries[1].IsInterrupt())

	// the writer does not output interrupts
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), 4)

	hw := &strings.Builder{}
	test.ExpectSuccess(t, h.Write(hw))
	test.ExpectSuccess(t, strings.HasSuffix(hw.String(), "C000  [IRQ]\n"))
}

func TestDisassemble(t *testing.T) {
	var mem [0x10000]uint8
	peek := func(address uint16) uint8 {
		return mem[address]
	}

	mem[0x0033] = 0x44
	mem[0x0080] = 0x00
	mem[0x0081] = 0x02
	mem[0x0200] = 0x5a
	mem[0x00ff] = 0x00
	mem[0x0000] = 0x03
	mem[0x0304] = 0x89
	mem[0x02ff] = 0x7e
	mem[0x0200] = 0x5a

	for _, tc := range []struct {
		e        trace.Entry
		expected string
	}{
		{trace.Entry{Bytes: [3]uint8{0x18}, ByteCount: 1}, "CLC"},
		{trace.Entry{Bytes: [3]uint8{0x4a}, ByteCount: 1}, "LSR A"},
		{trace.Entry{Bytes: [3]uint8{0xa9, 0x01}, ByteCount: 2}, "LDA #$01"},
		{trace.Entry{Bytes: [3]uint8{0xa5, 0x33}, ByteCount: 2}, "LDA $33 = 44"},
		{trace.Entry{Bytes: [3]uint8{0xb5, 0x30}, ByteCount: 2, X: 3}, "LDA $30,X @ 33 = 44"},
		{trace.Entry{Bytes: [3]uint8{0xb6, 0x34}, ByteCount: 2, Y: 0xff}, "LDX $34,Y @ 33 = 44"},
		{trace.Entry{Bytes: [3]uint8{0xad, 0x00, 0x02}, ByteCount: 3}, "LDA $0200 = 5A"},
		{trace.Entry{Bytes: [3]uint8{0x4c, 0xf5, 0xc5}, ByteCount: 3}, "JMP $C5F5"},
		{trace.Entry{Bytes: [3]uint8{0x20, 0x00, 0xd0}, ByteCount: 3}, "JSR $D000"},
		{trace.Entry{Bytes: [3]uint8{0xbd, 0x00, 0x03}, ByteCount: 3, X: 4}, "LDA $0300,X @ 0304 = 89"},
		{trace.Entry{Bytes: [3]uint8{0x6c, 0xff, 0x02}, ByteCount: 3}, "JMP ($02FF) = 5A7E"},
		{trace.Entry{Bytes: [3]uint8{0xa1, 0x7e}, ByteCount: 2, X: 2}, "LDA ($7E,X) @ 80 = 0200 = 5A"},
		{trace.Entry{Bytes: [3]uint8{0xb1, 0xff}, ByteCount: 2, Y: 4}, "LDA ($FF),Y = 0300 @ 0304 = 89"},
		{trace.Entry{PC: 0xc000, Bytes: [3]uint8{0xf0, 0x05}, ByteCount: 2}, "BEQ $C007"},
		{trace.Entry{PC: 0xc000, Bytes: [3]uint8{0xd0, 0xfe}, ByteCount: 2}, "BNE $C000"},
		{trace.Entry{Interrupt: execution.NMI}, "[NMI]"},
	} {
		test.ExpectEquality(t, trace.Disassemble(tc.e, peek), tc.expected)
	}

	// without a peek function there are no annotations
	test.ExpectEquality(t, trace.Disassemble(trace.Entry{Bytes: [3]uint8{0xa5, 0x33}, ByteCount: 2}, nil), "LDA $33")
	test.ExpectEquality(t, trace.Disassemble(trace.Entry{Bytes: [3]uint8{0xb1, 0xff}, ByteCount: 2}, nil), "LDA ($FF),Y")
}
