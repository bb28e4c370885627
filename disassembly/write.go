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
	"io"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/symbols"
	"github.com/jetsetilly/gopher2a03/trace"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	FlowInfo bool

	// labels are printed on the line before the instruction at the
	// address. operands that refer to a symbol are annotated. can be nil
	Symbols *symbols.Symbols
}

// Write every entry to io.Writer.
func Write(output io.Writer, attr WriteAttr, entries []Entry) error {
	for _, e := range entries {
		if err := WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	s := strings.Builder{}

	if attr.Symbols != nil {
		if res := attr.Symbols.ReverseSearch(e.PC, symbols.SearchLabel); res != nil {
			s.WriteString(fmt.Sprintf("%s:\n", res.Symbol))
		}
	}

	// length of the label line is not counted when padding
	start := s.Len()

	if attr.ByteCode {
		s.WriteString(e.String())
	} else {
		s.WriteString(fmt.Sprintf("%04X  %c%s", e.PC, e.marker(), trace.Disassemble(e.Entry, nil)))
	}

	if attr.Cycles {
		page := ""
		if e.Defn.PageSensitive {
			page = "+"
		}
		s.WriteString(fmt.Sprintf("%*s[%d%s]", pad(s.Len()-start, attr), "", e.Defn.Cycles, page))
	}

	if attr.Symbols != nil {
		if res := lookupOperand(attr.Symbols, e); res != nil {
			s.WriteString(fmt.Sprintf(" ; %s", res.Symbol))
		}
	}

	if attr.FlowInfo && len(e.Next) > 0 {
		s.WriteString(" ->")
		for _, n := range e.Next {
			s.WriteString(fmt.Sprintf(" %04X", n))
		}
	}

	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}

// the column at which the cycle count is printed.
func pad(length int, attr WriteAttr) int {
	col := 24
	if attr.ByteCode {
		col = 33
	}
	if length >= col {
		return 1
	}
	return col - length
}

// lookupOperand returns the symbol for the address referred to by the
// operand of the instruction. labels are preferred to register names.
func lookupOperand(sym *symbols.Symbols, e Entry) *symbols.SearchResults {
	var address uint16

	switch e.Defn.AddressingMode {
	case instructions.Relative:
		if len(e.Next) == 0 {
			return nil
		}
		address = e.Next[0]
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.Indirect:
		address = uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])
	case instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY,
		instructions.IndexedIndirect, instructions.IndirectIndexed:
		address = uint16(e.Bytes[1])
	default:
		return nil
	}

	if res := sym.ReverseSearch(address, symbols.SearchLabel); res != nil {
		return res
	}

	switch e.Defn.Effect {
	case instructions.Read:
		return sym.ReverseSearch(address, symbols.SearchRead)
	case instructions.Write, instructions.RMW:
		return sym.ReverseSearch(address, symbols.SearchWrite)
	}

	return nil
}
