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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Sentinal error patterns.
const (
	MalformedReferenceLog = "trace: malformed reference log: line %d: %v"
)

// column positions of the Nintendulator format.
const (
	colBytes       = 6
	colBytesEnd    = 14
	colMarker      = 15
	colDisassembly = 16
	colRegisters   = 48
)

// the PPU runs at three times the speed of the CPU. each scanline is 341
// dots and there are 262 scanlines in an NTSC frame.
const (
	ppuDotsPerCycle    = 3
	ppuDotsPerScanline = 341
	ppuScanlines       = 262
)

// Format returns the entry as a line in the Nintendulator format. The PPU
// column is derived from the cycle count.
func Format(e Entry) string {
	marker := ' '
	if e.Undocumented {
		marker = '*'
	}

	disasm := e.Disassembly
	if disasm == "" {
		disasm = Disassemble(e, nil)
	}

	dot := e.Cycles * ppuDotsPerCycle
	scanline := (dot / ppuDotsPerScanline) % ppuScanlines

	return fmt.Sprintf("%04X  %-8s %c%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		e.PC, e.BytesString(), marker, disasm,
		e.A, e.X, e.Y, e.P, e.SP,
		scanline, dot%ppuDotsPerScanline, e.Cycles)
}

// ParseReference parses a log in the Nintendulator format. Blank lines are
// ignored. Any other line that cannot be parsed results in an error naming
// the line.
func ParseReference(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++

		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		e, err := ParseLine(line)
		if err != nil {
			return nil, curated.Errorf(MalformedReferenceLog, n, err)
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(MalformedReferenceLog, n, err)
	}

	return entries, nil
}

// ParseLine parses a single line in the Nintendulator format.
func ParseLine(line string) (Entry, error) {
	var e Entry

	if len(line) < colRegisters {
		return e, fmt.Errorf("line too short")
	}

	pc, err := strconv.ParseUint(line[:4], 16, 16)
	if err != nil {
		return e, fmt.Errorf("program counter: %v", err)
	}
	e.PC = uint16(pc)

	bytes := strings.Fields(line[colBytes:colBytesEnd])
	if len(bytes) == 0 || len(bytes) > len(e.Bytes) {
		return e, fmt.Errorf("instruction bytes: expected one to three bytes")
	}
	for i, b := range bytes {
		v, err := strconv.ParseUint(b, 16, 8)
		if err != nil {
			return e, fmt.Errorf("instruction bytes: %v", err)
		}
		e.Bytes[i] = uint8(v)
	}
	e.ByteCount = len(bytes)

	e.Undocumented = line[colMarker] == '*'

	// the disassembly column can overflow into the register column so the
	// start of the registers is found by searching for the A: label
	regs := colRegisters
	if !strings.HasPrefix(line[colRegisters:], "A:") {
		regs = strings.Index(line[colDisassembly:], " A:")
		if regs == -1 {
			return e, fmt.Errorf("no register fields")
		}
		regs += colDisassembly
	}

	e.Disassembly = strings.TrimSpace(line[colDisassembly:regs])
	if f := strings.Fields(e.Disassembly); len(f) > 0 {
		e.Mnemonic = f[0]
	} else {
		e.Mnemonic = instructions.Decode(e.Bytes[0]).Mnemonic
	}

	fields, err := parseFields(line[regs:])
	if err != nil {
		return e, err
	}

	for _, r := range []struct {
		label string
		dest  *uint8
	}{
		{"A", &e.A}, {"X", &e.X}, {"Y", &e.Y}, {"P", &e.P}, {"SP", &e.SP},
	} {
		s, ok := fields[r.label]
		if !ok {
			return e, fmt.Errorf("missing %s field", r.label)
		}
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return e, fmt.Errorf("%s field: %v", r.label, err)
		}
		*r.dest = uint8(v)
	}

	s, ok := fields["CYC"]
	if !ok {
		return e, fmt.Errorf("missing CYC field")
	}
	c, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return e, fmt.Errorf("CYC field: %v", err)
	}

	// in the older layout CYC is the PPU dot and SL is the scanline
	if _, ok := fields["SL"]; ok {
		if c >= ppuDotsPerScanline {
			return e, fmt.Errorf("CYC field: PPU dot out of range (%d)", c)
		}
		e.NoCycles = true
	} else {
		e.Cycles = c
	}

	return e, nil
}

// parseFields splits the register section of a Nintendulator line into
// label/value pairs. Labels followed by spaces, as in "CYC:  0", take the
// next field as the value. Fields without a label are ignored.
func parseFields(s string) (map[string]string, error) {
	fields := make(map[string]string)

	f := strings.Fields(s)
	for i := 0; i < len(f); i++ {
		label, value, ok := strings.Cut(f[i], ":")
		if !ok {
			continue
		}
		if value == "" {
			if i+1 >= len(f) {
				return nil, fmt.Errorf("%s field has no value", label)
			}
			i++
			value = f[i]
		}
		fields[label] = strings.TrimSuffix(value, ",")
	}

	return fields, nil
}
