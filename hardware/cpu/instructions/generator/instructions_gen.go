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

// The generator program creates the table.go file in the instructions
// package from the instructions.csv file. Run it with go generate from the
// instructions package directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

const definitionsCSVFile = "generator/instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go; DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// Definitions is the table of instruction definitions for the 2A03, indexed\n" +
	"// by opcode.\n" +
	"var Definitions = [256]Definition{\n"

const trailingBoilerPlate = "}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":             instructions.Implied,
	"ACCUMULATOR":         instructions.Accumulator,
	"IMMEDIATE":           instructions.Immediate,
	"RELATIVE":            instructions.Relative,
	"ABSOLUTE":            instructions.Absolute,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDIRECT":            instructions.Indirect,
	"INDEXED_INDIRECT":    instructions.IndexedIndirect,
	"INDIRECT_INDEXED":    instructions.IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":        instructions.Read,
	"WRITE":       instructions.Write,
	"RMW":         instructions.RMW,
	"FLOW":        instructions.Flow,
	"SUB-ROUTINE": instructions.Subroutine,
	"INTERRUPT":   instructions.Interrupt,
}

func parseCSV() ([]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the effect field and undocumented flag are optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)

		if len(rec) < 5 || len(rec) > 7 {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if _, ok := deftable[defn.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		defn.Mnemonic = strings.ToUpper(rec[1])

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		am, ok := addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.AddressingMode = am
		defn.Bytes = 1 + am.OperandBytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect = instructions.Read
		if len(rec) > 5 {
			e, ok := effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
			defn.Effect = e
		}

		// field: undocumented
		if len(rec) > 6 {
			if strings.ToUpper(rec[6]) != "UNDOCUMENTED" {
				return nil, fmt.Errorf("unknown flag for %#02x (%s) [line %d]", defn.OpCode, rec[6], line)
			}
			defn.Undocumented = true
		}

		// the operator is found from the mnemonic for documented instructions
		defn.Operator = instructions.Unimplemented
		if !defn.Undocumented {
			defn.Operator, ok = instructions.LookupOperator(defn.Mnemonic)
			if !ok {
				return nil, fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, defn.Mnemonic, line)
			}
		}

		deftable[defn.OpCode] = defn
	}

	// every opcode must be present
	table := make([]instructions.Definition, 256)
	for i := range table {
		defn, ok := deftable[uint8(i)]
		if !ok {
			return nil, fmt.Errorf("missing definition for opcode %#02x", i)
		}
		table[i] = defn
	}

	return table, nil
}

func operatorName(o instructions.Operator) string {
	if o == instructions.Unimplemented {
		return "Unimplemented"
	}
	s := o.String()
	return s[:1] + strings.ToLower(s[1:])
}

func generate(table []instructions.Definition) ([]byte, error) {
	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for _, defn := range table {
		s.WriteString(fmt.Sprintf("{OpCode: 0x%02x, Operator: %s, Mnemonic: %q, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s, Undocumented: %t},\n",
			defn.OpCode, operatorName(defn.Operator), defn.Mnemonic, defn.Bytes, defn.Cycles,
			defn.AddressingMode, defn.PageSensitive, defn.Effect, defn.Undocumented))
	}
	s.WriteString(trailingBoilerPlate)
	return format.Source([]byte(s.String()))
}

func main() {
	table, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output, err := generate(table)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
