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
)

// Mismatch is the first difference between a produced trace and a
// reference. It implements the error interface.
type Mismatch struct {
	// index of the reference entry. interrupt entries in the produced trace
	// are not counted
	Index int

	// the address of the instruction in the reference
	PC uint16

	// the name of the field that differs. one of PC, BYTES, A, X, Y, P, SP,
	// CYC or LENGTH
	Field string

	Expected string
	Actual   string

	// the entries being compared. for a length mismatch one of these will be
	// the zero value
	Reference Entry
	Produced  Entry
}

func (m *Mismatch) Error() string {
	if m.Field == "LENGTH" {
		return fmt.Sprintf("trace: length mismatch after %d entries: expected %s entries, got %s", m.Index, m.Expected, m.Actual)
	}
	return fmt.Sprintf("trace: mismatch at line %d (%04X): %s expected %s got %s", m.Index+1, m.PC, m.Field, m.Expected, m.Actual)
}

// Result of a comparison.
type Result struct {
	// number of entries that matched
	Compared int

	// the first difference. nil if there was no difference
	Mismatch *Mismatch
}

// Passed returns true if no difference was found.
func (r Result) Passed() bool {
	return r.Mismatch == nil
}

func (r Result) String() string {
	if r.Mismatch != nil {
		return r.Mismatch.Error()
	}
	return fmt.Sprintf("trace: %d entries match", r.Compared)
}

// compareEntry returns the first field that differs between the entries. the
// Index field of the returned Mismatch is not set.
func compareEntry(produced, reference Entry) *Mismatch {
	m := &Mismatch{
		PC:        reference.PC,
		Reference: reference,
		Produced:  produced,
	}

	hex8 := func(field string, a, b uint8) bool {
		if a == b {
			return false
		}
		m.Field = field
		m.Expected = fmt.Sprintf("%02X", b)
		m.Actual = fmt.Sprintf("%02X", a)
		return true
	}

	switch {
	case produced.PC != reference.PC:
		m.Field = "PC"
		m.Expected = fmt.Sprintf("%04X", reference.PC)
		m.Actual = fmt.Sprintf("%04X", produced.PC)
	case produced.BytesString() != reference.BytesString():
		m.Field = "BYTES"
		m.Expected = reference.BytesString()
		m.Actual = produced.BytesString()
	case hex8("A", produced.A, reference.A):
	case hex8("X", produced.X, reference.X):
	case hex8("Y", produced.Y, reference.Y):
	case hex8("P", produced.P, reference.P):
	case hex8("SP", produced.SP, reference.SP):
	case !reference.NoCycles && produced.Cycles != reference.Cycles:
		m.Field = "CYC"
		m.Expected = fmt.Sprintf("%d", reference.Cycles)
		m.Actual = fmt.Sprintf("%d", produced.Cycles)
	default:
		return nil
	}

	return m
}

func countInstructions(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if !e.IsInterrupt() {
			n++
		}
	}
	return n
}

// Compare the produced trace against the reference, entry by entry and
// field by field. Comparison stops at the first difference.
//
// If limit is greater than zero then no more than limit entries are
// compared. Sequences of different length fail the comparison unless the
// limit is reached.
func Compare(produced, reference []Entry, limit int) Result {
	var res Result

	p := 0
	for {
		for p < len(produced) && produced[p].IsInterrupt() {
			p++
		}

		if limit > 0 && res.Compared >= limit {
			return res
		}

		r := res.Compared
		pDone := p >= len(produced)
		rDone := r >= len(reference)

		if pDone && rDone {
			return res
		}

		if pDone || rDone {
			m := &Mismatch{
				Index:    r,
				Field:    "LENGTH",
				Expected: fmt.Sprintf("%d", len(reference)),
				Actual:   fmt.Sprintf("%d", countInstructions(produced)),
			}
			if !rDone {
				m.PC = reference[r].PC
				m.Reference = reference[r]
			}
			if !pDone {
				m.Produced = produced[p]
			}
			res.Mismatch = m
			return res
		}

		if m := compareEntry(produced[p], reference[r]); m != nil {
			m.Index = r
			res.Mismatch = m
			return res
		}

		res.Compared++
		p++
	}
}

// UndocumentedCap returns the index of the first reference entry that
// executes an undocumented opcode. If there is no such entry the length of
// the reference is returned.
//
// The value is suitable for the limit argument of Compare() and
// NewVerifier() when the reference exercises undocumented opcodes that the
// emulation does not support.
func UndocumentedCap(reference []Entry) int {
	for i, e := range reference {
		if e.Undocumented {
			return i
		}
	}
	return len(reference)
}

// Verifier compares entries against a reference as they are recorded. It
// implements the Recorder interface.
type Verifier struct {
	reference []Entry
	limit     int
	compared  int
	mismatch  *Mismatch
}

// NewVerifier is the preferred method of initialisation for the Verifier
// type. The limit argument is the same as for Compare().
func NewVerifier(reference []Entry, limit int) *Verifier {
	if limit <= 0 || limit > len(reference) {
		limit = len(reference)
	}
	return &Verifier{
		reference: reference,
		limit:     limit,
	}
}

// Record implements the Recorder interface. Returns a *Mismatch the first
// time a difference is found. Entries recorded after the limit has been
// reached are ignored.
func (v *Verifier) Record(e Entry) error {
	if v.mismatch != nil {
		return v.mismatch
	}
	if e.IsInterrupt() || v.Done() {
		return nil
	}

	if m := compareEntry(e, v.reference[v.compared]); m != nil {
		m.Index = v.compared
		v.mismatch = m
		return m
	}

	v.compared++
	return nil
}

// Done returns true once the limit has been reached or a mismatch found.
func (v *Verifier) Done() bool {
	return v.mismatch != nil || v.compared >= v.limit
}

// Compared returns the number of entries that have matched.
func (v *Verifier) Compared() int {
	return v.compared
}

// Limit returns the number of entries that must match for verification to
// pass.
func (v *Verifier) Limit() int {
	return v.limit
}

// Finish returns the result of the verification. A verification that ended
// before the limit was reached is a length mismatch.
func (v *Verifier) Finish() Result {
	res := Result{Compared: v.compared, Mismatch: v.mismatch}
	if res.Mismatch == nil && v.compared < v.limit {
		res.Mismatch = &Mismatch{
			Index:     v.compared,
			PC:        v.reference[v.compared].PC,
			Field:     "LENGTH",
			Expected:  fmt.Sprintf("%d", v.limit),
			Actual:    fmt.Sprintf("%d", v.compared),
			Reference: v.reference[v.compared],
		}
	}
	return res
}
