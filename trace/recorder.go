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
	"io"
)

// Recorder is implemented by types that collect trace entries.
type Recorder interface {
	Record(Entry) error
}

// Log is an in-memory Recorder. Entries are never discarded.
type Log struct {
	Entries []Entry
}

// Record implements the Recorder interface.
func (l *Log) Record(e Entry) error {
	l.Entries = append(l.Entries, e)
	return nil
}

// Instructions returns the number of entries that are not interrupts.
func (l *Log) Instructions() int {
	n := 0
	for _, e := range l.Entries {
		if !e.IsInterrupt() {
			n++
		}
	}
	return n
}

// History keeps the most recent entries. It is useful for showing the
// context of a failed verification.
type History struct {
	entries []Entry
	next    int
	full    bool
}

// NewHistory is the preferred method of initialisation for the History type.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{entries: make([]Entry, size)}
}

// Record implements the Recorder interface.
func (h *History) Record(e Entry) error {
	h.entries[h.next] = e
	h.next++
	if h.next >= len(h.entries) {
		h.next = 0
		h.full = true
	}
	return nil
}

// Len returns the number of entries in the history.
func (h *History) Len() int {
	if h.full {
		return len(h.entries)
	}
	return h.next
}

// Entries returns a copy of the entries in the history, oldest first.
func (h *History) Entries() []Entry {
	if !h.full {
		return append([]Entry{}, h.entries[:h.next]...)
	}
	e := make([]Entry, 0, len(h.entries))
	e = append(e, h.entries[h.next:]...)
	return append(e, h.entries[:h.next]...)
}

// Write the history to io.Writer in the Nintendulator format.
func (h *History) Write(output io.Writer) error {
	for _, e := range h.Entries() {
		var err error
		if e.IsInterrupt() {
			_, err = fmt.Fprintf(output, "%04X  [%s]\n", e.PC, e.Interrupt)
		} else {
			_, err = io.WriteString(output, Format(e)+"\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Writer streams entries to an io.Writer in the Nintendulator format.
// Interrupt entries are not written.
type Writer struct {
	output io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(output io.Writer) *Writer {
	return &Writer{output: output}
}

// Record implements the Recorder interface.
func (w *Writer) Record(e Entry) error {
	if e.IsInterrupt() {
		return nil
	}
	_, err := io.WriteString(w.output, Format(e)+"\n")
	return err
}

// Multi sends entries to more than one Recorder. Recording stops at the
// first error.
type Multi []Recorder

// Record implements the Recorder interface.
func (m Multi) Record(e Entry) error {
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Record(e); err != nil {
			return err
		}
	}
	return nil
}
