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

// Package trace records the state of the CPU at the start of every
// instruction and compares sequences of those records.
//
// A trace Entry is produced by every call to cpu.Step(). Entries can be
// collected by any type that implements the Recorder interface. The package
// provides four implementations: Log keeps every entry; History keeps the
// most recent entries; Writer streams entries to an io.Writer in the
// Nintendulator format; and Verifier compares each entry against a
// reference as it arrives.
//
// Reference logs in the Nintendulator format are parsed with
// ParseReference(). A complete trace can be compared against a reference
// with Compare(). The first difference is reported as a *Mismatch.
//
// Nintendulator has no line for interrupt service so entries for NMI and IRQ
// service are never compared and the Writer does not output them.
package trace
