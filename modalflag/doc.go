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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and are then parsed
// with Parse(). Non-flag arguments are retrieved with RemainingArgs() and
// GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERIFY", "DEBUG")
//	p, err := md.Parse()
//
// When sub-modes have been added, the first non-flag argument is compared
// (case insensitively) with the list. If it matches, the mode is selected and
// the argument is consumed. If it does not match then the first sub-mode in
// the list is the default. Mode() returns the selected mode.
//
// Each mode can then prepare its own flags after a call to NewMode() and a
// further call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "number of instructions to run")
//		pc := md.AddAddress("pc", "initial program counter")
//		p, err := md.Parse()
//		...
//	}
//
// Path() returns the series of modes selected so far, separated by a slash.
package modalflag
