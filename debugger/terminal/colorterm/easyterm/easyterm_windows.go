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

//go:build windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". Termios is
// not available on Windows and the EasyTerm type cannot be initialised.
package easyterm

import (
	"fmt"
	"os"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// EasyTerm is not supported on Windows.
type EasyTerm struct{}

// Initialise always fails on Windows.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: not supported on windows")
}

// CleanUp does nothing on Windows.
func (et *EasyTerm) CleanUp() {}

// TermPrint does nothing on Windows.
func (et *EasyTerm) TermPrint(s string) {}

// Geometry returns a zero geometry on Windows.
func (et *EasyTerm) Geometry() TermGeometry { return TermGeometry{} }

// CanonicalMode does nothing on Windows.
func (et *EasyTerm) CanonicalMode() {}

// CBreakMode does nothing on Windows.
func (et *EasyTerm) CBreakMode() {}

// Flush does nothing on Windows.
func (et *EasyTerm) Flush() error { return nil }

// SuspendProcess does nothing on Windows.
func SuspendProcess() {}
