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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess() family of functions report a test
// failure but allow the test to continue. The Demand functions stop the test
// immediately.
//
// Success and failure depend on the type of the value being tested:
//
//	bool -> true is success
//	error -> nil is success
//
// All functions accept an optional list of tags which are prepended to any
// failure message. This is useful when a test is run in a loop.
//
// The package also contains io.Writer implementations that are useful for
// testing output: CompareWriter and RingWriter.
package test
