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

// Package commandline divides user input into tokens and provides tab
// completion of command names.
//
// Tokens are separated by white space. A token can include white space if it
// is quoted, which is useful for filenames:
//
//	SCRIPT "my scripts/test.lua"
//
// Hexadecimal values written with the $ prefix are normalised to the 0x
// prefix so that they can be parsed with strconv.ParseUint() and a base of
// zero.
package commandline
