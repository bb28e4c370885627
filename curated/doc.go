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

// Package curated builds errors from a formatting pattern and a list of
// values. The pattern is kept so that errors can be identified later without
// string matching on the formatted message:
//
//	const UnknownThing = "thing: unknown (%s)"
//
//	err := curated.Errorf(UnknownThing, name)
//	if curated.Is(err, UnknownThing) {
//		...
//	}
//
// Has() searches the chain of values for the pattern. Curated errors placed
// in the values list of another curated error form the chain:
//
//	err = curated.Errorf("loader: %v", err)
//	curated.Has(err, UnknownThing) // true
//	curated.Is(err, UnknownThing)  // false
//
// Error() normalises the message so that adjacent duplicate parts are
// removed. Parts are separated by ": ". This means that wrapping an error with
// a prefix that it already carries is harmless:
//
//	cpu: cpu: unimplemented opcode
//
// is printed as
//
//	cpu: unimplemented opcode
//
// Sentinel patterns should be exported string constants in the package that
// raises them.
package curated
