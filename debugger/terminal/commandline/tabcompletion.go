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

package commandline

import (
	"sort"
	"strings"
)

// TabCompletion completes the first word of the input from a list of command
// names. Repeated calls with the completed input cycle through the other
// possible matches.
type TabCompletion struct {
	commands []string

	matches []string
	match   int

	// the last completion returned. if Complete() is called with this
	// value then the next match is returned
	last string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(commands []string) *TabCompletion {
	tc := &TabCompletion{
		commands: make([]string, len(commands)),
	}
	copy(tc.commands, commands)
	sort.Strings(tc.commands)
	return tc
}

// Complete implements the terminal.TabCompletion interface.
func (tc *TabCompletion) Complete(input string) string {
	// continue cycling through the matches from the previous call
	if len(tc.matches) > 0 && input == tc.last {
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
		tc.last = tc.matches[tc.match] + " "
		return tc.last
	}

	tc.Reset()

	// only the first word is completed
	if strings.ContainsAny(input, " \t") {
		return input
	}

	word := strings.ToUpper(input)
	for _, c := range tc.commands {
		if strings.HasPrefix(c, word) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.last = tc.matches[0] + " "
	return tc.last
}

// Reset implements the terminal.TabCompletion interface.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.last = ""
}
