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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestTokens(t *testing.T) {
	tk, err := commandline.TokeniseInput("  DUMP   $c000 -peek\t10  ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.Len(), 4)
	test.ExpectEquality(t, tk.String(), "DUMP   $c000 -peek\t10")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "DUMP")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0xc000")
	test.ExpectEquality(t, tk.Remaining(), 3)
	test.ExpectEquality(t, tk.Remainder(), "0xc000 -peek 10")

	tk.Get()
	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0xc000")

	tk.End()
	test.ExpectSuccess(t, tk.IsEnd())
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	tk.Reset()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "DUMP")
}

func TestTokensQuoted(t *testing.T) {
	tk, err := commandline.TokeniseInput(`SCRIPT "my scripts/test.lua" now`)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, tk.Len(), 3)
	tk.Get()
	s, _ := tk.Get()
	test.ExpectEquality(t, s, "my scripts/test.lua")

	// an empty quoted argument is still an argument
	tk, err = commandline.TokeniseInput(`MEMVIZ ""`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.Len(), 2)

	_, err = commandline.TokeniseInput(`SCRIPT "test.lua`)
	test.ExpectSuccess(t, curated.Is(err, commandline.UnclosedQuote))
}

func TestTokensEmpty(t *testing.T) {
	tk, err := commandline.TokeniseInput("   ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tk.Len(), 0)
	test.ExpectSuccess(t, tk.IsEnd())

	// a lone dollar sign is not a hex value
	tk, err = commandline.TokeniseInput("$")
	test.DemandSuccess(t, err)
	s, _ := tk.Get()
	test.ExpectEquality(t, s, "$")
}

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion([]string{"STEP", "STOP", "DUMP", "DISASM"})

	test.ExpectEquality(t, tc.Complete("du"), "DUMP ")
	test.ExpectEquality(t, tc.Complete("x"), "x")
	test.ExpectEquality(t, tc.Complete("DUMP 10"), "DUMP 10")

	// cycle through the matches in alphabetical order
	s := tc.Complete("st")
	test.ExpectEquality(t, s, "STEP ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "STOP ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "STEP ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("d"), "DISASM ")
}
