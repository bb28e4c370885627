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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a flag.Value for 16 bit addresses given in hexadecimal.
type Address struct {
	Value uint16
	Valid bool
}

// ParseAddress accepts a hexadecimal number with an optional 0x or $ prefix.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	t = strings.TrimPrefix(t, "$")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint16(v), nil
}

func (a *Address) String() string {
	if a == nil || !a.Valid {
		return ""
	}
	return fmt.Sprintf("%04X", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	a.Value = v
	a.Valid = true
	return nil
}
