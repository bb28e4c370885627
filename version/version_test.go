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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestVersion(t *testing.T) {
	info := fromBuildInfo(nil)
	test.ExpectEquality(t, info.Version, "local")
	test.ExpectEquality(t, info.String(), "Gopher2A03 local")
	test.ExpectFailure(t, info.Release())

	info = fromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.25.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	test.ExpectEquality(t, info.Version, "unreleased")
	test.ExpectEquality(t, info.String(), "Gopher2A03 unreleased (abc123+dirty) go1.25.0")

	number = "v0.1.0"
	defer func() { number = "" }()
	info = fromBuildInfo(nil)
	test.ExpectEquality(t, info.Version, "v0.1.0")
	test.ExpectSuccess(t, info.Release())
}
