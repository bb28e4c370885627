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

// Package version reports the version of the application. The version number
// is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher2a03/version.number=v0.1.0"
//
// Revision information is taken from the build information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher2A03"

// if number is empty then the project was not built with a version number.
var number string

// Info describes the build of the application.
type Info struct {
	// the version number. "unreleased" if the project was built without a
	// version number but with vcs information. "local" if there is no
	// information of either kind
	Version string

	// the vcs revision. suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// the version of Go used to build the application
	GoVersion string
}

// Release returns true if the build has a version number.
func (info Info) Release() bool {
	return info.Version == number && number != ""
}

func (info Info) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", ApplicationName, info.Version))
	if info.Revision != "" {
		s.WriteString(fmt.Sprintf(" (%s)", info.Revision))
	}
	if info.GoVersion != "" {
		s.WriteString(fmt.Sprintf(" %s", info.GoVersion))
	}
	return s.String()
}

// Version returns the build information for the running binary.
func Version() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fromBuildInfo(nil)
	}
	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	var info Info
	var vcs bool
	var modified bool

	if bi != nil {
		info.GoVersion = bi.GoVersion
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				info.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if info.Revision != "" && modified {
		info.Revision = fmt.Sprintf("%s+dirty", info.Revision)
	}

	switch {
	case number != "":
		info.Version = number
	case vcs:
		info.Version = "unreleased"
	default:
		info.Version = "local"
	}

	return info
}
