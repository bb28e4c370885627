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

package archivefs

import (
	"fmt"
	"io"
	"path/filepath"
)

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive. If the filename is an archive that contains exactly one
// file then that file is opened.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors. The io.ReadSeeker should be closed by the caller if it implements
// the io.Closer interface.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()

	if afs.InArchive() && afs.IsDir() && afs.inZipPath == "" {
		ent, err := afs.List()
		if err != nil {
			return nil, 0, err
		}
		if len(ent) != 1 || ent[0].IsDir {
			return nil, 0, fmt.Errorf("archivefs: open: %s does not contain exactly one file", filename)
		}
		afs.isDir = false
		afs.inZipFile = ent[0].Name
		afs.current = filepath.Join(afs.current, ent[0].Name)
	}

	return afs.Open()
}
