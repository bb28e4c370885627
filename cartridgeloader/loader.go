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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopher2a03/archivefs"
	"github.com/jetsetilly/gopher2a03/curated"
)

// Sentinal error patterns.
const (
	LoadError    = "cartridgeloader: %v"
	UnexpectHash = "cartridgeloader: unexpected hash value"
)

// Valid values for the Mapping field.
const (
	MappingAuto = "AUTO"
	MappingINES = "INES"
	MappingFlat = "FLAT"
)

// DefaultOrigin is the address at which flat binaries are loaded if no other
// origin has been specified.
const DefaultOrigin = 0xc000

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// one of the Mapping values
	Mapping string

	// origin of a flat binary. ignored for other mappings
	Origin uint16

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequence calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field. Files with the ".NES" extension are
// always iNES images; ".BIN" files are flat binaries. Any other extension
// results in "AUTO".
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
		Mapping:  MappingAuto,
		Origin:   DefaultOrigin,
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != MappingAuto && mapping != "" {
		cl.Mapping = mapping
		return cl
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".NES":
		cl.Mapping = MappingINES
	case ".BIN":
		cl.Mapping = MappingFlat
	}

	return cl
}

// NewLoaderFromData is like NewLoader but with data that has already been
// loaded.
func NewLoaderFromData(name string, data []byte, mapping string) Loader {
	cl := NewLoader(name, mapping)
	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	return cl
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// Once loaded, the Mapping field will no longer be "AUTO".
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		data, err := cl.fetch()
		if err != nil {
			return err
		}
		cl.Data = data
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectHash)
	}
	cl.Hash = hash

	if cl.Mapping == MappingAuto || cl.Mapping == "" {
		if bytes.HasPrefix(cl.Data, []byte("NES\x1a")) {
			cl.Mapping = MappingINES
		} else {
			cl.Mapping = MappingFlat
		}
	}

	return nil
}

func (cl *Loader) fetch() ([]byte, error) {
	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, curated.Errorf(LoadError, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		return data, nil

	case "file":
		r, _, err := archivefs.Open(cl.Filename)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		return data, nil
	}

	return nil, curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
}
