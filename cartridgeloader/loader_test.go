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

package cartridgeloader_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestMappingFromExtension(t *testing.T) {
	cl := cartridgeloader.NewLoader("nestest.nes", "")
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingINES)

	cl = cartridgeloader.NewLoader("program.BIN", "auto")
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingFlat)

	cl = cartridgeloader.NewLoader("program.xyz", "")
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingAuto)

	cl = cartridgeloader.NewLoader("program.nes", "flat")
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingFlat)
	test.ExpectEquality(t, cl.ShortName(), "program")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "image.dat")
	err := os.WriteFile(fn, []byte{'N', 'E', 'S', 0x1a, 0x01}, 0o644)
	test.DemandSuccess(t, err)

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingINES)
	test.ExpectEquality(t, len(cl.Hash), 40)

	// hash mismatch
	cl = cartridgeloader.NewLoader(fn, "")
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectHash))
}

func TestLoadMissing(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"), "")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestLoadFromData(t *testing.T) {
	cl := cartridgeloader.NewLoaderFromData("test", []byte{0xea, 0xea}, "")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingFlat)
	test.ExpectEquality(t, cl.Origin, uint16(cartridgeloader.DefaultOrigin))
}

func TestLoadFromArchive(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "roms.zip")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("nestest.nes")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{'N', 'E', 'S', 0x1a, 0x01})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	// the only file in the archive
	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingINES)
	test.ExpectEquality(t, len(cl.Data), 5)

	// named file in the archive
	cl = cartridgeloader.NewLoader(filepath.Join(fn, "nestest.nes"), "")
	test.ExpectEquality(t, cl.Mapping, cartridgeloader.MappingINES)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 5)

	cl = cartridgeloader.NewLoader(filepath.Join(fn, "missing.nes"), "")
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))
}
