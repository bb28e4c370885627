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

package archivefs_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/archivefs"
	"github.com/jetsetilly/gopher2a03/test"
)

// create a zip file containing the files. directories are created implicitly
// by the names of the files.
func createArchive(t *testing.T, fn string, files map[string]string) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(content))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
}

func read(t *testing.T, filename string) string {
	t.Helper()
	r, n, err := archivefs.Open(filename)
	test.DemandSuccess(t, err)
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	b, err := io.ReadAll(r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, len(b))
	return string(b)
}

func TestArchivefsOpen(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.nes")
	test.DemandSuccess(t, os.WriteFile(plain, []byte("plain"), 0o644))
	test.ExpectEquality(t, read(t, plain), "plain")

	single := filepath.Join(dir, "single.zip")
	createArchive(t, single, map[string]string{"only.nes": "only"})
	test.ExpectEquality(t, read(t, single), "only")
	test.ExpectEquality(t, read(t, filepath.Join(single, "only.nes")), "only")

	multi := filepath.Join(dir, "multi.zip")
	createArchive(t, multi, map[string]string{
		"a.nes":          "a",
		"cpu/b.nes":      "b",
		"cpu/deep/c.nes": "c",
	})
	test.ExpectEquality(t, read(t, filepath.Join(multi, "a.nes")), "a")
	test.ExpectEquality(t, read(t, filepath.Join(multi, "cpu", "b.nes")), "b")
	test.ExpectEquality(t, read(t, filepath.Join(multi, "cpu", "deep", "c.nes")), "c")

	// more than one file in the archive
	_, _, err := archivefs.Open(multi)
	test.ExpectFailure(t, err)

	// directory inside archive
	_, _, err = archivefs.Open(filepath.Join(multi, "cpu"))
	test.ExpectFailure(t, err)

	_, _, err = archivefs.Open(filepath.Join(multi, "missing.nes"))
	test.ExpectFailure(t, err)

	_, _, err = archivefs.Open(filepath.Join(dir, "missing.nes"))
	test.ExpectFailure(t, err)
}

func TestArchivefsList(t *testing.T) {
	dir := t.TempDir()

	multi := filepath.Join(dir, "multi.zip")
	createArchive(t, multi, map[string]string{
		"b.nes":     "b",
		"A.nes":     "a",
		"cpu/c.nes": "c",
	})
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "rom.nes"), []byte("rom"), 0o644))
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	var afs archivefs.Path
	defer afs.Close()

	test.DemandSuccess(t, afs.Set(multi))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	ent, err := afs.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ent), 3)
	test.ExpectEquality(t, ent[0].Name, "cpu")
	test.ExpectSuccess(t, ent[0].IsDir)
	test.ExpectEquality(t, ent[1].Name, "A.nes")
	test.ExpectEquality(t, ent[2].Name, "b.nes")

	test.DemandSuccess(t, afs.Set(filepath.Join(dir, "rom.nes")))
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// listing a file lists the containing directory
	ent, err = afs.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ent), 3)
	test.ExpectEquality(t, ent[0].Name, "multi.zip")
	test.ExpectSuccess(t, ent[0].IsArchive)
	test.ExpectEquality(t, ent[1].Name, "sub")
	test.ExpectEquality(t, ent[2].String(), "rom.nes")
}
