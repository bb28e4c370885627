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

// Package archivefs allows files inside zip archives to be opened as though
// the archive were a directory. For example, the following path names the
// file nestest.nes inside the archive tests.zip:
//
//	roms/tests.zip/cpu/nestest.nes
//
// An archive containing exactly one file can be opened directly by naming the
// archive. In that case the contained file is opened.
package archivefs
