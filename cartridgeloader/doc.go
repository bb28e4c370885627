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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// a local file or from a URL with the http or https scheme.
//
//	cl := cartridgeloader.NewLoader("nestest.nes", "AUTO")
//	err := cl.Load()
//
// The Hash field of the Loader is set to the SHA1 of the loaded data. If the
// field is not empty before Load() is called then the loaded data must match.
//
// The Mapping field decides how the data is interpreted. The value "AUTO"
// means that the data is examined: data beginning with the iNES identifier
// is treated as an iNES image and anything else as a flat binary loaded at
// the Origin address.
package cartridgeloader
