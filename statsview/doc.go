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

// Package statsview is a wrapper for the "github.com/go-echarts/statsview"
// package. It provides a HTTP server running locally offering runtime
// statistics while the emulator is running.
//
// The package is only included when the emulator is built with the
// "statsview" build tag. Without it, Available() returns false and Launch()
// does nothing.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12603/debug/statsview
package statsview
