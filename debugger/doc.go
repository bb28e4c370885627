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

// Package debugger implements an interactive command line debugger for the
// NES CPU. The debugger is started with the Start() function and runs until
// the QUIT command is received or the input is exhausted.
//
// Input and output is handled by an implementation of the terminal.Terminal
// interface. Commands are case insensitive and can be abbreviated with their
// aliases. The HELP command lists all commands.
//
// The emulation is halted when the PC reaches a breakpoint, when the
// emulation encounters an error (an unimplemented opcode for example) or when
// the user sends an interrupt signal (CTRL-C).
//
// Scripts of debugger commands can be run with the SCRIPT command. Files with
// the .lua extension are run as Lua programs with access to the emulation
// through a small set of functions. See the script.go file for details.
package debugger
