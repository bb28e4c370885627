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

package debugger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "debugger: script: %v"
)

// scripts can run other scripts but not indefinitely.
const maxScriptDepth = 8

// runScript runs the named file. Files with the .lua extension are run as Lua
// programs, any other file is treated as a list of debugger commands, one
// command per line.
func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf(ScriptError, "too many nested scripts")
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	logger.Logf(logger.Allow, "debugger", "running script: %s", filename)

	if strings.EqualFold(filepath.Ext(filename), ".lua") {
		return dbg.runLua(filename)
	}
	return dbg.runCommands(filename)
}

// runCommands runs each line of the file as a debugger command. The script
// ends at the first error or if a command ends the debugging session.
func (dbg *Debugger) runCommands(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		if dbg.state == govern.Ending {
			return nil
		}
		if err := dbg.parseInput(scanner.Text()); err != nil {
			return curated.Errorf(ScriptError, fmt.Errorf("%s: line %d: %w", filepath.Base(filename), line, err))
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

// runLua runs the file as a Lua program. The following functions are
// available to the program:
//
//	cmd(s)             run the string as a debugger command
//	step([n])          step n instructions (default 1). returns false if
//	                   the emulation halted with an error or at a breakpoint
//	peek(addr)         value at the address
//	poke(addr, value)  change the value at the address
//	reg(name)          value of the named register (A, X, Y, SP, P or PC)
//	cycles()           number of cycles since reset
//	print(...)         print the arguments to the debugger terminal
func (dbg *Debugger) runLua(filename string) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("cmd", L.NewFunction(dbg.luaCmd))
	L.SetGlobal("step", L.NewFunction(dbg.luaStep))
	L.SetGlobal("peek", L.NewFunction(dbg.luaPeek))
	L.SetGlobal("poke", L.NewFunction(dbg.luaPoke))
	L.SetGlobal("reg", L.NewFunction(dbg.luaReg))
	L.SetGlobal("cycles", L.NewFunction(dbg.luaCycles))
	L.SetGlobal("print", L.NewFunction(dbg.luaPrint))

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func (dbg *Debugger) luaCmd(L *lua.LState) int {
	if err := dbg.parseInput(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (dbg *Debugger) luaStep(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 1 {
		L.ArgError(1, "step count must be positive")
		return 0
	}
	dbg.step(n)
	L.Push(lua.LBool(dbg.subState == govern.Normal))
	return 1
}

// luaAddress returns the argument as an address, raising an argument error
// if it is out of range.
func luaAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (dbg *Debugger) luaPeek(L *lua.LState) int {
	address := luaAddress(L, 1)
	L.Push(lua.LNumber(dbg.nes.Mem.Peek(address)))
	return 1
}

func (dbg *Debugger) luaPoke(L *lua.LState) int {
	address := luaAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
		return 0
	}
	dbg.nes.Mem.Poke(address, uint8(v))
	return 0
}

func (dbg *Debugger) luaReg(L *lua.LState) int {
	mc := dbg.nes.CPU
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		L.Push(lua.LNumber(mc.A.Value()))
	case "X":
		L.Push(lua.LNumber(mc.X.Value()))
	case "Y":
		L.Push(lua.LNumber(mc.Y.Value()))
	case "SP":
		L.Push(lua.LNumber(mc.SP.Value()))
	case "P":
		L.Push(lua.LNumber(mc.Status.Value()))
	case "PC":
		L.Push(lua.LNumber(mc.PC.Address()))
	default:
		L.ArgError(1, "unknown register")
		return 0
	}
	return 1
}

func (dbg *Debugger) luaCycles(L *lua.LState) int {
	L.Push(lua.LNumber(dbg.nes.CPU.Cycles()))
	return 1
}

func (dbg *Debugger) luaPrint(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.Get(i).String())
	}
	dbg.printLine(terminal.StyleFeedback, strings.Join(s, "\t"))
	return 0
}
