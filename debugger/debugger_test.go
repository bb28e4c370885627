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

package debugger_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/debugger"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/test"
)

// mockTerm takes input from a list of strings and records all output.
type mockTerm struct {
	input  []string
	output []string
	errors []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if len(trm.input) == 0 {
		return 0, io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return copy(buffer, s), nil
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	if sty == terminal.StyleError {
		trm.errors = append(trm.errors, s)
	}
	trm.output = append(trm.output, s)
}

// contains returns true if any line of output is exactly s.
func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if o == s {
			return true
		}
	}
	return false
}

// last returns the last line of output.
func (trm *mockTerm) last() string {
	if len(trm.output) == 0 {
		return ""
	}
	return trm.output[len(trm.output)-1]
}

// the test program. the NMI and IRQ vectors point to an RTI instruction
//
//	C000  A2 03     LDX #$03
//	C002  CA        DEX
//	C003  D0 FD     BNE $C002
//	C005  A9 42     LDA #$42
//	C007  8D 00 02  STA $0200
//	C00A  4C 0A C0  JMP $C00A
//	C00D  40        RTI
var program = []uint8{
	0xa2, 0x03,
	0xca,
	0xd0, 0xfd,
	0xa9, 0x42,
	0x8d, 0x00, 0x02,
	0x4c, 0x0a, 0xc0,
	0x40,
}

func nrom() []byte {
	data := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	copy(prg, program)
	prg[0x3ffa], prg[0x3ffb] = 0x0d, 0xc0
	prg[0x3ffc], prg[0x3ffd] = 0x00, 0xc0
	prg[0x3ffe], prg[0x3fff] = 0x0d, 0xc0
	data = append(data, prg...)
	return append(data, make([]byte, 0x2000)...)
}

func newDebugger(t *testing.T, input ...string) (*debugger.Debugger, *mockTerm, *hardware.NES) {
	t.Helper()

	nes := hardware.NewNES()
	cl := cartridgeloader.NewLoaderFromData("test.nes", nrom(), "")
	test.DemandSuccess(t, nes.AttachCartridge(&cl))

	trm := &mockTerm{input: input}
	dbg, err := debugger.NewDebugger(nes, trm)
	test.DemandSuccess(t, err)

	return dbg, trm, nes
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, &mockTerm{})
	test.ExpectFailure(t, err)
	_, err = debugger.NewDebugger(hardware.NewNES(), nil)
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	dbg, trm, _ := newDebugger(t, "STEP", "REGISTERS", "QUIT", "STEP")
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	// commands after QUIT are not read
	test.ExpectEquality(t, len(trm.input), 1)
	test.ExpectEquality(t, len(trm.errors), 0)

	test.DemandEquality(t, len(trm.output), 3)
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[0], "C000  A2 03     LDX #$03 "))
	test.ExpectEquality(t, trm.output[1], "PC=C002 A=00 X=03 Y=00 SP=FD P=nv-bdIzc")
	test.ExpectEquality(t, trm.output[2], "CYC:9 NMI:false IRQ:false")
}

func TestEndOfInput(t *testing.T) {
	dbg, trm, nes := newDebugger(t, "step 3", "s")
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc002))
	test.ExpectEquality(t, trm.last(), "emulation stopped")
}

func TestBreakpoint(t *testing.T) {
	dbg, trm, nes := newDebugger(t, "BREAK $C005", "BREAK", "C", "R", "CLEAR", "CONTINUE")

	// the final CONTINUE never ends so it is stopped with an undocumented
	// opcode
	nes.Mem.Poke(0xc00a, 0x02)

	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 1)

	test.ExpectSuccess(t, trm.contains("added PC->C005"))
	test.ExpectSuccess(t, trm.contains(" 0: PC->C005"))
	test.ExpectSuccess(t, trm.contains("break on PC->C005"))
	test.ExpectSuccess(t, trm.contains("PC=C005 A=00 X=00 Y=00 SP=FD P=nv-bdIZc"))
	test.ExpectSuccess(t, trm.contains("CYC:23 NMI:false IRQ:false"))
	test.ExpectSuccess(t, trm.contains("Paused at breakpoint"))
	test.ExpectSuccess(t, trm.contains("breakpoints cleared"))

	test.ExpectEquality(t, trm.errors[0], "cpu: unimplemented opcode 02 (KIL) at C00A")
	test.ExpectEquality(t, nes.Mem.Peek(0x0200), uint8(0x42))
}

func TestStepOntoBreakpoint(t *testing.T) {
	dbg, trm, nes := newDebugger(t, "BREAK C002", "STEP 10")
	test.ExpectSuccess(t, dbg.Start(""))

	// the step stops at the breakpoint after the first instruction
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc002))
	test.ExpectEquality(t, trm.last(), "break on PC->C002")
}

func TestInterrupts(t *testing.T) {
	dbg, trm, nes := newDebugger(t, "NMI", "STEP", "STEP", "IRQ", "IRQ CLEAR", "REGISTERS", "HISTORY 2")
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0)

	test.ExpectSuccess(t, trm.contains("NMI requested"))
	test.ExpectSuccess(t, trm.contains("C00D  [NMI]"))
	test.ExpectSuccess(t, trm.contains("IRQ cleared"))
	test.ExpectSuccess(t, trm.contains("CYC:20 NMI:false IRQ:false"))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))

	// the last two lines are the history
	test.DemandEquality(t, len(trm.output) >= 2, true)
	test.ExpectEquality(t, trm.output[len(trm.output)-2], "C00D  [NMI]")
	test.ExpectSuccess(t, strings.HasPrefix(trm.last(), "C00D  40        RTI "))
}

func TestCommandErrors(t *testing.T) {
	dbg, trm, _ := newDebugger(t,
		"FOO",
		"DUMP",
		"BREAK C000",
		"BREAK C000",
		"CLEAR C001",
		"STEP 0",
		"REGISTERS 1",
		"TRACE MAYBE",
		`SCRIPT "unclosed`,
		"POKE 0200 XYZ",
		"HELP BAR",
	)
	test.ExpectSuccess(t, dbg.Start(""))

	expected := []string{
		"debugger: unknown command (FOO)",
		"debugger: dump: no address specified",
		"debugger: break: already exists (PC->C000)",
		"debugger: clear: no breakpoint (PC->C001)",
		"debugger: step: invalid count (0)",
		"debugger: registers: too many arguments. usage: REGISTERS",
		"debugger: trace: unknown argument (MAYBE)",
		"debugger: commandline: quoted argument does not close",
		"debugger: poke: invalid value (XYZ)",
		"debugger: help: no help for BAR",
	}

	test.DemandEquality(t, len(trm.errors), len(expected))
	for i := range expected {
		test.ExpectEquality(t, trm.errors[i], expected[i])
	}
}

func TestMemory(t *testing.T) {
	dbg, trm, nes := newDebugger(t,
		"DUMP C000 -peek 3",
		"D $C000",
		"POKE 0200 $7f",
		"DISASM C000 4",
		"DUMP 0000 -peek 17",
	)
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0)

	test.ExpectSuccess(t, trm.contains("C000  A2 03 CA"))
	test.ExpectSuccess(t, trm.contains("C000  A2 03 CA D0 FD A9 42 8D 00 02"))
	test.ExpectSuccess(t, trm.contains("0200 -> 7F"))
	test.ExpectEquality(t, nes.Mem.Peek(0x0a00), uint8(0x7f))

	test.ExpectSuccess(t, trm.contains("C000  A2 03     LDX #$03"))
	test.ExpectSuccess(t, trm.contains("C002  CA        DEX"))
	test.ExpectSuccess(t, trm.contains("C003  D0 FD     BNE $C002"))
	test.ExpectSuccess(t, trm.contains("C005  A9 42     LDA #$42"))

	test.ExpectSuccess(t, trm.contains("0000  00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00"))
	test.ExpectEquality(t, trm.last(), "0010  00")
}

func TestTrace(t *testing.T) {
	dbg, trm, _ := newDebugger(t, "TRACE", "STEP 3", "TRACE OFF")
	test.ExpectSuccess(t, dbg.Start(""))

	test.DemandEquality(t, len(trm.output), 5)
	test.ExpectEquality(t, trm.output[0], "tracing on")
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[1], "C000  A2 03     LDX #$03 "))
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[2], "C002  CA        DEX "))
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[3], "C003  D0 FD     BNE $C002 "))
	test.ExpectEquality(t, trm.output[4], "tracing off")
}

func TestHelp(t *testing.T) {
	dbg, trm, _ := newDebugger(t, "HELP", "HELP d")
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectSuccess(t, strings.Contains(trm.output[0], "CONTINUE"))
	test.ExpectSuccess(t, trm.contains("DUMP address [-peek n]"))
	test.ExpectEquality(t, trm.last(), "alias: D")
}

func TestScript(t *testing.T) {
	dir := t.TempDir()

	script := filepath.Join(dir, "test.script")
	err := os.WriteFile(script, []byte("# run to the end of the loop\nBREAK C005\nCONTINUE\nREGISTERS\n"), 0600)
	test.DemandSuccess(t, err)

	dbg, trm, nes := newDebugger(t, fmt.Sprintf(`SCRIPT "%s"`, script))
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc005))
	test.ExpectSuccess(t, trm.contains("CYC:23 NMI:false IRQ:false"))
	test.ExpectEquality(t, trm.last(), "Paused at breakpoint")

	// errors in the script name the line
	bad := filepath.Join(dir, "bad.script")
	err = os.WriteFile(bad, []byte("STEP\nFOO\nSTEP\n"), 0600)
	test.DemandSuccess(t, err)

	dbg, trm, nes = newDebugger(t)
	test.ExpectSuccess(t, dbg.Start(bad))
	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectEquality(t, trm.errors[0], "debugger: script: bad.script: line 2: debugger: unknown command (FOO)")
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc002))

	// a missing init script does not prevent the debugger from starting
	dbg, trm, _ = newDebugger(t, "QUIT")
	test.ExpectSuccess(t, dbg.Start(filepath.Join(dir, "missing.script")))
	test.ExpectEquality(t, len(trm.errors), 1)
	test.ExpectEquality(t, dbg.State(), govern.Ending)
}

func TestLuaScript(t *testing.T) {
	dir := t.TempDir()

	script := filepath.Join(dir, "test.lua")
	err := os.WriteFile(script, []byte(`
step(2)
assert(reg("X") == 2, "X register")
assert(reg("PC") == 0xc003, "PC register")
poke(0x0300, 0x55)
print("peek", peek(0x0300), cycles())
cmd("BREAK C005")
cmd("CONTINUE")
assert(reg("pc") == 0xc005, "breakpoint")
`), 0600)
	test.DemandSuccess(t, err)

	dbg, trm, nes := newDebugger(t, "SCRIPT "+script)
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0, trm.errors)
	test.ExpectSuccess(t, trm.contains("peek\t85\t11"))
	test.ExpectEquality(t, nes.Mem.Peek(0x0300), uint8(0x55))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc005))

	bad := filepath.Join(dir, "bad.lua")
	err = os.WriteFile(bad, []byte(`reg("Q")`), 0600)
	test.DemandSuccess(t, err)

	dbg, trm, _ = newDebugger(t, "SCRIPT "+bad)
	test.ExpectSuccess(t, dbg.Start(""))
	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectSuccess(t, strings.HasPrefix(trm.errors[0], "debugger: script: "))
}

func TestMemviz(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "cpu.dot")

	dbg, trm, _ := newDebugger(t, "STEP", "MEMVIZ "+filename)
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectEquality(t, trm.last(), "memviz written to "+filename)

	info, err := os.Stat(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)

	// file cannot be created
	dbg, trm, _ = newDebugger(t, "MEMVIZ "+filepath.Join(t.TempDir(), "missing", "cpu.dot"))
	test.ExpectSuccess(t, dbg.Start(""))
	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectSuccess(t, strings.Contains(trm.errors[0], "memviz: "))

	// writes fail
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full device")
	}
	dbg, trm, _ = newDebugger(t, "STEP", "MEMVIZ /dev/full")
	test.ExpectSuccess(t, dbg.Start(""))
	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectSuccess(t, strings.Contains(trm.errors[0], "memviz: "))
}

func TestResetAndLog(t *testing.T) {
	dbg, trm, nes := newDebugger(t, "STEP 4", "RESET", "LOG 100")
	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, len(trm.errors), 0)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, nes.CPU.Cycles(), uint64(7))
	test.ExpectSuccess(t, trm.contains("NES reset"))
}

func TestSymbols(t *testing.T) {
	dbg, trm, nes := newDebugger(t,
		"SYMBOL store",
		"BREAK store",
		"CONTINUE",
		"DISASM store 1",
		"SYMBOL 2002",
		"SYMBOL",
		"SYMBOL nothing",
	)

	fn := filepath.Join(t.TempDir(), "test.lbl")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("al 00C005 .store\n"), 0o644))
	test.ExpectSuccess(t, dbg.LoadSymbols(fn))
	test.ExpectFailure(t, dbg.LoadSymbols(filepath.Join(t.TempDir(), "missing.lbl")))

	test.ExpectSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc005))

	test.ExpectSuccess(t, trm.contains("store -> C005 (label)"))
	test.ExpectSuccess(t, trm.contains("added PC->C005"))
	test.ExpectSuccess(t, trm.contains("store:"))
	test.ExpectSuccess(t, trm.contains("C005  A9 42     LDA #$42"))
	test.ExpectSuccess(t, trm.contains("PPUSTATUS -> 2002 (read)"))
	test.ExpectSuccess(t, trm.contains("C005 -> store"))

	test.DemandEquality(t, len(trm.errors), 1)
	test.ExpectEquality(t, trm.errors[0], "debugger: symbol: no symbol (nothing)")
}
