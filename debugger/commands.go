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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/symbols"
	"github.com/jetsetilly/gopher2a03/trace"
)

// Sentinal error patterns.
const (
	UnknownCommand = "debugger: unknown command (%s)"
	CommandError   = "debugger: %s: %v"
)

// debugger keywords.
const (
	cmdHelp      = "HELP"
	cmdStep      = "STEP"
	cmdContinue  = "CONTINUE"
	cmdStop      = "STOP"
	cmdBreak     = "BREAK"
	cmdClear     = "CLEAR"
	cmdRegisters = "REGISTERS"
	cmdDump      = "DUMP"
	cmdDisasm    = "DISASM"
	cmdPoke      = "POKE"
	cmdNMI       = "NMI"
	cmdIRQ       = "IRQ"
	cmdReset     = "RESET"
	cmdTrace     = "TRACE"
	cmdHistory   = "HISTORY"
	cmdLog       = "LOG"
	cmdMemviz    = "MEMVIZ"
	cmdScript    = "SCRIPT"
	cmdSymbol    = "SYMBOL"
	cmdQuit      = "QUIT"
)

// default values for optional arguments.
const (
	defaultPeek   = 10
	defaultDisasm = 10
	defaultTail   = 10
	maxPeek       = 4096
)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string

	// maximum number of arguments. the minimum is checked by the handler
	maxArgs int

	fn func(dbg *Debugger, tokens *commandline.Tokens) error
}

var commands []command

func init() {
	commands = []command{
		{name: cmdHelp, usage: "HELP [command]", maxArgs: 1,
			help: "List commands or show help for a specific command", fn: (*Debugger).cmdHelp},
		{name: cmdStep, usage: "STEP [n]", maxArgs: 1,
			help: "Execute the next n instructions (default 1). An interrupt service counts as an instruction", fn: (*Debugger).cmdStep},
		{name: cmdContinue, aliases: []string{"C"}, usage: "CONTINUE", maxArgs: 0,
			help: "Run until a breakpoint is reached, an error occurs or CTRL-C is pressed", fn: (*Debugger).cmdContinue},
		{name: cmdStop, aliases: []string{"S"}, usage: "STOP", maxArgs: 0,
			help: "Stop the emulation", fn: (*Debugger).cmdStop},
		{name: cmdBreak, usage: "BREAK [address]", maxArgs: 1,
			help: "Halt the emulation when the PC reaches the address. Lists breakpoints if no address is given", fn: (*Debugger).cmdBreak},
		{name: cmdClear, usage: "CLEAR [address]", maxArgs: 1,
			help: "Remove the breakpoint at the address. Removes all breakpoints if no address is given", fn: (*Debugger).cmdClear},
		{name: cmdRegisters, aliases: []string{"R"}, usage: "REGISTERS", maxArgs: 0,
			help: "Display the CPU registers, the cycle count and pending interrupts", fn: (*Debugger).cmdRegisters},
		{name: cmdDump, aliases: []string{"D"}, usage: "DUMP address [-peek n]", maxArgs: 3,
			help: "Display memory starting at the address. The -peek option sets how many bytes to display (default 10)", fn: (*Debugger).cmdDump},
		{name: cmdDisasm, usage: "DISASM [address] [n]", maxArgs: 2,
			help: "Disassemble n instructions (default 10) starting at the address (default PC)", fn: (*Debugger).cmdDisasm},
		{name: cmdPoke, usage: "POKE address value", maxArgs: 2,
			help: "Change the value at the address without side effects", fn: (*Debugger).cmdPoke},
		{name: cmdNMI, usage: "NMI", maxArgs: 0,
			help: "Request a non-maskable interrupt. It is serviced on the next step", fn: (*Debugger).cmdNMI},
		{name: cmdIRQ, usage: "IRQ [CLEAR]", maxArgs: 1,
			help: "Request an interrupt. It is serviced on the next step if interrupts are enabled. CLEAR withdraws the request", fn: (*Debugger).cmdIRQ},
		{name: cmdReset, usage: "RESET", maxArgs: 0,
			help: "Reset the NES", fn: (*Debugger).cmdReset},
		{name: cmdTrace, usage: "TRACE [ON|OFF]", maxArgs: 1,
			help: "Print every instruction as it is executed. Toggles tracing if no argument is given", fn: (*Debugger).cmdTrace},
		{name: cmdHistory, usage: "HISTORY [n]", maxArgs: 1,
			help: "Print the n most recently executed instructions (default 10)", fn: (*Debugger).cmdHistory},
		{name: cmdLog, usage: "LOG [n]", maxArgs: 1,
			help: "Print the n most recent log entries (default 10)", fn: (*Debugger).cmdLog},
		{name: cmdMemviz, usage: "MEMVIZ file", maxArgs: 1,
			help: "Write a graphviz description of the last CPU result and cartridge to the file", fn: (*Debugger).cmdMemviz},
		{name: cmdScript, usage: "SCRIPT file", maxArgs: 1,
			help: "Run a script of debugger commands. Files with the .lua extension are run as Lua programs", fn: (*Debugger).cmdScript},
		{name: cmdSymbol, usage: "SYMBOL [symbol|address]", maxArgs: 1,
			help: "Show the address of a symbol or the symbol for an address. Lists labels if no argument is given", fn: (*Debugger).cmdSymbol},
		{name: cmdQuit, aliases: []string{"EXIT"}, usage: "QUIT", maxArgs: 0,
			help: "End the debugging session", fn: (*Debugger).cmdQuit},
	}
}

// commandNames returns the name and aliases of every command.
func commandNames() []string {
	n := make([]string, 0, len(commands))
	for _, c := range commands {
		n = append(n, c.name)
		n = append(n, c.aliases...)
	}
	return n
}

func lookupCommand(s string) (command, bool) {
	s = strings.ToUpper(s)
	for _, c := range commands {
		if c.name == s {
			return c, true
		}
		for _, a := range c.aliases {
			if a == s {
				return c, true
			}
		}
	}
	return command{}, false
}

// parseInput tokenises the input and runs the command. Empty input and lines
// beginning with # are ignored.
func (dbg *Debugger) parseInput(input string) error {
	if strings.HasPrefix(strings.TrimSpace(input), "#") {
		return nil
	}

	tokens, err := commandline.TokeniseInput(input)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	name, ok := tokens.Get()
	if !ok {
		return nil
	}

	c, ok := lookupCommand(name)
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}

	dbg.printLine(terminal.StyleEcho, normaliseInput(input))

	if tokens.Remaining() > c.maxArgs {
		return curated.Errorf(CommandError, strings.ToLower(c.name), fmt.Sprintf("too many arguments. usage: %s", c.usage))
	}

	if err := c.fn(dbg, tokens); err != nil {
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(CommandError, strings.ToLower(c.name), err)
	}

	return nil
}

// parseCount returns the next token as a positive integer. The default value
// is returned if there are no more tokens.
func parseCount(tokens *commandline.Tokens, def int) (int, error) {
	s, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid count (%s)", s)
	}
	return n, nil
}

// parseAddress returns the next token as an address. An error is returned if
// there are no more tokens.
func parseAddress(tokens *commandline.Tokens) (uint16, error) {
	s, ok := tokens.Get()
	if !ok {
		return 0, fmt.Errorf("no address specified")
	}
	return modalflag.ParseAddress(s)
}

func (dbg *Debugger) cmdHelp(tokens *commandline.Tokens) error {
	if s, ok := tokens.Get(); ok {
		c, ok := lookupCommand(s)
		if !ok {
			return fmt.Errorf("no help for %s", strings.ToUpper(s))
		}
		dbg.printLine(terminal.StyleHelp, c.usage)
		dbg.printLine(terminal.StyleHelp, c.help)
		if len(c.aliases) > 0 {
			dbg.printLine(terminal.StyleHelp, fmt.Sprintf("alias: %s", strings.Join(c.aliases, ", ")))
		}
		return nil
	}

	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.name)
	}
	sort.Strings(names)
	dbg.printLine(terminal.StyleHelp, strings.Join(names, " "))
	return nil
}

func (dbg *Debugger) cmdStep(tokens *commandline.Tokens) error {
	n, err := parseCount(tokens, 1)
	if err != nil {
		return err
	}
	dbg.step(n)
	return nil
}

func (dbg *Debugger) cmdContinue(_ *commandline.Tokens) error {
	dbg.run()
	return nil
}

func (dbg *Debugger) cmdStop(_ *commandline.Tokens) error {
	dbg.setState(govern.Paused, govern.Normal)
	dbg.printLine(terminal.StyleFeedback, "emulation stopped")
	return nil
}

func (dbg *Debugger) cmdBreak(tokens *commandline.Tokens) error {
	if tokens.IsEnd() {
		dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
		return nil
	}
	address, err := parseAddress(tokens)
	if err != nil {
		return err
	}
	if !dbg.breakpoints.add(address) {
		return fmt.Errorf("already exists (%s)", breakpoint(address))
	}
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("added %s", breakpoint(address)))
	return nil
}

func (dbg *Debugger) cmdClear(tokens *commandline.Tokens) error {
	if tokens.IsEnd() {
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	}
	address, err := parseAddress(tokens)
	if err != nil {
		return err
	}
	if !dbg.breakpoints.drop(address) {
		return fmt.Errorf("no breakpoint (%s)", breakpoint(address))
	}
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("removed %s", breakpoint(address)))
	return nil
}

func (dbg *Debugger) cmdRegisters(_ *commandline.Tokens) error {
	mc := dbg.nes.CPU
	dbg.printLine(terminal.StyleInstrument, mc.String())
	dbg.printLine(terminal.StyleInstrument, fmt.Sprintf("CYC:%d NMI:%v IRQ:%v", mc.Cycles(), mc.NMIPending(), mc.IRQPending()))
	if dbg.subState != govern.Normal {
		dbg.printLine(terminal.StyleInstrument, dbg.subState.String())
	}
	return nil
}

func (dbg *Debugger) cmdDump(tokens *commandline.Tokens) error {
	peek := defaultPeek
	address := uint16(0)
	haveAddress := false

	for {
		s, ok := tokens.Get()
		if !ok {
			break // for loop
		}

		if strings.EqualFold(s, "-peek") || strings.EqualFold(s, "--peek") || strings.EqualFold(s, "-p") {
			n, err := parseCount(tokens, 0)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("-peek requires a value")
			}
			if n > maxPeek {
				return fmt.Errorf("-peek value too large (max %d)", maxPeek)
			}
			peek = n
			continue // for loop
		}

		if haveAddress {
			return fmt.Errorf("unexpected argument (%s)", s)
		}

		var err error
		address, err = modalflag.ParseAddress(s)
		if err != nil {
			return fmt.Errorf("cannot parse address: %v", err)
		}
		haveAddress = true
	}

	if !haveAddress {
		return fmt.Errorf("no address specified")
	}

	for _, l := range dump(dbg.nes.Mem.Peek, address, peek) {
		dbg.printLine(terminal.StyleInstrument, l)
	}

	return nil
}

// dump returns lines of hexadecimal values. sixteen values per line.
func dump(peek trace.PeekFunc, address uint16, n int) []string {
	lines := make([]string, 0, n/16+1)
	s := strings.Builder{}
	for i := 0; i < n; i++ {
		a := address + uint16(i)
		if i%16 == 0 {
			if s.Len() > 0 {
				lines = append(lines, s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%04X ", a))
		}
		s.WriteString(fmt.Sprintf(" %02X", peek(a)))
	}
	if s.Len() > 0 {
		lines = append(lines, s.String())
	}
	return lines
}

func (dbg *Debugger) cmdDisasm(tokens *commandline.Tokens) error {
	address := dbg.nes.CPU.PC.Address()
	if !tokens.IsEnd() {
		var err error
		address, err = parseAddress(tokens)
		if err != nil {
			return err
		}
	}

	n, err := parseCount(tokens, defaultDisasm)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{ByteCode: true, Symbols: dbg.symbols}

	s := &strings.Builder{}
	err = disassembly.Write(s, attr, disassembly.Range(dbg.nes.Mem.Peek, address, n))
	if err != nil {
		return err
	}
	for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
		dbg.printLine(terminal.StyleInstrument, l)
	}

	return nil
}

func (dbg *Debugger) cmdPoke(tokens *commandline.Tokens) error {
	address, err := parseAddress(tokens)
	if err != nil {
		return err
	}

	s, ok := tokens.Get()
	if !ok {
		return fmt.Errorf("no value specified")
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return fmt.Errorf("invalid value (%s)", s)
	}

	dbg.nes.Mem.Poke(address, uint8(v))
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("%04X -> %02X", address, dbg.nes.Mem.Peek(address)))
	return nil
}

func (dbg *Debugger) cmdNMI(_ *commandline.Tokens) error {
	dbg.nes.CPU.RequestNMI()
	dbg.printLine(terminal.StyleFeedback, "NMI requested")
	return nil
}

func (dbg *Debugger) cmdIRQ(tokens *commandline.Tokens) error {
	if s, ok := tokens.Get(); ok {
		if !strings.EqualFold(s, "CLEAR") {
			return fmt.Errorf("unknown argument (%s)", s)
		}
		dbg.nes.CPU.ClearIRQ()
		dbg.printLine(terminal.StyleFeedback, "IRQ cleared")
		return nil
	}
	dbg.nes.CPU.RequestIRQ()
	dbg.printLine(terminal.StyleFeedback, "IRQ requested")
	return nil
}

func (dbg *Debugger) cmdReset(_ *commandline.Tokens) error {
	dbg.nes.Reset()
	dbg.setState(govern.Paused, govern.Normal)
	dbg.printLine(terminal.StyleFeedback, "NES reset")
	return nil
}

func (dbg *Debugger) cmdTrace(tokens *commandline.Tokens) error {
	if s, ok := tokens.Get(); ok {
		switch strings.ToUpper(s) {
		case "ON":
			dbg.tracing = true
		case "OFF":
			dbg.tracing = false
		default:
			return fmt.Errorf("unknown argument (%s)", s)
		}
	} else {
		dbg.tracing = !dbg.tracing
	}

	if dbg.tracing {
		dbg.printLine(terminal.StyleFeedback, "tracing on")
	} else {
		dbg.printLine(terminal.StyleFeedback, "tracing off")
	}
	return nil
}

func (dbg *Debugger) cmdHistory(tokens *commandline.Tokens) error {
	n, err := parseCount(tokens, defaultTail)
	if err != nil {
		return err
	}

	e := dbg.history.Entries()
	if len(e) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no history")
		return nil
	}
	if n < len(e) {
		e = e[len(e)-n:]
	}
	for _, h := range e {
		dbg.printEntry(h)
	}
	return nil
}

func (dbg *Debugger) cmdLog(tokens *commandline.Tokens) error {
	n, err := parseCount(tokens, defaultTail)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	logger.Tail(&s, n)
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		if l != "" {
			dbg.printLine(terminal.StyleLog, l)
		}
	}
	return nil
}

func (dbg *Debugger) cmdMemviz(tokens *commandline.Tokens) error {
	filename, ok := tokens.Get()
	if !ok {
		return fmt.Errorf("no file specified")
	}
	if err := dbg.memviz(filename); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("memviz written to %s", filename))
	return nil
}

func (dbg *Debugger) cmdScript(tokens *commandline.Tokens) error {
	filename, ok := tokens.Get()
	if !ok {
		return fmt.Errorf("no file specified")
	}
	return dbg.runScript(filename)
}

func (dbg *Debugger) cmdSymbol(tokens *commandline.Tokens) error {
	s, ok := tokens.Get()
	if !ok {
		w := &strings.Builder{}
		if err := dbg.symbols.ListSymbols(w, symbols.SearchLabel); err != nil {
			return err
		}
		for _, l := range strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n") {
			dbg.printLine(terminal.StyleFeedback, l)
		}
		return nil
	}

	res := dbg.symbols.Search(s, symbols.SearchAll)
	if res == nil {
		if address, err := modalflag.ParseAddress(s); err == nil {
			res = dbg.symbols.ReverseSearch(address, symbols.SearchAll)
		}
	}
	if res == nil {
		return fmt.Errorf("no symbol (%s)", s)
	}

	dbg.printLine(terminal.StyleFeedback, res.String())
	return nil
}

func (dbg *Debugger) cmdQuit(_ *commandline.Tokens) error {
	dbg.setState(govern.Ending, govern.Normal)
	return nil
}
