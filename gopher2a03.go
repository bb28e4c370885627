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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/performance"
	"github.com/jetsetilly/gopher2a03/performance/limiter"
	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/symbols"
	"github.com/jetsetilly/gopher2a03/trace"
	"github.com/jetsetilly/gopher2a03/version"
)

// exit values returned by launch().
const (
	exitSuccess     = 0
	exitFailure     = 1
	exitInvalidROM  = 2
	exitLogNotFound = 3
	exitInvalidPC   = 4
	exitRuntime     = 101
)

// number of entries printed when a verification fails.
const defaultHistory = 10

// number of CPU cycles in one NTSC video frame.
const cyclesPerFrame = clocks.NTSC * 1000000 / clocks.NTSC_FPS

// exitError associates an error with the value that should be returned to
// the operating system.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	return e.err.Error()
}

func exitWith(code int, err error) error {
	return exitError{code: code, err: err}
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. The return value is
// suitable for passing to os.Exit().
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "VERIFY", "DEBUG", "DISASM", "PERFORMANCE")

	showVersion := md.AddBool("version", false, "print version information and exit")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitFailure
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.Version())
		return exitSuccess
	}

	if stats != nil && *stats {
		statsview.Launch(stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdout)

	case "VERIFY":
		err = verify(md, stdout)

	case "DEBUG":
		err = debug(md, stdout)

	case "DISASM":
		err = disasm(md, stdout)

	case "PERFORMANCE":
		err = perform(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		if e, ok := err.(exitError); ok {
			return e.code
		}
		return exitFailure
	}

	return exitSuccess
}

// options common to every mode that executes a cartridge.
type setup struct {
	mapping *string
	origin  *modalflag.Address
	pc      *string
	verbose *bool
}

func addSetup(md *modalflag.Modes) setup {
	return setup{
		mapping: md.AddString("mapping", "AUTO", "force use of cartridge mapping: AUTO, INES, FLAT"),
		origin:  md.AddAddress("origin", "load address of a FLAT cartridge (default C000)"),
		pc:      md.AddString("pc", "", "start execution at this address rather than the reset vector"),
		verbose: md.AddBool("verbose", false, "echo log entries as they are created"),
	}
}

// create the NES and attach the cartridge named by the first remaining
// argument.
func (s setup) nes(md *modalflag.Modes, stdout io.Writer) (*hardware.NES, error) {
	if *s.verbose {
		logger.SetEcho(stdout, false)
	}

	if len(md.RemainingArgs()) == 0 {
		return nil, exitWith(exitFailure, fmt.Errorf("NES cartridge required for %s mode", md))
	}

	// the start address is checked before the cartridge is loaded
	var pc uint16
	if *s.pc != "" {
		var err error
		pc, err = modalflag.ParseAddress(*s.pc)
		if err != nil {
			return nil, exitWith(exitInvalidPC, fmt.Errorf("invalid start address (%s)", *s.pc))
		}
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0), *s.mapping)
	if s.origin.Valid {
		cartload.Origin = s.origin.Value
	}

	nes := hardware.NewNES()
	err := nes.AttachCartridge(&cartload)
	if err != nil {
		return nil, exitWith(exitInvalidROM, err)
	}

	if *s.pc != "" {
		nes.CPU.LoadPC(pc)
	}

	return nes, nil
}

// runtimeFailure prints the state of the CPU alongside the error.
func runtimeFailure(nes *hardware.NES, err error) error {
	return exitWith(exitRuntime, fmt.Errorf("%w\n%s CYC:%d", err, nes.CPU, nes.CPU.Cycles()))
}

func run(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	s := addSetup(md)
	limit := md.AddInt("limit", 0, "stop after this many instructions. zero to run until interrupted")
	until := md.AddAddress("until", "stop when the program counter reaches this address")
	logFile := md.AddString("log", "", "write a Nintendulator style trace to file. '-' for stdout")
	realtime := md.AddBool("realtime", false, "run at the speed of an NTSC console")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	nes, err := s.nes(md, stdout)
	if err != nil {
		return err
	}

	if *logFile != "" {
		var output io.Writer
		if *logFile == "-" {
			output = stdout
		} else {
			f, err := os.Create(*logFile)
			if err != nil {
				return err
			}
			defer f.Close()
			output = f
		}

		w := bufio.NewWriter(output)
		defer w.Flush()
		nes.AttachRecorder(trace.NewWriter(w))
	}

	switch {
	case until.Valid:
		err = nes.RunUntil(until.Value, *limit)
		if curated.Is(err, hardware.UntilNotReached) {
			return exitWith(exitFailure, err)
		}

	case *limit > 0:
		err = nes.RunFor(*limit)

	default:
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		// pace the emulation one video frame at a time
		var lim *limiter.Limiter
		var frameEnd float64
		if *realtime {
			lim = limiter.NewLimiter(clocks.NTSC_FPS)
			defer lim.Stop()
		}

		var n int
		err = nes.Run(func() (govern.State, error) {
			if lim != nil && float64(nes.CPU.Cycles()) >= frameEnd {
				lim.Wait()
				frameEnd += cyclesPerFrame
			}

			n++
			if n%hardware.PerformanceBrake == 0 {
				select {
				case <-intChan:
					return govern.Ending, nil
				default:
				}
			}
			return govern.Running, nil
		})
	}

	if err != nil {
		return runtimeFailure(nes, err)
	}

	// the trace may be going to stdout so the summary is printed after it
	if *logFile == "-" {
		return nil
	}

	fmt.Fprintln(stdout, nes.CPU.String())
	fmt.Fprintf(stdout, "instructions: %d cycles: %d\n", nes.Instructions, nes.CPU.Cycles())

	return nil
}

func verify(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	s := addSetup(md)
	limit := md.AddInt("limit", -1, "number of log lines to compare. zero for the whole log, -1 to stop at the first undocumented opcode")
	history := md.AddInt("history", defaultHistory, "number of instructions to print on failure")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("NES cartridge and reference log required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// the log is read before the cartridge is loaded so a missing log is
	// reported even when the cartridge is also bad
	f, err := os.Open(md.GetArg(1))
	if err != nil {
		return exitWith(exitLogNotFound, err)
	}
	reference, err := trace.ParseReference(f)
	f.Close()
	if err != nil {
		return exitWith(exitFailure, err)
	}

	nes, err := s.nes(md, stdout)
	if err != nil {
		return err
	}

	l := *limit
	if l < 0 {
		l = trace.UndocumentedCap(reference)
		logger.Logf(logger.Allow, "verify", "comparing %d entries before the first undocumented opcode", l)

		// a zero limit to the verifier means the whole log
		if l == 0 {
			fmt.Fprintln(stdout, trace.Result{}.String())
			return nil
		}
	}

	v := trace.NewVerifier(reference, l)
	h := trace.NewHistory(*history)
	nes.AttachRecorder(trace.Multi{h, v})

	for !v.Done() {
		_, err := nes.Step()
		if err != nil {
			// a mismatch is returned by the recorder. it is reported with
			// the result below
			if v.Done() {
				break // for loop
			}
			_ = h.Write(stdout)
			return runtimeFailure(nes, err)
		}
	}

	res := v.Finish()
	if !res.Passed() {
		_ = h.Write(stdout)
		if res.Mismatch.Field != "LENGTH" {
			fmt.Fprintf(stdout, "%s  (expected)\n", trace.Format(res.Mismatch.Reference))
		}
		return exitWith(exitFailure, res.Mismatch)
	}

	fmt.Fprintln(stdout, res.String())

	return nil
}

func debug(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	s := addSetup(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", "", "script to run on debugger start")
	symbolsFile := md.AddString("symbols", "", "symbols file: DASM symbol list or ld65 label file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	nes, err := s.nes(md, stdout)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(stdout, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(nes, term)
	if err != nil {
		return err
	}

	if *symbolsFile != "" {
		err = dbg.LoadSymbols(*symbolsFile)
		if err != nil {
			return err
		}
	}

	return dbg.Start(*initScript)
}

func disasm(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	s := addSetup(md)
	start := md.AddAddress("start", "first address to disassemble (default is the start address of the program)")
	end := md.AddAddress("end", "last address to disassemble (default FFF9)")
	count := md.AddInt("n", 0, "number of instructions to disassemble. overrides -end")
	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle count in disassembly")
	flow := md.AddBool("flow", false, "include flow information in disassembly")
	symbolsFile := md.AddString("symbols", "", "symbols file: DASM symbol list or ld65 label file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	nes, err := s.nes(md, stdout)
	if err != nil {
		return err
	}

	address := nes.CPU.PC.Address()
	if start.Valid {
		address = start.Value
	}

	sym := symbols.NewSymbols()
	if *symbolsFile != "" {
		err = sym.ReadSymbolsFile(*symbolsFile)
		if err != nil {
			return err
		}
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
		FlowInfo: *flow,
		Symbols:  sym,
	}

	var entries []disassembly.Entry
	if *count > 0 {
		entries = disassembly.Range(nes.Mem.Peek, address, *count)
	} else {
		// the vectors at the top of memory are not disassembled by default
		last := uint16(0xfff9)
		if end.Valid {
			last = end.Value
		}
		entries = disassembly.Linear(nes.Mem.Peek, address, last)
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	return disassembly.Write(w, attr, entries)
}

func perform(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	s := addSetup(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "create profiling data: NONE, CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	nes, err := s.nes(md, stdout)
	if err != nil {
		return err
	}

	err = performance.Check(stdout, prf, nes, *duration)
	if err != nil {
		if curated.Is(err, performance.ProfileError) {
			return err
		}
		return runtimeFailure(nes, err)
	}

	return nil
}
