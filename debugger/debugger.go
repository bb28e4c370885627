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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/govern"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/symbols"
	"github.com/jetsetilly/gopher2a03/trace"
)

// size of the trace history kept by the debugger.
const historySize = 100

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	nes  *hardware.NES
	term terminal.Terminal

	state    govern.State
	subState govern.SubState

	breakpoints *breakpoints

	// labels and register names. symbols can be used in place of addresses
	symbols *symbols.Symbols

	// every step is recorded to the history. the tracer prints entries to the
	// terminal if tracing is enabled
	history *trace.History
	tracing bool

	events *terminal.ReadEvents

	// depth of nested scripts
	scriptDepth int
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The NES should already have a cartridge attached.
func NewDebugger(nes *hardware.NES, term terminal.Terminal) (*Debugger, error) {
	if nes == nil {
		return nil, curated.Errorf("debugger: no emulation")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		nes:         nes,
		term:        term,
		state:       govern.Initialising,
		breakpoints: newBreakpoints(),
		symbols:     symbols.NewSymbols(),
		history:     trace.NewHistory(historySize),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	dbg.nes.AttachRecorder(trace.Multi{dbg.history, tracer{dbg: dbg}})

	return dbg, nil
}

// LoadSymbols adds the labels in the named file to the symbols table. See
// the symbols package for the supported file formats.
func (dbg *Debugger) LoadSymbols(filename string) error {
	return dbg.symbols.ReadSymbolsFile(filename)
}

// State returns the current state of the emulation.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The initScript argument is the name of a
// script to run before accepting input from the terminal. An empty string
// indicates that there is no script to run. An error in the script does not
// prevent the debugger from starting.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(commandNames()))

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	dbg.setState(govern.Paused, govern.Normal)
	logger.Log(logger.Allow, "debugger", "started")

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return dbg.inputLoop()
}

// inputLoop reads and executes commands until the emulation is ending.
func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 256)

	for dbg.state != govern.Ending {
		n, err := dbg.term.TermRead(buffer, dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to end the debugging session")
				continue // for loop
			}
			if errors.Is(err, io.EOF) {
				dbg.setState(govern.Ending, govern.Normal)
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(string(buffer[:n])); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (dbg *Debugger) setState(state govern.State, subState govern.SubState) {
	if !govern.StateIntegrity(state, subState) {
		subState = govern.Normal
	}
	dbg.state = state
	dbg.subState = subState
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: fmt.Sprintf("%04X", dbg.nes.CPU.PC.Address()),
		Halted:  dbg.subState != govern.Normal,
	}
}

func (dbg *Debugger) printLine(style terminal.Style, s string) {
	dbg.term.TermPrintLine(style, s)
}

// printEntry prints a trace entry as a single line.
func (dbg *Debugger) printEntry(e trace.Entry) {
	if e.IsInterrupt() {
		dbg.printLine(terminal.StyleCPUStep, fmt.Sprintf("%04X  [%s]", e.PC, e.Interrupt))
		return
	}
	dbg.printLine(terminal.StyleCPUStep, trace.Format(e))
}

// halt is called whenever the emulation stops because of an error.
func (dbg *Debugger) halt(err error) {
	dbg.setState(govern.Paused, govern.PausedAtError)
	dbg.printLine(terminal.StyleError, err.Error())
	logger.Logf(logger.Allow, "debugger", "halted: %v", err)
}

// step the emulation the number of times specified. stepping stops early if
// the PC reaches a breakpoint or if there is an error.
func (dbg *Debugger) step(n int) {
	dbg.setState(govern.Stepping, govern.Normal)

	var e trace.Entry
	var err error

	for i := 0; i < n; i++ {
		e, err = dbg.nes.Step()
		if err != nil {
			dbg.halt(err)
			return
		}

		if i < n-1 {
			if bp, ok := dbg.breakpoints.check(dbg.nes.CPU.PC.Address()); ok {
				dbg.setState(govern.Paused, govern.PausedAtBreakpoint)
				if !dbg.tracing {
					dbg.printEntry(e)
				}
				dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("break on %s", bp))
				return
			}
		}
	}

	dbg.setState(govern.Paused, govern.Normal)

	// the tracer will have printed the entry already
	if !dbg.tracing {
		dbg.printEntry(e)
	}
}

// run the emulation until a breakpoint is reached, an error occurs or the
// user interrupts.
func (dbg *Debugger) run() {
	dbg.setState(govern.Running, govern.Normal)

	// drain any stale interrupt
	select {
	case <-dbg.events.IntEvents:
	default:
	}

	subState := govern.Normal
	performanceFilter := 0

	err := dbg.nes.Run(func() (govern.State, error) {
		if bp, ok := dbg.breakpoints.check(dbg.nes.CPU.PC.Address()); ok {
			subState = govern.PausedAtBreakpoint
			dbg.printLine(terminal.StyleFeedback, fmt.Sprintf("break on %s", bp))
			return govern.Paused, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.events.IntEvents:
				dbg.printLine(terminal.StyleFeedback, "interrupted")
				return govern.Paused, nil
			default:
			}
		}

		return dbg.state, nil
	})

	if err != nil {
		dbg.halt(err)
		return
	}

	dbg.setState(govern.Paused, subState)

	if e := dbg.history.Entries(); len(e) > 0 && !dbg.tracing {
		dbg.printEntry(e[len(e)-1])
	}
}

// tracer implements the trace.Recorder interface and prints every entry to
// the terminal when tracing is enabled.
type tracer struct {
	dbg *Debugger
}

func (t tracer) Record(e trace.Entry) error {
	if t.dbg.tracing {
		t.dbg.printEntry(e)
	}
	return nil
}

// normaliseInput is used to echo input to the terminal.
func normaliseInput(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}
