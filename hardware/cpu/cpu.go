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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/trace"
)

// register values after power-on or reset.
const (
	resetSP     = 0xfd
	resetStatus = 0x24
	resetCycles = 7

	// interrupt service takes the same number of cycles as BRK
	interruptCycles = 7
)

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory

	// dbg is nil if mem does not implement the cpubus.Debugger interface
	dbg cpubus.Debugger

	// total number of cycles since power-on
	cycles uint64

	nmi bool
	irq bool

	recorder trace.Recorder

	// last result. the Final field is false only if the CPU has just been
	// reset and no instruction has been executed
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(resetSP),
		Status: registers.NewStatusRegister(resetStatus),
		acc8:   registers.NewRegister(0, "accumulator"),
	}
	mc.Plumb(mem)
	return mc
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
	mc.dbg, _ = mem.(cpubus.Debugger)
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory bus and recorder with the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// Pending interrupts are discarded.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.Load(resetStatus)
	mc.PC.Load(cpubus.ReadVector(mc.mem, cpubus.Reset))

	mc.cycles = resetCycles
	mc.nmi = false
	mc.irq = false

	logger.Logf(logger.Allow, "cpu", "reset: PC=%s", mc.PC)
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return !mc.LastResult.Final
}

// LoadPC loads the program counter with the address. Used to start a test
// program at a fixed entry point.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// RequestNMI signals a non-maskable interrupt. It will be serviced before the
// next instruction.
func (mc *CPU) RequestNMI() {
	mc.nmi = true
}

// RequestIRQ signals a maskable interrupt. It will be serviced before the
// next instruction that begins with the interrupt disable flag clear.
func (mc *CPU) RequestIRQ() {
	mc.irq = true
}

// ClearIRQ withdraws a pending maskable interrupt.
func (mc *CPU) ClearIRQ() {
	mc.irq = false
}

// NMIPending returns true if an NMI has been requested but not serviced.
func (mc *CPU) NMIPending() bool {
	return mc.nmi
}

// IRQPending returns true if an IRQ has been requested but not serviced.
func (mc *CPU) IRQPending() bool {
	return mc.irq
}

// Cycles returns the number of cycles since power-on.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// AttachRecorder adds a trace recorder to the CPU. Every entry returned by
// Step() is also sent to the recorder. A nil value removes the recorder.
func (mc *CPU) AttachRecorder(r trace.Recorder) {
	mc.recorder = r
}

// Recorder returns the currently attached trace recorder.
func (mc *CPU) Recorder() trace.Recorder {
	return mc.recorder
}

// peek reads memory without side effects if the memory bus allows it.
func (mc *CPU) peek(address uint16) uint8 {
	if mc.dbg != nil {
		return mc.dbg.Peek(address)
	}
	return mc.mem.Read(address)
}

// snapshot creates a trace entry for the instruction at the current PC.
func (mc *CPU) snapshot() trace.Entry {
	e := trace.Entry{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		P:      mc.Status.Value(),
		SP:     mc.SP.Value(),
		Cycles: mc.cycles,
	}

	e.Bytes[0] = mc.peek(e.PC)
	defn := instructions.Decode(e.Bytes[0])
	e.ByteCount = defn.Bytes
	for i := 1; i < defn.Bytes; i++ {
		e.Bytes[i] = mc.peek(e.PC + uint16(i))
	}
	e.Mnemonic = defn.Mnemonic
	e.Undocumented = defn.Undocumented

	// memory annotations are only possible if memory can be read without
	// side effects
	if mc.recorder != nil && mc.dbg != nil {
		e.Disassembly = trace.Disassemble(e, mc.dbg.Peek)
	}

	return e
}

func (mc *CPU) record(e trace.Entry) (trace.Entry, error) {
	if mc.recorder == nil {
		return e, nil
	}
	return e, mc.recorder.Record(e)
}

// Step executes one instruction or services one interrupt. The returned
// entry is also sent to the attached recorder. An error from the recorder is
// returned after the instruction has been executed.
func (mc *CPU) Step() (trace.Entry, error) {
	if mc.nmi {
		mc.nmi = false
		return mc.record(mc.interrupt(execution.NMI))
	}
	if mc.irq && !mc.Status.InterruptDisable() {
		mc.irq = false
		return mc.record(mc.interrupt(execution.IRQ))
	}

	entry := mc.snapshot()

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC()
	defn := instructions.Decode(opcode)
	mc.LastResult.Defn = defn

	if !defn.IsImplemented() {
		// the CPU stays at the start of the instruction
		mc.PC.Load(mc.LastResult.Address)
		mc.LastResult.Final = true
		return entry, curated.Errorf(UnimplementedOpcode, opcode, defn.Mnemonic, mc.LastResult.Address)
	}

	mc.execute(defn)

	mc.LastResult.Cycles = defn.Cycles
	if mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}
	if mc.LastResult.BranchSuccess {
		mc.LastResult.Cycles++
	}
	mc.cycles += uint64(mc.LastResult.Cycles)
	mc.LastResult.Final = true

	return mc.record(entry)
}

// interrupt services an NMI or IRQ. the entry returned describes the state
// of the CPU after the interrupt has been serviced.
func (mc *CPU) interrupt(irq execution.Interrupt) trace.Entry {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = irq

	mc.push16(mc.PC.Address())
	mc.push8(mc.Status.Push(false))
	mc.Status.SetInterruptDisable(true)

	vector := cpubus.IRQ
	if irq == execution.NMI {
		vector = cpubus.NMI
	}
	mc.PC.Load(cpubus.ReadVector(mc.mem, vector))

	mc.LastResult.Cycles = interruptCycles
	mc.LastResult.Final = true
	mc.cycles += interruptCycles

	logger.Logf(logger.Allow, "cpu", "%s: %04X -> %s", irq, mc.LastResult.Address, mc.PC)

	return trace.Entry{
		PC:          mc.PC.Address(),
		A:           mc.A.Value(),
		X:           mc.X.Value(),
		Y:           mc.Y.Value(),
		P:           mc.Status.Value(),
		SP:          mc.SP.Value(),
		Cycles:      mc.cycles,
		Mnemonic:    irq.String(),
		Interrupt:   irq,
		Disassembly: fmt.Sprintf("[%s]", irq),
	}
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Returns false if memory cannot be read without side
// effects.
func (mc *CPU) PredictRTS() (uint16, bool) {
	if mc.dbg == nil {
		return 0, false
	}

	sp := mc.SP
	lo := mc.dbg.Peek(sp.Pull())
	hi := mc.dbg.Peek(sp.Pull())

	return (uint16(hi)<<8 | uint16(lo)) + 1, true
}
