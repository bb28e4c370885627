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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/test"
	"github.com/jetsetilly/gopher2a03/trace"
)

type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

// point the reset, NMI and IRQ vectors at the addresses.
func (mem *mockMem) putVectors(reset, nmi, irq uint16) {
	mem.putInstructions(0xfffa, uint8(nmi), uint8(nmi>>8), uint8(reset), uint8(reset>>8), uint8(irq), uint8(irq>>8))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	mem.internal = [0x10000]uint8{}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Poke(address uint16, data uint8) {
	mem.internal[address] = data
}

// loggingMem records the address of every write in order.
type loggingMem struct {
	mockMem
	writes []uint16
}

func (mem *loggingMem) Write(address uint16, data uint8) {
	mem.writes = append(mem.writes, address)
	mem.mockMem.Write(address, data)
}

// newSession creates a CPU with the reset vector pointing to origin.
func newSession(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.putVectors(origin, 0x8000, 0x9000)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) trace.Entry {
	t.Helper()
	e, err := mc.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return e
}

// steps executes n instructions and returns the number of cycles taken.
func steps(t *testing.T, mc *cpu.CPU, n int) int {
	t.Helper()
	c := mc.Cycles()
	for i := 0; i < n; i++ {
		step(t, mc)
	}
	return int(mc.Cycles() - c)
}
