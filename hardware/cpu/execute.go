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
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// execute performs the instruction. the opcode has already been read and the
// PC points to the first operand byte.
//
// The basic process when executing an instruction is this:
//
//  1. resolve the effective address according to the addressing mode
//  2. read the value at that address for Read and RMW instructions
//  3. using the operator as a guide, perform the instruction on the data
//  4. write the result back to memory for RMW instructions
func (mc *CPU) execute(defn *instructions.Definition) {
	address := mc.resolveAddress(defn)

	// value is the operand of the instruction. for RMW instructions the value
	// is changed by the operator and written back to memory
	var value uint8

	switch defn.AddressingMode {
	case instructions.Immediate:
		value = uint8(mc.LastResult.InstructionData)
	case instructions.Accumulator:
		value = mc.A.Value()
	case instructions.Implied, instructions.Relative:
		// no value
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.read8Bit(address)
		}
		if defn.Effect == instructions.RMW {
			// the unmodified value is written back before the modified value
			mc.write8Bit(address, value)
		}
	}

	// the accumulator is used for RMW instructions that don't work on the
	// A register
	mc.acc8.Load(value)

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.SetInterruptDisable(false)

	case instructions.Sei:
		mc.Status.SetInterruptDisable(true)

	case instructions.Clc:
		mc.Status.SetCarry(false)

	case instructions.Sec:
		mc.Status.SetCarry(true)

	case instructions.Cld:
		mc.Status.SetDecimal(false)

	case instructions.Sed:
		mc.Status.SetDecimal(true)

	case instructions.Clv:
		mc.Status.SetOverflow(false)

	case instructions.Pha:
		mc.push8(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull8())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Php:
		mc.push8(mc.Status.Push(true))

	case instructions.Plp:
		mc.Status.Load(mc.pull8())

	case instructions.Txa:
		mc.transfer(&mc.A, mc.X.Value())

	case instructions.Tax:
		mc.transfer(&mc.X, mc.A.Value())

	case instructions.Tay:
		mc.transfer(&mc.Y, mc.A.Value())

	case instructions.Tya:
		mc.transfer(&mc.A, mc.Y.Value())

	case instructions.Tsx:
		mc.transfer(&mc.X, mc.SP.Value())

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lda:
		mc.transfer(&mc.A, value)

	case instructions.Ldx:
		mc.transfer(&mc.X, value)

	case instructions.Ldy:
		mc.transfer(&mc.Y, value)

	case instructions.Sta:
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl:
		mc.rmw(defn, address, func(r *registers.Register) {
			mc.Status.SetCarry(r.ASL())
		})

	case instructions.Lsr:
		mc.rmw(defn, address, func(r *registers.Register) {
			mc.Status.SetCarry(r.LSR())
		})

	case instructions.Rol:
		mc.rmw(defn, address, func(r *registers.Register) {
			mc.Status.SetCarry(r.ROL(mc.Status.Carry()))
		})

	case instructions.Ror:
		mc.rmw(defn, address, func(r *registers.Register) {
			mc.Status.SetCarry(r.ROR(mc.Status.Carry()))
		})

	case instructions.Inc:
		mc.rmw(defn, address, func(r *registers.Register) {
			r.Add(1, false)
		})

	case instructions.Dec:
		mc.rmw(defn, address, func(r *registers.Register) {
			r.Add(0xff, false)
		})

	case instructions.Adc:
		// the decimal flag has no effect on the 2A03
		carry, overflow := mc.A.Add(value, mc.Status.Carry())
		mc.Status.SetCarry(carry)
		mc.Status.SetOverflow(overflow)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sbc:
		carry, overflow := mc.A.Subtract(value, mc.Status.Carry())
		mc.Status.SetCarry(carry)
		mc.Status.SetOverflow(overflow)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.Status.SetZero(mc.A.Value()&value == 0)
		mc.Status.SetOverflow(mc.acc8.IsBitV())
		mc.Status.SetNegative(mc.acc8.IsNegative())

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry(), address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry(), address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero(), address)

	case instructions.Bmi:
		mc.branch(mc.Status.Negative(), address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero(), address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Negative(), address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow(), address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow(), address)

	case instructions.Jsr:
		// the address pushed is that of the last byte of the JSR instruction
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pull16())
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is a two byte instruction as far as the return address is
		// concerned. the second byte is padding
		mc.push16(mc.PC.Address() + 1)
		mc.push8(mc.Status.Push(true))
		mc.Status.SetInterruptDisable(true)
		mc.PC.Load(cpubus.ReadVector(mc.mem, cpubus.IRQ))

	case instructions.Rti:
		mc.Status.Load(mc.pull8())
		mc.PC.Load(mc.pull16())
	}
}

// transfer loads the register with the value and sets the zero and negative
// flags accordingly.
func (mc *CPU) transfer(r *registers.Register, value uint8) {
	r.Load(value)
	mc.Status.SetZN(value)
}

// rmw applies the operation to the accumulator or, for all other addressing
// modes, to the value read from memory. the result is written back to memory.
func (mc *CPU) rmw(defn *instructions.Definition, address uint16, op func(r *registers.Register)) {
	if defn.AddressingMode == instructions.Accumulator {
		op(&mc.A)
		mc.Status.SetZN(mc.A.Value())
		return
	}
	op(&mc.acc8)
	mc.Status.SetZN(mc.acc8.Value())
	mc.write8Bit(address, mc.acc8.Value())
}

// compare sets the flags as if the value had been subtracted from the
// register.
func (mc *CPU) compare(register uint8, value uint8) {
	r := registers.NewRegister(register, "compare")
	carry, _ := r.Subtract(value, true)
	mc.Status.SetCarry(carry)
	mc.Status.SetZN(r.Value())
}

// branch to address if flag is true. an extra cycle is required if the
// branch is taken and another if the target is on a different page to the
// instruction following the branch.
func (mc *CPU) branch(flag bool, address uint16) {
	if !flag {
		return
	}
	mc.LastResult.BranchSuccess = true
	mc.LastResult.PageFault = mc.PC.Address()&0xff00 != address&0xff00
	mc.PC.Load(address)
}
