// This file is part of Gopherdmg.
//
// Gopherdmg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdmg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdmg.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// read returns the value at the address. memory errors are recorded in
// LastResult.
func (mc *CPU) read(address uint16) uint8 {
	v, err := mc.mem.Read(address)
	if err != nil {
		mc.LastResult.Error = err.Error()
	}
	return v
}

// write the value to the address. memory errors are recorded in LastResult.
func (mc *CPU) write(address uint16, data uint8) {
	if err := mc.mem.Write(address, data); err != nil {
		mc.LastResult.Error = err.Error()
	}
}

// fetch8 reads the byte at the program counter and advances the program
// counter.
func (mc *CPU) fetch8() uint8 {
	v := mc.read(mc.Registers.PC)
	mc.Registers.PC++
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) immediate8() uint8 {
	v := mc.fetch8()
	mc.LastResult.InstructionData = uint16(v)
	return v
}

// immediate16 reads a little-endian value from the instruction stream.
func (mc *CPU) immediate16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.InstructionData = v
	return v
}

func (mc *CPU) push(v uint16) {
	mc.Registers.SP--
	mc.write(mc.Registers.SP, uint8(v>>8))
	mc.Registers.SP--
	mc.write(mc.Registers.SP, uint8(v))
}

func (mc *CPU) pop() uint16 {
	lo := mc.read(mc.Registers.SP)
	mc.Registers.SP++
	hi := mc.read(mc.Registers.SP)
	mc.Registers.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// address returns the effective address of an indirect operand. immediate
// bytes are consumed for the IndImm16 and IndHighImm8 operands.
func (mc *CPU) address(o instructions.Operand) uint16 {
	switch o {
	case instructions.IndBC:
		return mc.Registers.BC()
	case instructions.IndDE:
		return mc.Registers.DE()
	case instructions.IndHL:
		return mc.Registers.HL()
	case instructions.IndImm16:
		return mc.immediate16()
	case instructions.IndHighImm8:
		return 0xff00 | uint16(mc.immediate8())
	case instructions.IndHighC:
		return 0xff00 | uint16(mc.Registers.C)
	}
	panic("cpu: operand is not an indirect operand")
}

// load8 returns the value of an 8-bit operand.
func (mc *CPU) load8(o instructions.Operand) uint8 {
	r := &mc.Registers

	switch o {
	case instructions.A:
		return r.A
	case instructions.B:
		return r.B
	case instructions.C:
		return r.C
	case instructions.D:
		return r.D
	case instructions.E:
		return r.E
	case instructions.H:
		return r.H
	case instructions.L:
		return r.L
	case instructions.Imm8:
		return mc.immediate8()
	}

	return mc.read(mc.address(o))
}

// store8 sets the value of an 8-bit operand.
func (mc *CPU) store8(o instructions.Operand, v uint8) {
	r := &mc.Registers

	switch o {
	case instructions.A:
		r.A = v
	case instructions.B:
		r.B = v
	case instructions.C:
		r.C = v
	case instructions.D:
		r.D = v
	case instructions.E:
		r.E = v
	case instructions.H:
		r.H = v
	case instructions.L:
		r.L = v
	default:
		mc.write(mc.address(o), v)
	}
}

// load16 returns the value of a 16-bit operand.
func (mc *CPU) load16(o instructions.Operand) uint16 {
	r := &mc.Registers

	switch o {
	case instructions.AF:
		return r.AF()
	case instructions.BC:
		return r.BC()
	case instructions.DE:
		return r.DE()
	case instructions.HL:
		return r.HL()
	case instructions.SP:
		return r.SP
	case instructions.Imm16:
		return mc.immediate16()
	}
	panic("cpu: operand is not a 16-bit operand")
}

// store16 sets the value of a 16-bit register operand.
func (mc *CPU) store16(o instructions.Operand, v uint16) {
	r := &mc.Registers

	switch o {
	case instructions.AF:
		r.SetAF(v)
	case instructions.BC:
		r.SetBC(v)
	case instructions.DE:
		r.SetDE(v)
	case instructions.HL:
		r.SetHL(v)
	case instructions.SP:
		r.SP = v
	default:
		panic("cpu: operand is not a 16-bit register")
	}
}
