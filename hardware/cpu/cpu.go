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
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
)

// UnimplementedInstruction is the error pattern for an opcode that the CPU
// does not define.
const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"

// CPU implements the processor of the DMG.
type CPU struct {
	prefs *preferences.Preferences

	Registers registers.Set
	Clock     clocks.Clock

	mem          cpubus.Memory
	instructions []*instructions.Definition
	prefixed     []*instructions.Definition

	// the result of the most recent instruction
	LastResult execution.Result

	// interrupt master enable. there is no interrupt controller so this is
	// for information only
	IME bool

	// the CPU has executed a HALT or STOP instruction. requires a Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The preferences argument must not be nil.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	return &CPU{
		prefs:        prefs,
		mem:          mem,
		instructions: instructions.GetDefinitions(),
		prefixed:     instructions.GetPrefixedDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IME=%t M=%d T=%d", mc.Registers, mc.IME, mc.Clock.M, mc.Clock.T)
}

// Reset zeroes the registers and the clock together.
func (mc *CPU) Reset() {
	mc.Registers.Reset()
	mc.Clock.Reset()
	mc.LastResult.Reset()
	mc.IME = false
	mc.Halted = false
}

// LoadPostFirmwareState sets the registers to the values left by the
// firmware. Used when the emulation starts without a firmware image.
func (mc *CPU) LoadPostFirmwareState() {
	mc.Registers.SetAF(0x01b0)
	mc.Registers.SetBC(0x0013)
	mc.Registers.SetDE(0x00d8)
	mc.Registers.SetHL(0x014d)
	mc.Registers.SP = 0xfffe
	mc.Registers.PC = 0x0100
}

// Fetch returns the opcode at the program counter without side effects on
// the CPU.
func (mc *CPU) Fetch() uint8 {
	v, err := mc.mem.Read(mc.Registers.PC)
	if err != nil {
		mc.LastResult.Error = err.Error()
	}
	return v
}

// ExecuteInstruction fetches the opcode at the program counter and executes
// it. If the CPU is halted then the clock is advanced by one step and nothing
// else happens.
//
// A halted step is recorded in LastResult as a final result of one cycle at
// the current program counter, with no instruction definition.
func (mc *CPU) ExecuteInstruction() {
	if mc.Halted {
		mc.LastResult.Reset()
		mc.LastResult.Address = mc.Registers.PC
		mc.Clock.Tick(1)
		mc.LastResult.Cycles = 1
		mc.LastResult.Final = true
		return
	}

	opcode := mc.Fetch()
	mc.Registers.PC++
	mc.Execute(opcode)
}

// Execute the instruction for the opcode. The program counter should be
// pointing at the byte following the opcode.
func (mc *CPU) Execute(opcode uint8) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Registers.PC - 1
	mc.LastResult.ByteCount = 1

	defn := mc.instructions[opcode]
	if defn.Operator == instructions.Prefix {
		defn = mc.prefixed[mc.fetch8()]
	}
	mc.LastResult.Defn = defn

	cycles := defn.Cycles
	if defn.IsConditional() {
		mc.LastResult.BranchSuccess = mc.condition(defn.Condition)
		if !mc.LastResult.BranchSuccess {
			cycles = defn.CyclesNotTaken
		}
	}

	r := &mc.Registers

	switch defn.Operator {
	case instructions.NOP:

	case instructions.LD:
		switch {
		case defn.Dst == instructions.IndImm16 && defn.Src == instructions.SP:
			address := mc.address(defn.Dst)
			mc.write(address, uint8(r.SP))
			mc.write(address+1, uint8(r.SP>>8))
		case defn.Src == instructions.SPOffset:
			r.SetHL(mc.addSPOffset(mc.immediate8()))
		case defn.Dst.Is16Bit():
			mc.store16(defn.Dst, mc.load16(defn.Src))
		default:
			mc.store8(defn.Dst, mc.load8(defn.Src))
		}

	case instructions.LDI:
		mc.store8(defn.Dst, mc.load8(defn.Src))
		if mc.prefs.Live.SimplifiedALU.Load() {
			r.SetHL(mc.inc16(r.HL()))
		} else {
			r.SetHL(r.HL() + 1)
		}

	case instructions.LDD:
		mc.store8(defn.Dst, mc.load8(defn.Src))
		r.SetHL(r.HL() - 1)

	case instructions.PUSH:
		mc.push(mc.load16(defn.Src))

	case instructions.POP:
		mc.store16(defn.Dst, mc.pop())

	case instructions.ADD:
		switch defn.Dst {
		case instructions.A:
			v := mc.load8(defn.Src)
			if mc.prefs.Live.SimplifiedALU.Load() {
				r.A = mc.add8(r.A, v)
			} else {
				r.A = mc.adc8(r.A, v, false)
			}
		case instructions.HL:
			v := mc.load16(defn.Src)
			if mc.prefs.Live.SimplifiedALU.Load() {
				r.SetHL(mc.add16(r.HL(), v))
			} else {
				r.SetHL(mc.addHL(r.HL(), v))
			}
		case instructions.SP:
			r.SP = mc.addSPOffset(mc.immediate8())
		}

	case instructions.ADC:
		v := mc.load8(defn.Src)
		if mc.prefs.Live.SimplifiedALU.Load() {
			// the carry is tested before the addition and added to the
			// result afterwards without recalculating the flags
			carry := r.F.Carry
			r.A = mc.add8(r.A, v)
			if carry {
				r.A++
			}
		} else {
			r.A = mc.adc8(r.A, v, r.F.Carry)
		}

	case instructions.SUB:
		r.A = mc.sbc8(r.A, mc.load8(defn.Src), false)

	case instructions.SBC:
		r.A = mc.sbc8(r.A, mc.load8(defn.Src), r.F.Carry)

	case instructions.AND:
		r.A = mc.logic(r.A&mc.load8(defn.Src), true)

	case instructions.XOR:
		r.A = mc.logic(r.A^mc.load8(defn.Src), false)

	case instructions.OR:
		r.A = mc.logic(r.A|mc.load8(defn.Src), false)

	case instructions.CP:
		mc.sbc8(r.A, mc.load8(defn.Src), false)

	case instructions.INC:
		if defn.Dst.Is16Bit() {
			v := mc.load16(defn.Dst)
			if mc.prefs.Live.SimplifiedALU.Load() {
				mc.store16(defn.Dst, mc.inc16(v))
			} else {
				mc.store16(defn.Dst, v+1)
			}
		} else {
			mc.store8(defn.Dst, mc.inc8(mc.load8(defn.Dst)))
		}

	case instructions.DEC:
		if defn.Dst.Is16Bit() {
			mc.store16(defn.Dst, mc.load16(defn.Dst)-1)
		} else {
			mc.store8(defn.Dst, mc.dec8(mc.load8(defn.Dst)))
		}

	case instructions.DAA:
		mc.daa()

	case instructions.CPL:
		r.A = ^r.A
		r.F.Subtract = true
		r.F.HalfCarry = true

	case instructions.SCF:
		r.F.Subtract = false
		r.F.HalfCarry = false
		r.F.Carry = true

	case instructions.CCF:
		if !mc.prefs.Live.SimplifiedALU.Load() {
			r.F.Subtract = false
			r.F.HalfCarry = false
		}
		r.F.Carry = !r.F.Carry

	case instructions.RLCA:
		r.A = mc.rlc(r.A)
		r.F.Zero = false

	case instructions.RLA:
		r.A = mc.rl(r.A)
		r.F.Zero = false

	case instructions.RRCA:
		r.A = mc.rrc(r.A)
		r.F.Zero = false

	case instructions.RRA:
		r.A = mc.rr(r.A)
		r.F.Zero = false

	case instructions.JP:
		address := mc.load16(defn.Src)
		if mc.LastResult.BranchSuccess || !defn.IsConditional() {
			r.PC = address
		}

	case instructions.JR:
		offset := mc.immediate8()
		if mc.LastResult.BranchSuccess || !defn.IsConditional() {
			r.PC = uint16(int(r.PC) + int(int8(offset)))
		}

	case instructions.CALL:
		address := mc.load16(defn.Src)
		if mc.LastResult.BranchSuccess || !defn.IsConditional() {
			mc.push(r.PC)
			r.PC = address
		}

	case instructions.RET:
		if mc.LastResult.BranchSuccess || !defn.IsConditional() {
			r.PC = mc.pop()
		}

	case instructions.RETI:
		r.PC = mc.pop()
		mc.IME = true

	case instructions.RST:
		mc.push(r.PC)
		r.PC = defn.Vector

	case instructions.HALT:
		mc.Halted = true

	case instructions.STOP:
		// the byte following STOP is ignored
		mc.fetch8()
		mc.Halted = true

	case instructions.DI:
		mc.IME = false

	case instructions.EI:
		mc.IME = true

	case instructions.RLC:
		mc.store8(defn.Dst, mc.rlc(mc.load8(defn.Dst)))

	case instructions.RRC:
		mc.store8(defn.Dst, mc.rrc(mc.load8(defn.Dst)))

	case instructions.RL:
		mc.store8(defn.Dst, mc.rl(mc.load8(defn.Dst)))

	case instructions.RR:
		mc.store8(defn.Dst, mc.rr(mc.load8(defn.Dst)))

	case instructions.SLA:
		mc.store8(defn.Dst, mc.sla(mc.load8(defn.Dst)))

	case instructions.SRA:
		mc.store8(defn.Dst, mc.sra(mc.load8(defn.Dst)))

	case instructions.SWAP:
		mc.store8(defn.Dst, mc.swap(mc.load8(defn.Dst)))

	case instructions.SRL:
		mc.store8(defn.Dst, mc.srl(mc.load8(defn.Dst)))

	case instructions.BIT:
		v := mc.load8(defn.Dst)
		r.F.Zero = v&(0x01<<defn.Bit) == 0
		r.F.Subtract = false
		r.F.HalfCarry = true

	case instructions.RES:
		mc.store8(defn.Dst, mc.load8(defn.Dst)&^(0x01<<defn.Bit))

	case instructions.SET:
		mc.store8(defn.Dst, mc.load8(defn.Dst)|(0x01<<defn.Bit))

	default:
		mc.unimplemented(opcode)
	}

	mc.Clock.Tick(cycles)
	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true
}

func (mc *CPU) unimplemented(opcode uint8) {
	err := curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
	mc.LastResult.Error = err.Error()
	logger.Log(mc.prefs, "cpu", err)
}

// condition returns true if the condition holds for the current flags.
func (mc *CPU) condition(c instructions.Condition) bool {
	switch c {
	case instructions.NZ:
		return !mc.Registers.F.Zero
	case instructions.Z:
		return mc.Registers.F.Zero
	case instructions.NC:
		return !mc.Registers.F.Carry
	case instructions.CY:
		return mc.Registers.F.Carry
	}
	return true
}
