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

package instructions

import "fmt"

// opcodes are decoded with the octal pattern xx yyy zzz. p is the top two
// bits of y and q is the bottom bit.

var r8 = [8]Operand{B, C, D, E, H, L, IndHL, A}
var rp = [4]Operand{BC, DE, HL, SP}
var rp2 = [4]Operand{BC, DE, HL, AF}
var cc = [4]Condition{NZ, Z, NC, CY}
var alu = [8]Operator{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}
var rot = [8]Operator{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}
var accRot = [8]Operator{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}

// the cost of an instruction that touches (HL) rather than a register.
func costHL(o Operand, reg int, hl int) int {
	if o == IndHL {
		return hl
	}
	return reg
}

// GetDefinitions returns the table of instruction definitions for the base
// opcodes. The returned table has exactly 256 entries.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	for i := range defs {
		op := uint8(i)
		x, y, z := op>>6, (op>>3)&0x07, op&0x07
		p, q := y>>1, y&0x01

		d := &Definition{OpCode: op, Bytes: 1, Cycles: 1}
		defs[i] = d

		set := func(o Operator, dst, src Operand, bytes, cycles int) {
			d.Operator = o
			d.Dst = dst
			d.Src = src
			d.Bytes = bytes
			d.Cycles = cycles
			d.Mnemonic = mnemonic(o, Always, dst.String(), src.String())
		}

		conditional := func(o Operator, c Condition, src Operand, bytes, taken, notTaken int) {
			set(o, None, src, bytes, taken)
			d.Condition = c
			d.CyclesNotTaken = notTaken
			d.Mnemonic = mnemonic(o, c, src.String())
		}

		switch x {
		case 0:
			switch z {
			case 0:
				switch y {
				case 0:
					set(NOP, None, None, 1, 1)
				case 1:
					set(LD, IndImm16, SP, 3, 5)
				case 2:
					set(STOP, None, None, 2, 1)
				case 3:
					set(JR, None, Signed8, 2, 3)
				default:
					conditional(JR, cc[y-4], Signed8, 2, 3, 2)
				}
			case 1:
				if q == 0 {
					set(LD, rp[p], Imm16, 3, 3)
				} else {
					set(ADD, HL, rp[p], 1, 2)
				}
			case 2:
				switch p {
				case 0:
					if q == 0 {
						set(LD, IndBC, A, 1, 2)
					} else {
						set(LD, A, IndBC, 1, 2)
					}
				case 1:
					if q == 0 {
						set(LD, IndDE, A, 1, 2)
					} else {
						set(LD, A, IndDE, 1, 2)
					}
				case 2:
					if q == 0 {
						set(LDI, IndHL, A, 1, 2)
						d.Mnemonic = "LD (HL+),A"
					} else {
						set(LDI, A, IndHL, 1, 2)
						d.Mnemonic = "LD A,(HL+)"
					}
				case 3:
					if q == 0 {
						set(LDD, IndHL, A, 1, 2)
						d.Mnemonic = "LD (HL-),A"
					} else {
						set(LDD, A, IndHL, 1, 2)
						d.Mnemonic = "LD A,(HL-)"
					}
				}
			case 3:
				if q == 0 {
					set(INC, rp[p], None, 1, 2)
				} else {
					set(DEC, rp[p], None, 1, 2)
				}
			case 4:
				set(INC, r8[y], None, 1, costHL(r8[y], 1, 3))
			case 5:
				set(DEC, r8[y], None, 1, costHL(r8[y], 1, 3))
			case 6:
				set(LD, r8[y], Imm8, 2, costHL(r8[y], 2, 3))
			case 7:
				set(accRot[y], None, None, 1, 1)
			}

		case 1:
			if op == 0x76 {
				set(HALT, None, None, 1, 1)
			} else {
				cycles := 1
				if r8[y] == IndHL || r8[z] == IndHL {
					cycles = 2
				}
				set(LD, r8[y], r8[z], 1, cycles)
			}

		case 2:
			set(alu[y], A, r8[z], 1, costHL(r8[z], 1, 2))

		case 3:
			switch z {
			case 0:
				switch y {
				case 4:
					set(LD, IndHighImm8, A, 2, 3)
					d.Mnemonic = "LDH (n),A"
				case 5:
					set(ADD, SP, Signed8, 2, 4)
				case 6:
					set(LD, A, IndHighImm8, 2, 3)
					d.Mnemonic = "LDH A,(n)"
				case 7:
					set(LD, HL, SPOffset, 2, 3)
				default:
					conditional(RET, cc[y], None, 1, 5, 2)
				}
			case 1:
				if q == 0 {
					set(POP, rp2[p], None, 1, 3)
				} else {
					switch p {
					case 0:
						set(RET, None, None, 1, 4)
					case 1:
						set(RETI, None, None, 1, 4)
					case 2:
						set(JP, None, HL, 1, 1)
					case 3:
						set(LD, SP, HL, 1, 2)
					}
				}
			case 2:
				switch y {
				case 4:
					set(LD, IndHighC, A, 1, 2)
				case 5:
					set(LD, IndImm16, A, 3, 4)
				case 6:
					set(LD, A, IndHighC, 1, 2)
				case 7:
					set(LD, A, IndImm16, 3, 4)
				default:
					conditional(JP, cc[y], Imm16, 3, 4, 3)
				}
			case 3:
				switch y {
				case 0:
					set(JP, None, Imm16, 3, 4)
				case 1:
					set(Prefix, None, None, 2, 2)
				case 6:
					set(DI, None, None, 1, 1)
				case 7:
					set(EI, None, None, 1, 1)
				}
			case 4:
				if y < 4 {
					conditional(CALL, cc[y], Imm16, 3, 6, 3)
				}
			case 5:
				if q == 0 {
					set(PUSH, None, rp2[p], 1, 4)
				} else if p == 0 {
					set(CALL, None, Imm16, 3, 6)
				}
			case 6:
				set(alu[y], A, Imm8, 2, 2)
			case 7:
				set(RST, None, None, 1, 4)
				d.Vector = uint16(y) * 8
				d.Mnemonic = fmt.Sprintf("RST $%02x", d.Vector)
			}
		}
	}

	return defs
}

// GetPrefixedDefinitions returns the table of instruction definitions for
// the opcodes that follow the 0xcb prefix. The returned table has exactly 256
// entries.
func GetPrefixedDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	for i := range defs {
		op := uint8(i)
		x, y, z := op>>6, (op>>3)&0x07, op&0x07

		d := &Definition{
			OpCode:   op,
			Prefixed: true,
			Dst:      r8[z],
			Bytes:    2,
			Cycles:   costHL(r8[z], 2, 4),
		}

		switch x {
		case 0:
			d.Operator = rot[y]
			d.Mnemonic = mnemonic(d.Operator, Always, d.Dst.String())
		case 1:
			d.Operator = BIT
			d.Bit = y
			d.Cycles = costHL(r8[z], 2, 3)
		case 2:
			d.Operator = RES
			d.Bit = y
		case 3:
			d.Operator = SET
			d.Bit = y
		}

		if x > 0 {
			d.Mnemonic = mnemonic(d.Operator, Always, fmt.Sprintf("%d", y), d.Dst.String())
		}

		defs[i] = d
	}

	return defs
}
