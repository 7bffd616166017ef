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

// The add8, add16 and inc16 functions implement the simplified flag
// semantics used when the SimplifiedALU preference is true. Each function
// clears all flags before setting the flags it defines:
//
//	add8	Z if the 9-bit sum is zero, H from bit 3, C if the sum exceeds 0xff
//	add16	Z if the 17-bit sum is zero, H from bit 11, C if the sum exceeds 0xffff
//	inc16	Z if the result wraps to zero, C is never set
//
// The zero flag of add8 and add16 is only set when both operands are zero.
// This differs from the hardware, which sets Z for ADD if the 8-bit result
// is zero and leaves Z untouched for ADD HL,rr. The hardware also leaves all
// flags untouched for INC rr.
//
// In simplified mode ADC tests the carry flag before the addition and adds one
// to the result afterwards, without recalculating the flags. If the addition
// of the carry causes an overflow then the flags will be wrong.
//
// When SimplifiedALU is false the adc8 and addHL functions are used, which
// produce the same flags as the hardware.

func (mc *CPU) add8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	mc.Registers.F.Reset()
	mc.Registers.F.Zero = sum == 0
	mc.Registers.F.HalfCarry = (a&0x0f)+(b&0x0f) > 0x0f
	mc.Registers.F.Carry = sum > 0xff
	return uint8(sum)
}

func (mc *CPU) add16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	mc.Registers.F.Reset()
	mc.Registers.F.Zero = sum == 0
	mc.Registers.F.HalfCarry = (a&0x0fff)+(b&0x0fff) > 0x0fff
	mc.Registers.F.Carry = sum > 0xffff
	return uint16(sum)
}

func (mc *CPU) inc16(n uint16) uint16 {
	sum := uint32(n) + 1
	mc.Registers.F.Reset()
	mc.Registers.F.Zero = uint16(sum) == 0
	return uint16(sum)
}

func carryValue(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}

// adc8 adds two values and the carry with the flags set as the hardware does.
func (mc *CPU) adc8(a, b uint8, carry bool) uint8 {
	c := carryValue(carry)
	sum := uint16(a) + uint16(b) + uint16(c)
	mc.Registers.F.Zero = uint8(sum) == 0
	mc.Registers.F.Subtract = false
	mc.Registers.F.HalfCarry = (a&0x0f)+(b&0x0f)+c > 0x0f
	mc.Registers.F.Carry = sum > 0xff
	return uint8(sum)
}

// addHL is ADD HL,rr with the flags set as the hardware does. The zero flag
// is not affected.
func (mc *CPU) addHL(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	mc.Registers.F.Subtract = false
	mc.Registers.F.HalfCarry = (a&0x0fff)+(b&0x0fff) > 0x0fff
	mc.Registers.F.Carry = sum > 0xffff
	return uint16(sum)
}

// sbc8 subtracts b and the carry from a. Used for SUB, SBC and CP.
func (mc *CPU) sbc8(a, b uint8, carry bool) uint8 {
	c := carryValue(carry)
	r := a - b - c
	mc.Registers.F.Zero = r == 0
	mc.Registers.F.Subtract = true
	mc.Registers.F.HalfCarry = a&0x0f < (b&0x0f)+c
	mc.Registers.F.Carry = uint16(a) < uint16(b)+uint16(c)
	return r
}

// addSPOffset adds the signed offset to the stack pointer. The carry flags
// are the result of the unsigned addition of the offset to the low byte of
// SP. Used for ADD SP,d and LD HL,SP+d.
func (mc *CPU) addSPOffset(offset uint8) uint16 {
	sp := mc.Registers.SP
	mc.Registers.F.Zero = false
	mc.Registers.F.Subtract = false
	mc.Registers.F.HalfCarry = (sp&0x0f)+uint16(offset&0x0f) > 0x0f
	mc.Registers.F.Carry = (sp&0xff)+uint16(offset) > 0xff
	return uint16(int(sp) + int(int8(offset)))
}

// logic sets the flags for AND, OR and XOR.
func (mc *CPU) logic(v uint8, halfCarry bool) uint8 {
	mc.Registers.F.Zero = v == 0
	mc.Registers.F.Subtract = false
	mc.Registers.F.HalfCarry = halfCarry
	mc.Registers.F.Carry = false
	return v
}

// the carry flag is not affected by INC and DEC.
func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	mc.Registers.F.Zero = r == 0
	mc.Registers.F.Subtract = false
	mc.Registers.F.HalfCarry = v&0x0f == 0x0f
	return r
}

func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	mc.Registers.F.Zero = r == 0
	mc.Registers.F.Subtract = true
	mc.Registers.F.HalfCarry = v&0x0f == 0x00
	return r
}

// daa adjusts the accumulator to binary coded decimal after an addition or a
// subtraction.
func (mc *CPU) daa() {
	f := &mc.Registers.F
	a := mc.Registers.A

	var adjust uint8
	carry := f.Carry

	if f.Subtract {
		if f.HalfCarry {
			adjust |= 0x06
		}
		if f.Carry {
			adjust |= 0x60
		}
		a -= adjust
	} else {
		if f.HalfCarry || a&0x0f > 0x09 {
			adjust |= 0x06
		}
		if f.Carry || a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		a += adjust
	}

	mc.Registers.A = a
	f.Zero = a == 0
	f.HalfCarry = false
	f.Carry = carry
}

// the rotate and shift functions set the zero flag from the result. RLCA,
// RLA, RRCA and RRA clear the zero flag afterwards.

func (mc *CPU) shifted(r uint8, carry bool) uint8 {
	mc.Registers.F.Zero = r == 0
	mc.Registers.F.Subtract = false
	mc.Registers.F.HalfCarry = false
	mc.Registers.F.Carry = carry
	return r
}

func (mc *CPU) rlc(v uint8) uint8 {
	return mc.shifted(v<<1|v>>7, v&0x80 == 0x80)
}

func (mc *CPU) rrc(v uint8) uint8 {
	return mc.shifted(v>>1|v<<7, v&0x01 == 0x01)
}

func (mc *CPU) rl(v uint8) uint8 {
	return mc.shifted(v<<1|carryValue(mc.Registers.F.Carry), v&0x80 == 0x80)
}

func (mc *CPU) rr(v uint8) uint8 {
	return mc.shifted(v>>1|carryValue(mc.Registers.F.Carry)<<7, v&0x01 == 0x01)
}

func (mc *CPU) sla(v uint8) uint8 {
	return mc.shifted(v<<1, v&0x80 == 0x80)
}

func (mc *CPU) sra(v uint8) uint8 {
	return mc.shifted(v>>1|v&0x80, v&0x01 == 0x01)
}

func (mc *CPU) srl(v uint8) uint8 {
	return mc.shifted(v>>1, v&0x01 == 0x01)
}

func (mc *CPU) swap(v uint8) uint8 {
	return mc.shifted(v<<4|v>>4, false)
}
