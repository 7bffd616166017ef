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

package registers

import (
	"strings"
)

// Bit values of the flags in the F register.
const (
	FlagZero      = 0x80
	FlagSubtract  = 0x40
	FlagHalfCarry = 0x20
	FlagCarry     = 0x10
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. It is the F register of the AF register pair.
type StatusRegister struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Value converts the StatusRegister into the 8-bit F register value. The low
// nibble is always zero.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Zero {
		v |= FlagZero
	}
	if sr.Subtract {
		v |= FlagSubtract
	}
	if sr.HalfCarry {
		v |= FlagHalfCarry
	}
	if sr.Carry {
		v |= FlagCarry
	}

	return v
}

// FromValue sets the flags from an 8-bit value (popped from the stack, for
// example). The low nibble of the value is ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Zero = v&FlagZero == FlagZero
	sr.Subtract = v&FlagSubtract == FlagSubtract
	sr.HalfCarry = v&FlagHalfCarry == FlagHalfCarry
	sr.Carry = v&FlagCarry == FlagCarry
}
