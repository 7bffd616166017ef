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
	"fmt"
	"strings"
)

// Set is the visible state of the CPU.
type Set struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F StatusRegister

	PC uint16
	SP uint16
}

func (r Set) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x A=%02x F=%s B=%02x C=%02x D=%02x E=%02x H=%02x L=%02x",
		r.PC, r.SP, r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L)
}

// Reset all registers to zero.
func (r *Set) Reset() {
	*r = Set{}
}

func pair(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func split(v uint16) (uint8, uint8) {
	return uint8(v >> 8), uint8(v)
}

// BC returns the value of the BC register pair.
func (r Set) BC() uint16 {
	return pair(r.B, r.C)
}

// SetBC writes the value to the B and C registers.
func (r *Set) SetBC(v uint16) {
	r.B, r.C = split(v)
}

// DE returns the value of the DE register pair.
func (r Set) DE() uint16 {
	return pair(r.D, r.E)
}

// SetDE writes the value to the D and E registers.
func (r *Set) SetDE(v uint16) {
	r.D, r.E = split(v)
}

// HL returns the value of the HL register pair.
func (r Set) HL() uint16 {
	return pair(r.H, r.L)
}

// SetHL writes the value to the H and L registers.
func (r *Set) SetHL(v uint16) {
	r.H, r.L = split(v)
}

// AF returns the value of the AF register pair.
func (r Set) AF() uint16 {
	return pair(r.A, r.F.Value())
}

// SetAF writes the value to the A and F registers. The low nibble of F will
// be zero regardless of the value.
func (r *Set) SetAF(v uint16) {
	var f uint8
	r.A, f = split(v)
	r.F.FromValue(f)
}

// Get returns the named register. Names are case insensitive and can be any
// of the 8-bit registers or register pairs, SP or PC. Returns false if the
// register name is not recognised.
func (r Set) Get(name string) (uint16, bool) {
	switch strings.ToLower(name) {
	case "a":
		return uint16(r.A), true
	case "f":
		return uint16(r.F.Value()), true
	case "b":
		return uint16(r.B), true
	case "c":
		return uint16(r.C), true
	case "d":
		return uint16(r.D), true
	case "e":
		return uint16(r.E), true
	case "h":
		return uint16(r.H), true
	case "l":
		return uint16(r.L), true
	case "af":
		return r.AF(), true
	case "bc":
		return r.BC(), true
	case "de":
		return r.DE(), true
	case "hl":
		return r.HL(), true
	case "sp":
		return r.SP, true
	case "pc":
		return r.PC, true
	}
	return 0, false
}
