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

// Add8 exposes the add8 function for testing.
func (mc *CPU) Add8(a, b uint8) uint8 {
	return mc.add8(a, b)
}

// Add16 exposes the add16 function for testing.
func (mc *CPU) Add16(a, b uint16) uint16 {
	return mc.add16(a, b)
}

// Inc16 exposes the inc16 function for testing.
func (mc *CPU) Inc16(n uint16) uint16 {
	return mc.inc16(n)
}
