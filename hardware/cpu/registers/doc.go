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

// Package registers implements the register set of the DMG's CPU.
//
// The seven 8-bit registers and the status register are stored individually.
// The register pairs BC, DE, HL and AF do not have storage of their own; they
// are composed from the 8-bit registers every time they are read and split
// into the 8-bit registers every time they are written.
//
// The status register is stored as four booleans, which means that the low
// nibble of the F register is always zero.
package registers
