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

// Package instructions defines the instruction set of the DMG's CPU. There
// are two tables of 256 definitions each: the base table and the table for
// instructions that follow the 0xcb prefix byte.
//
// Both tables are total. Every opcode has a definition, including the opcodes
// that the CPU does not define; those have the Undefined operator.
package instructions
