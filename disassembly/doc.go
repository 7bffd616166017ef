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

// Package disassembly produces linear disassemblies of DMG memory.
//
// Instructions are decoded by the CPU itself, running over a read-only view
// of memory, so the disassembly will always agree with the emulation about
// the number of bytes and cycles of an instruction.
//
// Linear disassembly decodes one instruction after another, starting at the
// origin address. Data embedded in the program will be disassembled as
// though it were code.
package disassembly
