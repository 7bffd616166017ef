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

// Package ppu is a minimal implementation of the DMG's picture processing
// unit. It stores video RAM, object attribute memory and the values written
// to the I/O registers. It does not render anything.
//
// The memory package accesses the PPU through the memory.VideoBus interface.
// The run loop calls Step() once for every instruction executed by the CPU.
package ppu
