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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Every address in the 16-bit address space belongs to exactly one area. The
// MapAddress() function returns the area and the offset of the address into
// that area. The only state that affects the translation is whether the
// firmware overlay is active.
//
// The Summary() function produces a table of the memory map:
//
//	0000 -> 00ff	Firmware
//	0100 -> 7fff	ROM
//	8000 -> 9fff	VRAM
//	a000 -> bfff	ERAM
//	c000 -> fdff	WRAM
//	fe00 -> fe9f	OAM
//	fea0 -> feff	Unusable
//	ff00 -> ff7f	IO
//	ff80 -> ffff	ZRAM
//
// Addresses between 0xe000 and 0xfdff are a mirror of working RAM.
package memorymap
