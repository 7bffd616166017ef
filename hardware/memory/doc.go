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

// Package memory implements the address space of the DMG. The Memory type
// owns the firmware, the cartridge ROM, working RAM, external RAM and zero
// page RAM. Video RAM and object attribute memory belong to the video unit,
// which is accessed through the VideoBus interface.
//
// Addresses are decoded with the memorymap package. The lowest page of memory
// is overlaid with the firmware until the first time address 0x0100 is read.
// After that the page is mapped to the ROM for the rest of the session.
//
// Read() and Write() never fail in a way that stops the emulation. Writes to
// the ROM and to the firmware are discarded. Reads from the I/O registers and
// from the unusable area return zero.
//
// Peek() and Poke() are intended for debugging and test setup. They have no
// side effects on the firmware overlay and Poke() is able to write to the ROM
// and the firmware.
package memory
