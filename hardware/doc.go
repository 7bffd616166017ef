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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The DMG type is the root of the emulation and contains external references
// to all the DMG sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation), or
// it can be stepped one instruction at a time.
//
// There is no interrupt controller, timer, serial port or cartridge banking
// controller. The video unit is a stub that maintains its memory areas and
// counts the number of times it has been stepped.
package hardware
