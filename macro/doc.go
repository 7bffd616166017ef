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

// Package macro runs Lua scripts that control how long an emulation runs.
//
// A macro script must define a global function called check. The function is
// called before every instruction with the current program counter and the
// elapsed machine and raw cycle counts. The emulation continues for as long
// as the function returns true.
//
//	function check(pc, m, t)
//		return pc ~= 0x0100
//	end
//
// The script has access to a table called dmg:
//
//	dmg.peek(addr)   returns the byte at the address without side effects
//	dmg.reg(name)    returns the value of a register (a, f, b, c, d, e, h, l,
//	                 af, bc, de, hl, sp, pc)
//	dmg.log(msg)     adds an entry to the central log with the macro tag
//
// Any error raised by the script stops the emulation and is returned to the
// caller of the run loop.
package macro
