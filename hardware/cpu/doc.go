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

// Package cpu emulates the CPU found in the DMG. The CPU executes one complete
// instruction at a time.
//
// ExecuteInstruction() fetches the opcode at the program counter, advances
// the program counter past the opcode and calls Execute(). Execute() is
// responsible for reading any operand bytes that follow the opcode and for
// advancing the program counter past them. Execute() can be called directly
// if the program counter is already pointing at the byte after the opcode.
//
// The clock is advanced by the cost of the instruction after the effects of
// the instruction have been applied. Conditional instructions are charged the
// cost of the branch that was actually taken.
//
// Errors from the memory system and undefined opcodes never stop the CPU. The
// error is logged and recorded in the LastResult field. An undefined opcode is
// treated as a one step instruction with no operands.
//
// The flags produced by ADD, ADC, ADD HL,rr and INC rr depend on the
// SimplifiedALU preference. See alu.go for details.
package cpu
