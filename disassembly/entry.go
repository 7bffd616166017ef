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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Entry is a single decoded instruction.
type Entry struct {
	Address  uint16
	Bytecode []uint8
	Defn     *instructions.Definition

	// the immediate value or address that followed the opcode
	Data uint16
}

// Operator returns the instruction with any immediate values filled in.
//
// Undefined instructions are shown as a DB directive.
func (e Entry) Operator() string {
	if e.Defn == nil || e.Defn.Operator == instructions.Undefined {
		if len(e.Bytecode) == 0 {
			return "DB"
		}
		return fmt.Sprintf("DB $%02x", e.Bytecode[0])
	}

	s := e.Defn.Mnemonic

	// the only lower case letters in a mnemonic are placeholders for the
	// immediate values
	switch {
	case strings.Contains(s, "nn"):
		s = strings.Replace(s, "nn", fmt.Sprintf("$%04x", e.Data), 1)
	case strings.Contains(s, "n"):
		s = strings.Replace(s, "n", fmt.Sprintf("$%02x", e.Data), 1)
	case e.Defn.Operator == instructions.JR:
		s = strings.Replace(s, "d", fmt.Sprintf("$%04x", e.target()), 1)
	case strings.Contains(s, "+d"):
		s = strings.Replace(s, "+d", fmt.Sprintf("%+d", int8(e.Data)), 1)
	case strings.Contains(s, "d"):
		s = strings.Replace(s, "d", fmt.Sprintf("%d", int8(e.Data)), 1)
	}

	return s
}

// target is the destination of a relative jump.
func (e Entry) target() uint16 {
	return uint16(int(e.Address) + len(e.Bytecode) + int(int8(e.Data)))
}

// Cycles returns the number of cycles the instruction takes, in M cycles.
// Conditional instructions show both the taken and not-taken values.
func (e Entry) Cycles() string {
	if e.Defn == nil {
		return ""
	}
	if e.Defn.IsConditional() {
		return fmt.Sprintf("%d/%d", e.Defn.Cycles, e.Defn.CyclesNotTaken)
	}
	return fmt.Sprintf("%d", e.Defn.Cycles)
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x %s", e.Address, e.Operator())
}
