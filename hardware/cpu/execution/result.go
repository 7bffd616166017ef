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

package execution

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Result records the state/result of the last executed instruction.
type Result struct {
	// the address at which the instruction began. for prefixed instructions
	// this is the address of the prefix byte
	Address uint16

	// a reference to the instruction definition. for prefixed instructions
	// this is the definition from the prefixed table
	Defn *instructions.Definition

	// the number of bytes read during instruction decode, including the
	// opcode and the prefix byte
	ByteCount int

	// the actual number of machine steps taken by the instruction
	Cycles int

	// whether the condition of a conditional instruction held
	BranchSuccess bool

	// the value of the immediate operand, if any
	InstructionData uint16

	// any error from the memory system or an undefined opcode. these errors
	// are never fatal
	Error string

	// whether this data has been finalised. the other fields of the Result
	// may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}
	if r.Error != "" {
		return fmt.Sprintf("%04x %s [%s]", r.Address, r.Defn.Mnemonic, r.Error)
	}
	return fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)
}
