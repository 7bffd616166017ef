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

package instructions

import (
	"fmt"
	"strings"
)

// Operator is the operation performed by an instruction.
type Operator int

// List of operators.
const (
	Undefined Operator = iota
	NOP
	LD
	LDI
	LDD
	PUSH
	POP
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	INC
	DEC
	DAA
	CPL
	SCF
	CCF
	RLCA
	RLA
	RRCA
	RRA
	JP
	JR
	CALL
	RET
	RETI
	RST
	HALT
	STOP
	DI
	EI
	Prefix

	// prefixed operators
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var operatorNames = [...]string{
	"??", "NOP", "LD", "LD", "LD", "PUSH", "POP", "ADD", "ADC", "SUB", "SBC",
	"AND", "XOR", "OR", "CP", "INC", "DEC", "DAA", "CPL", "SCF", "CCF", "RLCA",
	"RLA", "RRCA", "RRA", "JP", "JR", "CALL", "RET", "RETI", "RST", "HALT",
	"STOP", "DI", "EI", "PREFIX", "RLC", "RRC", "RL", "RR", "SLA", "SRA",
	"SWAP", "SRL", "BIT", "RES", "SET",
}

func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "??"
}

// Operand describes where the data for an instruction comes from or goes to.
type Operand int

// List of operands.
const (
	None Operand = iota

	// 8-bit registers
	A
	B
	C
	D
	E
	H
	L

	// 16-bit registers
	AF
	BC
	DE
	HL
	SP

	// immediate values following the opcode
	Imm8
	Imm16
	Signed8

	// SP plus a signed immediate value
	SPOffset

	// memory addressed by a register pair or an immediate address
	IndBC
	IndDE
	IndHL
	IndImm16

	// memory in the page 0xff00 to 0xffff
	IndHighImm8
	IndHighC
)

var operandNames = [...]string{
	"", "A", "B", "C", "D", "E", "H", "L", "AF", "BC", "DE", "HL", "SP", "n",
	"nn", "d", "SP+d", "(BC)", "(DE)", "(HL)", "(nn)", "($ff00+n)", "($ff00+C)",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return "?"
}

// Is16Bit returns true if the operand is a 16-bit register or a 16-bit
// immediate value.
func (o Operand) Is16Bit() bool {
	switch o {
	case AF, BC, DE, HL, SP, Imm16, SPOffset:
		return true
	}
	return false
}

// Condition for conditional flow instructions.
type Condition int

// List of conditions.
const (
	Always Condition = iota
	NZ
	Z
	NC
	CY
)

func (c Condition) String() string {
	switch c {
	case NZ:
		return "NZ"
	case Z:
		return "Z"
	case NC:
		return "NC"
	case CY:
		return "C"
	}
	return ""
}

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string
	Operator Operator
	Dst      Operand
	Src      Operand

	// Condition is Always for instructions that are not conditional
	Condition Condition

	// the bit number for BIT, RES and SET instructions
	Bit uint8

	// the target address of RST instructions
	Vector uint16

	// number of bytes including the opcode and the prefix byte
	Bytes int

	// number of machine steps. for conditional instructions Cycles is the
	// cost if the condition held
	Cycles         int
	CyclesNotTaken int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Undefined {
		return fmt.Sprintf("%02x undefined instruction", defn.OpCode)
	}
	prefix := ""
	if defn.Prefixed {
		prefix = "cb "
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d cycles)", prefix, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the cost of the instruction depends on a
// condition.
func (defn Definition) IsConditional() bool {
	return defn.Condition != Always
}

// mnemonic builds the assembler representation of the instruction.
func mnemonic(op Operator, cond Condition, operands ...string) string {
	var args []string
	if cond != Always {
		args = append(args, cond.String())
	}
	for _, o := range operands {
		if o != "" {
			args = append(args, o)
		}
	}
	if len(args) == 0 {
		return op.String()
	}
	return fmt.Sprintf("%s %s", op, strings.Join(args, ","))
}
