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
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
)

// Peeker is the memory interface required by the disassembler. Peek() must
// not have any side effects.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// readOnly satisfies the cpubus.Memory interface. writes are discarded.
type readOnly struct {
	mem Peeker
}

func (ro readOnly) Read(address uint16) (uint8, error) {
	return ro.mem.Peek(address)
}

func (ro readOnly) Write(_ uint16, _ uint8) error {
	return nil
}

// Disassembly is the result of a linear disassembly.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles memory from the origin address to the memtop
// address, inclusive. An instruction that starts before memtop but ends after
// it is included in the disassembly.
func FromMemory(mem Peeker, origin uint16, memtop uint16) (*Disassembly, error) {
	if memtop < origin {
		return nil, curated.Errorf("disassembly: memtop (%#04x) is before origin (%#04x)", memtop, origin)
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	// undefined instructions are expected during disassembly
	err = prefs.Diagnostics.Set(false)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	mc := cpu.NewCPU(prefs, readOnly{mem: mem})

	dsm := &Disassembly{}

	address := int(origin)
	for address <= int(memtop) {
		mc.Reset()
		mc.Registers.PC = uint16(address)
		mc.ExecuteInstruction()

		r := mc.LastResult
		if err := r.IsValid(); err != nil {
			return nil, curated.Errorf("disassembly: %v", err)
		}

		e := Entry{
			Address: r.Address,
			Defn:    r.Defn,
			Data:    r.InstructionData,
		}
		for i := 0; i < r.ByteCount; i++ {
			v, _ := mem.Peek(r.Address + uint16(i))
			e.Bytecode = append(e.Bytecode, v)
		}
		dsm.Entries = append(dsm.Entries, e)

		address += r.ByteCount
	}

	return dsm, nil
}
