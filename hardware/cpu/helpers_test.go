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

package cpu_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/test"
)

// mockMem is a flat 64k address space. the area between 0xfea0 and 0xfeff
// returns errors so that the handling of memory errors can be tested.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func unmapped(address uint16) bool {
	return address >= 0xfea0 && address <= 0xfeff
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if unmapped(address) {
		return 0, curated.Errorf(cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if unmapped(address) {
		return curated.Errorf(cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, address)
}

func newCPU(t *testing.T, simplifiedALU bool) (*cpu.CPU, *mockMem) {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.SimplifiedALU.Set(simplifiedALU))
	mem := newMockMem()
	return cpu.NewCPU(prefs, mem), mem
}

// step executes the next instruction and checks the result for consistency
// with the instruction definition and the clock.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	m := mc.Clock.M
	mc.ExecuteInstruction()
	test.DemandSuccess(t, mc.LastResult.IsValid())
	test.ExpectSuccess(t, mc.Clock.M > m)
	test.ExpectEquality(t, mc.Clock.T, mc.Clock.M*4)
}
