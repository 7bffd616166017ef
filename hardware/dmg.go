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

package hardware

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
)

// DMG struct is the main container for the emulated components of the DMG.
type DMG struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory
	PPU *ppu.PPU
}

// NewDMG creates a new DMG and everything associated with the hardware. The
// firmware can be empty, in which case the CPU starts in the state the
// firmware would have left it.
//
// If prefs is nil then a new instance of the hardware preferences is created.
func NewDMG(prefs *preferences.Preferences, firmware []uint8, rom []uint8) (*DMG, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	dmg := &DMG{Prefs: prefs}

	dmg.PPU = ppu.NewPPU(prefs)

	dmg.Mem, err = memory.NewMemory(prefs, firmware, rom, dmg.PPU)
	if err != nil {
		return nil, err
	}

	dmg.CPU = cpu.NewCPU(prefs, dmg.Mem)

	dmg.Reset()

	return dmg, nil
}

func (dmg *DMG) String() string {
	return fmt.Sprintf("%s firmware=%t", dmg.CPU, dmg.Mem.FirmwareActive())
}

// Reset the emulation to the power-on state. If there is no firmware the CPU
// registers are set to the values the firmware leaves behind.
func (dmg *DMG) Reset() {
	dmg.CPU.Reset()
	dmg.Mem.Reset()
	dmg.PPU.Reset()

	if !dmg.Mem.FirmwareActive() {
		dmg.CPU.LoadPostFirmwareState()
		logger.Log(dmg.Prefs, "dmg", "no firmware: starting at cartridge entry point")
	}
}

// ElapsedCycles returns the number of M and T cycles since the last reset.
func (dmg *DMG) ElapsedCycles() (uint64, uint64) {
	return dmg.CPU.Clock.M, dmg.CPU.Clock.T
}

// Peek returns the value at the address without side effects. Unmapped
// addresses read as zero.
func (dmg *DMG) Peek(address uint16) uint8 {
	v, _ := dmg.Mem.Peek(address)
	return v
}

// Register returns the value of the named CPU register or register pair.
func (dmg *DMG) Register(name string) (uint16, bool) {
	return dmg.CPU.Registers.Get(name)
}
