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

package ppu

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/logger"
)

// Sizes of the PPU memory areas.
const (
	VRAMSize = 0x2000
	OAMSize  = 0xa0
	IOSize   = 0x80
)

// PPU implements the memory.VideoBus interface.
type PPU struct {
	perm logger.Permission

	vram [VRAMSize]uint8
	oam  [OAMSize]uint8
	io   [IOSize]uint8

	// number of calls to Step() since the last reset
	Steps uint64
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// permission decides whether diagnostics are logged.
func NewPPU(perm logger.Permission) *PPU {
	return &PPU{perm: perm}
}

func (p *PPU) String() string {
	return fmt.Sprintf("steps=%d", p.Steps)
}

// Reset clears all memory and the step count.
func (p *PPU) Reset() {
	p.vram = [VRAMSize]uint8{}
	p.oam = [OAMSize]uint8{}
	p.io = [IOSize]uint8{}
	p.Steps = 0
}

// ReadVRAM implements the memory.VideoBus interface.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	if int(address) >= VRAMSize {
		logger.Logf(p.perm, "ppu", "vram read out of range (%#04x)", address)
		return 0
	}
	return p.vram[address]
}

// WriteVRAM implements the memory.VideoBus interface.
func (p *PPU) WriteVRAM(address uint16, data uint8) {
	if int(address) >= VRAMSize {
		logger.Logf(p.perm, "ppu", "vram write out of range (%#04x)", address)
		return
	}
	p.vram[address] = data
}

// ReadOAM implements the memory.VideoBus interface.
func (p *PPU) ReadOAM(address uint16) uint8 {
	if int(address) >= OAMSize {
		logger.Logf(p.perm, "ppu", "oam read out of range (%#04x)", address)
		return 0
	}
	return p.oam[address]
}

// WriteOAM implements the memory.VideoBus interface.
func (p *PPU) WriteOAM(address uint16, data uint8) {
	if int(address) >= OAMSize {
		logger.Logf(p.perm, "ppu", "oam write out of range (%#04x)", address)
		return
	}
	p.oam[address] = data
}

// WriteIO implements the memory.VideoBus interface. The I/O registers are
// not implemented. The value is latched and can be inspected with PeekIO().
func (p *PPU) WriteIO(address uint16, data uint8) {
	if int(address) >= IOSize {
		logger.Logf(p.perm, "ppu", "io write out of range (%#04x)", address)
		return
	}
	p.io[address] = data
}

// PeekIO returns the last value written to the I/O register.
func (p *PPU) PeekIO(address uint16) uint8 {
	if int(address) >= IOSize {
		return 0
	}
	return p.io[address]
}

// Step is called once for every instruction executed by the CPU.
func (p *PPU) Step() {
	p.Steps++
}
