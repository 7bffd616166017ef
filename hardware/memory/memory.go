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

package memory

import (
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cpubus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Sentinel error patterns for memory construction.
const (
	InvalidFirmwareSize = "memory: firmware must be %d bytes (not %d)"
	InvalidROMSize      = "memory: rom must be between 1 and %d bytes (not %d)"
)

// Sizes of the memory areas owned by the Memory type.
const (
	FirmwareSize = 0x100
	ROMSize      = 0x8000
	ERAMSize     = 0x2000
	WRAMSize     = 0x2000
	ZRAMSize     = 0x80
)

// VideoBus defines the memory areas owned by the video unit. Addresses are
// offsets into the area rather than the address on the CPU bus.
type VideoBus interface {
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, data uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, data uint8)
	WriteIO(address uint16, data uint8)
}

// Memory is the address space of the DMG. It implements the cpubus.Memory
// interface.
type Memory struct {
	perm logger.Permission

	firmware []uint8
	rom      []uint8
	eram     [ERAMSize]uint8
	wram     [WRAMSize]uint8
	zram     [ZRAMSize]uint8

	video VideoBus

	firmwareActive bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
//
// The firmware must be exactly FirmwareSize bytes or empty. A firmware of
// any other size is an error. An empty firmware is accepted so that a
// cartridge can be run without one. In that case the overlay flag starts
// false, not true, and execution should begin at address 0x0100.
//
// The ROM must not be empty and can be no larger than ROMSize bytes. A ROM
// smaller than ROMSize is not an error. It is padded with zero bytes so that
// small test images can be loaded without a full cartridge dump.
func NewMemory(perm logger.Permission, firmware []uint8, rom []uint8, video VideoBus) (*Memory, error) {
	if len(firmware) != 0 && len(firmware) != FirmwareSize {
		return nil, curated.Errorf(InvalidFirmwareSize, FirmwareSize, len(firmware))
	}
	if len(rom) == 0 || len(rom) > ROMSize {
		return nil, curated.Errorf(InvalidROMSize, ROMSize, len(rom))
	}

	mem := &Memory{
		perm:  perm,
		rom:   make([]uint8, ROMSize),
		video: video,
	}
	copy(mem.rom, rom)

	if len(firmware) > 0 {
		mem.firmware = make([]uint8, FirmwareSize)
		copy(mem.firmware, firmware)
	}

	mem.Reset()

	return mem, nil
}

// Reset is the equivalent of a power cycle. All RAM owned by the Memory type
// is cleared and the firmware overlay is activated (if there is a firmware).
// The video unit is not reset.
func (mem *Memory) Reset() {
	mem.eram = [ERAMSize]uint8{}
	mem.wram = [WRAMSize]uint8{}
	mem.zram = [ZRAMSize]uint8{}
	mem.firmwareActive = len(mem.firmware) > 0
}

// FirmwareActive returns true if the lowest page of memory is mapped to the
// firmware.
func (mem *Memory) FirmwareActive() bool {
	return mem.firmwareActive
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address == memorymap.FirmwareExit && mem.firmwareActive {
		mem.firmwareActive = false
		logger.Logf(mem.perm, "memory", "firmware overlay disabled")
	}
	return mem.read(address)
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.read(address)
}

func (mem *Memory) read(address uint16) (uint8, error) {
	addr, area := memorymap.MapAddress(address, mem.firmwareActive)

	switch area {
	case memorymap.Firmware:
		return mem.firmware[addr], nil
	case memorymap.ROM:
		return mem.rom[addr], nil
	case memorymap.VRAM:
		return mem.video.ReadVRAM(addr), nil
	case memorymap.ERAM:
		return mem.eram[addr], nil
	case memorymap.WRAM:
		return mem.wram[addr], nil
	case memorymap.OAM:
		return mem.video.ReadOAM(addr), nil
	case memorymap.Unusable, memorymap.IO:
		return 0, nil
	case memorymap.ZRAM:
		return mem.zram[addr], nil
	}

	err := curated.Errorf(cpubus.AddressError, address)
	logger.Logf(mem.perm, "memory", "read: %v", err)
	return 0, err
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	return mem.write(address, data, false)
}

// Poke writes the value to the address. Unlike Write(), Poke() will write to
// the ROM and to the firmware.
func (mem *Memory) Poke(address uint16, data uint8) error {
	return mem.write(address, data, true)
}

func (mem *Memory) write(address uint16, data uint8, poke bool) error {
	addr, area := memorymap.MapAddress(address, mem.firmwareActive)

	switch area {
	case memorymap.Firmware:
		if poke {
			mem.firmware[addr] = data
		}
		return nil
	case memorymap.ROM:
		if poke {
			mem.rom[addr] = data
		}
		return nil
	case memorymap.VRAM:
		mem.video.WriteVRAM(addr, data)
		return nil
	case memorymap.ERAM:
		mem.eram[addr] = data
		return nil
	case memorymap.WRAM:
		mem.wram[addr] = data
		return nil
	case memorymap.OAM:
		mem.video.WriteOAM(addr, data)
		return nil
	case memorymap.Unusable:
		return nil
	case memorymap.IO:
		mem.video.WriteIO(addr, data)
		return nil
	case memorymap.ZRAM:
		mem.zram[addr] = data
		return nil
	}

	err := curated.Errorf(cpubus.AddressError, address)
	logger.Logf(mem.perm, "memory", "write: %v", err)
	return err
}

// ReadWord reads a 16-bit little-endian value. The low byte is read from the
// address and the high byte from the address that follows it.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	hi, errHi := mem.Read(address + 1)
	if err == nil {
		err = errHi
	}
	return uint16(hi)<<8 | uint16(lo), err
}

// WriteWord writes a 16-bit value in little-endian order. The low byte is
// written first.
func (mem *Memory) WriteWord(address uint16, data uint16) error {
	err := mem.Write(address, uint8(data))
	errHi := mem.Write(address+1, uint8(data>>8))
	if err == nil {
		err = errHi
	}
	return err
}
