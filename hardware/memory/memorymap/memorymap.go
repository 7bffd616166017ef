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

package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas in the DMG.
const (
	Undefined Area = iota
	Firmware
	ROM
	VRAM
	ERAM
	WRAM
	OAM
	Unusable
	IO
	ZRAM
)

func (a Area) String() string {
	switch a {
	case Firmware:
		return "Firmware"
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case ERAM:
		return "ERAM"
	case WRAM:
		return "WRAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case ZRAM:
		return "ZRAM"
	}

	return "undefined"
}

// The origin and memory top for each area of memory.
const (
	OriginFirmware = uint16(0x0000)
	MemtopFirmware = uint16(0x00ff)
	OriginROM      = uint16(0x0000)
	MemtopROM      = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginERAM     = uint16(0xa000)
	MemtopERAM     = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginZRAM     = uint16(0xff80)
	MemtopZRAM     = uint16(0xffff)
)

// FirmwareExit is the address that disables the firmware overlay the first
// time it is read.
const FirmwareExit = uint16(0x0100)

// Masks applied to an address to produce the offset into the area.
const (
	MaskVRAM = uint16(0x1fff)
	MaskERAM = uint16(0x1fff)
	MaskWRAM = uint16(0x1fff)
	MaskOAM  = uint16(0x00ff)
	MaskIO   = uint16(0x007f)
	MaskZRAM = uint16(0x007f)
)

// MapAddress translates the address argument to the area of memory and the
// offset into that area. The firmwareActive argument decides whether the
// lowest page of memory is mapped to the firmware or to the ROM.
func MapAddress(address uint16, firmwareActive bool) (uint16, Area) {
	switch {
	case address <= MemtopFirmware && firmwareActive:
		return address, Firmware
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopVRAM:
		return address & MaskVRAM, VRAM
	case address <= MemtopERAM:
		return address & MaskERAM, ERAM
	case address <= MemtopEcho:
		return address & MaskWRAM, WRAM
	case address <= MemtopOAM:
		return address & MaskOAM, OAM
	case address <= MemtopUnusable:
		return address - OriginUnusable, Unusable
	case address <= MemtopIO:
		return address & MaskIO, IO
	case address >= OriginZRAM:
		return address & MaskZRAM, ZRAM
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, firmwareActive bool, area Area) bool {
	_, a := MapAddress(address, firmwareActive)
	return area == a
}
