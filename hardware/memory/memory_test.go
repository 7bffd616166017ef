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

package memory_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/ppu"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/test"
)

// firmware and rom images filled with distinct values so that the overlay
// can be detected.
func images() ([]uint8, []uint8) {
	firmware := make([]uint8, memory.FirmwareSize)
	for i := range firmware {
		firmware[i] = 0xf0
	}
	rom := make([]uint8, memory.ROMSize)
	for i := range rom {
		rom[i] = uint8(i)
	}
	return firmware, rom
}

func newMemory(t *testing.T) (*memory.Memory, *ppu.PPU) {
	t.Helper()
	firmware, rom := images()
	video := ppu.NewPPU(logger.Allow)
	mem, err := memory.NewMemory(logger.Allow, firmware, rom, video)
	test.DemandSuccess(t, err)
	return mem, video
}

func TestConstruction(t *testing.T) {
	firmware, rom := images()
	video := ppu.NewPPU(logger.Allow)

	_, err := memory.NewMemory(logger.Allow, firmware[:0x80], rom, video)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidFirmwareSize))

	_, err = memory.NewMemory(logger.Allow, firmware, nil, video)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidROMSize))

	_, err = memory.NewMemory(logger.Allow, firmware, make([]uint8, memory.ROMSize+1), video)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidROMSize))

	// a small rom is padded with zeroes
	mem, err := memory.NewMemory(logger.Allow, nil, []uint8{0x01, 0x02}, video)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, mem.FirmwareActive())
	v, err := mem.Read(0x0001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x02))
	v, err = mem.Read(0x7fff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))

	// without a firmware the overlay is never active. not even after a reset
	mem.Reset()
	test.ExpectFailure(t, mem.FirmwareActive())
	v, err = mem.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x01))
}

func TestFirmwareOverlay(t *testing.T) {
	mem, _ := newMemory(t)
	test.ExpectSuccess(t, mem.FirmwareActive())

	v, _ := mem.Read(0x0050)
	test.ExpectEquality(t, v, uint8(0xf0))

	// peeking the exit address does not disable the overlay
	v, _ = mem.Peek(0x0100)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectSuccess(t, mem.FirmwareActive())

	v, _ = mem.Read(0x0100)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectFailure(t, mem.FirmwareActive())

	v, _ = mem.Read(0x0050)
	test.ExpectEquality(t, v, uint8(0x50))

	// the overlay is not re-enabled by further reads
	v, _ = mem.Read(0x0000)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectFailure(t, mem.FirmwareActive())

	// a power cycle re-enables the overlay
	mem.Reset()
	test.ExpectSuccess(t, mem.FirmwareActive())
	v, _ = mem.Read(0x0050)
	test.ExpectEquality(t, v, uint8(0xf0))
}

func TestWorkingRAM(t *testing.T) {
	mem, _ := newMemory(t)

	for a := 0xc000; a <= 0xdfff; a++ {
		test.ExpectSuccess(t, mem.Write(uint16(a), uint8(a^0x5a)))
	}
	for a := 0xc000; a <= 0xdfff; a++ {
		v, err := mem.Read(uint16(a))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(a^0x5a), a)
	}
}

func TestEchoRAM(t *testing.T) {
	mem, _ := newMemory(t)

	test.ExpectSuccess(t, mem.Write(0xc001, 0x42))
	v, err := mem.Read(0xe001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	test.ExpectSuccess(t, mem.Write(0xfdff, 0x24))
	v, _ = mem.Read(0xddff)
	test.ExpectEquality(t, v, uint8(0x24))
}

func TestWordAccess(t *testing.T) {
	mem, _ := newMemory(t)

	for _, a := range []uint16{0xc000, 0xa010, 0xff80, 0xdffe} {
		test.ExpectSuccess(t, mem.WriteWord(a, 0xbeef))
		w, err := mem.ReadWord(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, uint16(0xbeef), a)

		lo, _ := mem.Read(a)
		test.ExpectEquality(t, lo, uint8(0xef), a)
		hi, _ := mem.Read(a + 1)
		test.ExpectEquality(t, hi, uint8(0xbe), a)
	}
}

func TestROMWriteProtection(t *testing.T) {
	mem, _ := newMemory(t)

	test.ExpectSuccess(t, mem.Write(0x0150, 0xff))
	v, _ := mem.Read(0x0150)
	test.ExpectEquality(t, v, uint8(0x50))

	test.ExpectSuccess(t, mem.Write(0x0010, 0x00))
	v, _ = mem.Read(0x0010)
	test.ExpectEquality(t, v, uint8(0xf0))

	// poke can write to the rom
	test.ExpectSuccess(t, mem.Poke(0x0150, 0xff))
	v, _ = mem.Peek(0x0150)
	test.ExpectEquality(t, v, uint8(0xff))
}

func TestVideoAreas(t *testing.T) {
	mem, video := newMemory(t)

	test.ExpectSuccess(t, mem.Write(0x8010, 0x11))
	test.ExpectEquality(t, video.ReadVRAM(0x0010), uint8(0x11))
	v, _ := mem.Read(0x8010)
	test.ExpectEquality(t, v, uint8(0x11))

	test.ExpectSuccess(t, mem.Write(0xfe9f, 0x22))
	test.ExpectEquality(t, video.ReadOAM(0x9f), uint8(0x22))
	v, _ = mem.Read(0xfe9f)
	test.ExpectEquality(t, v, uint8(0x22))

	// io writes are routed to the video unit but read back as zero
	test.ExpectSuccess(t, mem.Write(0xff40, 0x91))
	test.ExpectEquality(t, video.PeekIO(0x40), uint8(0x91))
	v, _ = mem.Read(0xff40)
	test.ExpectEquality(t, v, uint8(0x00))

	// the unusable area reads as zero and ignores writes
	test.ExpectSuccess(t, mem.Write(0xfea0, 0x33))
	v, _ = mem.Read(0xfea0)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestEveryAddressIsSafe(t *testing.T) {
	mem, _ := newMemory(t)

	for a := 0; a <= 0xffff; a++ {
		_, err := mem.Read(uint16(a))
		test.ExpectSuccess(t, err, a)
		test.ExpectSuccess(t, mem.Write(uint16(a), 0x01), a)
	}
}

func TestZeroPageRAM(t *testing.T) {
	mem, _ := newMemory(t)

	test.ExpectSuccess(t, mem.Write(0xffff, 0x77))
	v, _ := mem.Read(0xffff)
	test.ExpectEquality(t, v, uint8(0x77))

	mem.Reset()
	v, _ = mem.Read(0xffff)
	test.ExpectEquality(t, v, uint8(0x00))
}
