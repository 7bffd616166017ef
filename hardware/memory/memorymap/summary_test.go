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

package memorymap_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/test"
)

const validMemMap = `0000 -> 00ff	Firmware
0100 -> 7fff	ROM
8000 -> 9fff	VRAM
a000 -> bfff	ERAM
c000 -> fdff	WRAM
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> ffff	ZRAM
`

const validMemMapNoFirmware = `0000 -> 7fff	ROM
8000 -> 9fff	VRAM
a000 -> bfff	ERAM
c000 -> fdff	WRAM
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> ffff	ZRAM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(true), validMemMap)
	test.ExpectEquality(t, memorymap.Summary(false), validMemMapNoFirmware)
}
