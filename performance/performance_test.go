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

package performance_test

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("GPU")
	test.ExpectFailure(t, err)
}

func TestCalcSpeed(t *testing.T) {
	mhz, accuracy := performance.CalcSpeed(uint64(clocks.DMG*1000000), 1.0)
	test.ExpectEquality(t, mhz, clocks.DMG)
	test.ExpectSuccess(t, math.Abs(accuracy-100.0) < 0.0001)

	mhz, _ = performance.CalcSpeed(1000, 0)
	test.ExpectEquality(t, mhz, 0.0)
}

func TestRunProfilerWithoutProfile(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}

func TestCheck(t *testing.T) {
	rom := make([]uint8, 0x0200)
	copy(rom[0x0100:], []uint8{0x18, 0xfe}) // JR -2

	dmg, err := hardware.NewDMG(nil, nil, rom)
	test.DemandSuccess(t, err)

	var s strings.Builder
	test.ExpectSuccess(t, performance.Check(&s, performance.ProfileNone, dmg, "50ms"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "MHz"))

	m, _ := dmg.ElapsedCycles()
	test.ExpectSuccess(t, m > 0)

	test.ExpectFailure(t, performance.Check(&s, performance.ProfileNone, dmg, "soon"))
}

func TestCheckMemoryProfile(t *testing.T) {
	t.Chdir(t.TempDir())

	rom := make([]uint8, 0x0200)
	copy(rom[0x0100:], []uint8{0x18, 0xfe}) // JR -2

	dmg, err := hardware.NewDMG(nil, nil, rom)
	test.DemandSuccess(t, err)

	var s strings.Builder
	test.ExpectSuccess(t, performance.Check(&s, performance.ProfileMem, dmg, "50ms"))

	fi, err := os.Stat("performance_mem.profile")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
}
