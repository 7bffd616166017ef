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

package registers_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestPairComposition(t *testing.T) {
	var r registers.Set

	for h := 0; h <= 0xff; h += 0x11 {
		for l := 0; l <= 0xff; l += 0x0f {
			r.H = uint8(h)
			r.L = uint8(l)
			test.ExpectEquality(t, r.HL(), uint16(h<<8|l))

			r.B = uint8(h)
			r.C = uint8(l)
			test.ExpectEquality(t, r.BC(), uint16(h<<8|l))

			r.D = uint8(h)
			r.E = uint8(l)
			test.ExpectEquality(t, r.DE(), uint16(h<<8|l))
		}
	}
}

func TestPairRoundTrip(t *testing.T) {
	var r registers.Set

	for _, v := range []uint16{0x0000, 0x0001, 0x00ff, 0x0100, 0x1234, 0xabcd, 0xff00, 0xffff} {
		r.SetHL(v)
		test.ExpectEquality(t, r.HL(), v)
		test.ExpectEquality(t, r.H, uint8(v>>8))
		test.ExpectEquality(t, r.L, uint8(v))

		r.SetBC(v)
		test.ExpectEquality(t, r.BC(), v)
		test.ExpectEquality(t, r.B, uint8(v>>8))
		test.ExpectEquality(t, r.C, uint8(v))

		r.SetDE(v)
		test.ExpectEquality(t, r.DE(), v)
		test.ExpectEquality(t, r.D, uint8(v>>8))
		test.ExpectEquality(t, r.E, uint8(v))
	}

	// mutating a single register is seen through the pair
	r.SetHL(0x1234)
	r.H = 0x56
	test.ExpectEquality(t, r.HL(), uint16(0x5634))
}

func TestAF(t *testing.T) {
	var r registers.Set

	r.SetAF(0x12ff)
	test.ExpectEquality(t, r.A, uint8(0x12))
	test.ExpectEquality(t, r.F.Value(), uint8(0xf0))
	test.ExpectEquality(t, r.AF(), uint16(0x12f0))
	test.ExpectEquality(t, r.F.String(), "ZNHC")

	r.SetAF(0x0090)
	test.ExpectEquality(t, r.F.String(), "ZnhC")
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
	test.ExpectEquality(t, sr.String(), "znhc")

	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), uint8(registers.FlagCarry))

	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)&0xf0)
	}

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
}

func TestGet(t *testing.T) {
	r := registers.Set{A: 1, B: 2, C: 3, SP: 0xfffe, PC: 0x0100}

	v, ok := r.Get("A")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(1))

	v, ok = r.Get("bc")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x0203))

	v, ok = r.Get("sp")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0xfffe))

	_, ok = r.Get("ix")
	test.ExpectFailure(t, ok)
}

func TestReset(t *testing.T) {
	r := registers.Set{A: 1, H: 2, SP: 3, PC: 4}
	r.F.Zero = true
	r.Reset()
	test.ExpectEquality(t, r, registers.Set{})
}
