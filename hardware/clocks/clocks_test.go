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

package clocks_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestTick(t *testing.T) {
	var c clocks.Clock

	c.Tick(1)
	test.ExpectEquality(t, c.M, uint64(1))
	test.ExpectEquality(t, c.T, uint64(4))

	c.Tick(3)
	test.ExpectEquality(t, c.M, uint64(4))
	test.ExpectEquality(t, c.T, uint64(16))

	for i := 0; i < 100; i++ {
		m := c.M
		c.Tick(i%6 + 1)
		test.ExpectSuccess(t, c.M > m)
		test.ExpectEquality(t, c.T, c.M*clocks.TicksPerStep)
	}

	c.Reset()
	test.ExpectEquality(t, c.M, uint64(0))
	test.ExpectEquality(t, c.T, uint64(0))
}
