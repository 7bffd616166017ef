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

// Package clocks defines the clock of the DMG console and the constant values
// that describe its speed.
//
// The CPU counts time in machine steps. Each machine step is four ticks of
// the raw clock.
package clocks

// Speed of the raw clock in MHz.
const DMG = 4.194304

// Number of raw clock ticks in one machine step.
const TicksPerStep = 4

// Clock counts the elapsed machine steps (M) and raw clock ticks (T). The two
// counters never decrease and T is always four times M.
type Clock struct {
	M uint64
	T uint64
}

// Tick advances the clock by the number of machine steps.
func (c *Clock) Tick(steps int) {
	c.M += uint64(steps)
	c.T += uint64(steps) * TicksPerStep
}

// Reset both counters to zero.
func (c *Clock) Reset() {
	c.M = 0
	c.T = 0
}
