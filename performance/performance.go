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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
)

// Check the performance of the emulator. Emulation will run for the
// specified duration and will create a cpu profile, memory profile, a trace
// (or a combination of those) as defined by the Profile argument.
//
// The DMG should be freshly reset.
func Check(output io.Writer, profile Profile, dmg *hardware.DMG, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// buffered so that the timer function never blocks
	timerChan := make(chan bool, 1)

	var startCycles uint64

	runner := func() error {
		_, startCycles = dmg.ElapsedCycles()

		timer := time.AfterFunc(dur, func() {
			timerChan <- true
		})
		defer timer.Stop()

		// only check for end of measurement period every PerformanceBrake
		// instructions
		performanceBrake := 0

		// the end of the measurement period is not an error. the run must
		// end cleanly for the memory profile to be written
		return dmg.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timerChan:
					return govern.Ending, nil
				default:
				}
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	_, endCycles := dmg.ElapsedCycles()
	cycles := endCycles - startCycles

	mhz, accuracy := CalcSpeed(cycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, dur.Seconds(), accuracy)

	return nil
}
