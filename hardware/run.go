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

package hardware

import (
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
)

// The continueCheck() function runs at the end of every CPU instruction so it
// can be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Step the emulation one CPU instruction. The video unit is notified once the
// instruction has completed.
func (dmg *DMG) Step() {
	dmg.CPU.ExecuteInstruction()
	dmg.PPU.Step()
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and the emulation stops when it
// returns govern.Ending or an error. A nil continueCheck will run forever.
func (dmg *DMG) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			dmg.Step()
		default:
			return curated.Errorf("dmg: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the emulation for at least the specified number of M
// cycles. The emulation will always stop on an instruction boundary so the
// number of cycles actually run may be slightly more than requested.
//
// The continueCheck function can be used to stop the emulation early. It can
// be nil.
func (dmg *DMG) RunForCycles(cycles uint64, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	target := dmg.CPU.Clock.M + cycles

	var err error

	state := govern.Running
	for dmg.CPU.Clock.M < target && state != govern.Ending {
		dmg.Step()

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
