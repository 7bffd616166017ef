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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestMapMode(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch(&s, []string{"MAP"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "0000 -> 00ff\tFirmware\n"))

	s.Reset()
	test.ExpectEquality(t, launch(&s, []string{"MAP", "-firmware=false"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "0000 -> 7fff\tROM\n"))
}

func TestRunMode(t *testing.T) {
	var s strings.Builder

	// no cartridge
	test.ExpectEquality(t, launch(&s, []string{"RUN"}), 20)

	rom := make([]uint8, 0x0200)
	copy(rom[0x0100:], []uint8{0x18, 0xfe}) // JR -2
	filename := filepath.Join(t.TempDir(), "loop.gb")
	test.DemandSuccess(t, os.WriteFile(filename, rom, 0o644))

	s.Reset()
	test.ExpectEquality(t, launch(&s, []string{"RUN", "-cycles", "30", filename}), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "30 M cycles (120 T cycles)"))

	// RUN is the default mode
	s.Reset()
	test.ExpectEquality(t, launch(&s, []string{"-cycles", "3", filename}), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "3 M cycles"))

	// the macro ends the emulation before the cycle count is reached
	script := filepath.Join(t.TempDir(), "stop.lua")
	test.DemandSuccess(t, os.WriteFile(script, []byte("function check(pc, m, t) return m < 9 end"), 0o644))

	s.Reset()
	test.ExpectEquality(t, launch(&s, []string{"RUN", "-cycles", "30", "-macro", script, filename}), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "9 M cycles (36 T cycles)"))
}

func TestRunModeLogTail(t *testing.T) {
	rom := make([]uint8, 0x0200)
	rom[0x0100] = 0xd3 // undefined opcode
	filename := filepath.Join(t.TempDir(), "undefined.gb")
	test.DemandSuccess(t, os.WriteFile(filename, rom, 0o644))

	var s strings.Builder
	test.ExpectEquality(t, launch(&s, []string{"RUN", "-cycles", "1", filename}), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "* recent log entries:\n"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "cpu: unimplemented instruction (0xd3) at (0x0100)"))

	// a clean run does not show the log
	rom[0x0100] = 0x00
	test.DemandSuccess(t, os.WriteFile(filename, rom, 0o644))

	s.Reset()
	test.ExpectEquality(t, launch(&s, []string{"RUN", "-cycles", "1", filename}), 0)
	test.ExpectFailure(t, strings.Contains(s.String(), "recent log entries"))
}

func TestRunModePreferences(t *testing.T) {
	rom := make([]uint8, 0x0200)
	filename := filepath.Join(t.TempDir(), "nop.gb")
	test.DemandSuccess(t, os.WriteFile(filename, rom, 0o644))

	t.Cleanup(func() { logger.SetEcho(nil, false) })

	var s strings.Builder
	test.ExpectEquality(t, launch(&s, []string{"RUN", "-cycles", "1", "-log", "-prefs", "hardware.diagnostics::true; other::1", filename}), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "gopherdmg: unused preferences: other::1"))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestDisasmMode(t *testing.T) {
	rom := make([]uint8, 0x0200)
	copy(rom[0x0100:], []uint8{0x18, 0xfe}) // JR -2
	filename := filepath.Join(t.TempDir(), "loop.gb")
	test.DemandSuccess(t, os.WriteFile(filename, rom, 0o644))

	var s strings.Builder
	test.ExpectEquality(t, launch(&s, []string{"DISASM", "-memtop", "0x0101", filename}), 0)
	test.ExpectEquality(t, s.String(), "0100 JR $0100\n")

	s.Reset()
	test.ExpectEquality(t, launch(&s, []string{"DISASM", "-memtop", "0x10000", filename}), 20)
}

func TestVersionMode(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, launch(&s, []string{"VERSION"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "Gopherdmg"))
}
