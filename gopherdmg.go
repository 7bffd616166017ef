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
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/clocks"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/macro"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/statsview"
	"github.com/gopherdmg/gopherdmg/version"
	"golang.org/x/term"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch returns the value to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "MAP":
		err = showMap(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// setEcho sets the logger echo. colour is only used if the output is a
// terminal.
func setEcho(output io.Writer) {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output), true)
		return
	}
	logger.SetEcho(output, true)
}

// number of log entries shown when an emulation ends with an error.
const logTailLength = 10

// showLogTail writes the most recent log entries to the output. Nothing is
// written if the log was echoed as the emulation ran.
func showLogTail(output io.Writer, echoed bool) {
	if echoed {
		return
	}
	fmt.Fprintln(output, "* recent log entries:")
	logger.Tail(output, logTailLength)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	firmwareFile := md.AddString("firmware", "", "firmware file to run before the cartridge")
	cycles := md.AddUint64("cycles", 0, "number of M cycles to run for (0 to run until interrupted)")
	macroFile := md.AddString("macro", "", "lua script deciding when the emulation should end")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences to apply to the emulation (key::value; ...)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "NONE", "run emulation through profiler: NONE, CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	// each emulation starts with an empty log
	logger.Clear()

	// set debugging log echo
	if *log {
		setEcho(md.Output)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	firmware, rom, err := loadFiles(md, *firmwareFile)
	if err != nil {
		return err
	}

	stackSize := prefs.SizeCommandLineStack()
	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	hwPrefs, err := preferences.NewPreferences()

	// the stack is restored even if the preferences could not be created
	for prefs.SizeCommandLineStack() > stackSize {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherdmg", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		return err
	}

	dmg, err := hardware.NewDMG(hwPrefs, firmware, rom)
	if err != nil {
		return err
	}

	var mcr *macro.Macro
	if *macroFile != "" {
		mcr, err = macro.NewMacro(dmg, *macroFile)
		if err != nil {
			return err
		}
		defer mcr.Close()
	}

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var performanceFilter int
	continueCheck := func() (govern.State, error) {
		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-intChan:
				fmt.Fprint(md.Output, "\r")
				return govern.Ending, nil
			default:
			}
		}

		if mcr != nil {
			return mcr.Check()
		}

		return govern.Running, nil
	}

	startTime := time.Now()

	err = performance.RunProfiler(prf, "run", func() error {
		if *cycles > 0 {
			return dmg.RunForCycles(*cycles, continueCheck)
		}
		return dmg.Run(continueCheck)
	})
	if err != nil {
		showLogTail(md.Output, *log)
		return err
	}

	elapsed := time.Since(startTime)
	m, t := dmg.ElapsedCycles()

	fmt.Fprintln(md.Output, dmg.CPU)
	fmt.Fprintf(md.Output, "%d M cycles (%d T cycles) in %.3fs", m, t, elapsed.Seconds())
	if elapsed.Seconds() > 0 {
		speed := float64(t) / elapsed.Seconds() / (clocks.DMG * 1000000)
		fmt.Fprintf(md.Output, " (%.2fx)", speed)
	}
	fmt.Fprintln(md.Output)

	// the final instruction failed
	if dmg.CPU.LastResult.Error != "" {
		showLogTail(md.Output, *log)
	}

	return nil
}

// loadFiles returns the contents of the firmware file and the cartridge file
// named in the remaining arguments. The firmware filename can be empty.
func loadFiles(md *modalflag.Modes, firmwareFile string) ([]uint8, []uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	rom, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, nil, err
	}

	var firmware []uint8
	if firmwareFile != "" {
		firmware, err = os.ReadFile(firmwareFile)
		if err != nil {
			return nil, nil, err
		}
	}

	return firmware, rom, nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	firmwareFile := md.AddString("firmware", "", "disassemble with the firmware overlay in place")
	origin := md.AddUint64("origin", 0x0100, "address to start disassembly")
	memtop := md.AddUint64("memtop", 0, "address to end disassembly (0 for end of cartridge data)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	firmware, rom, err := loadFiles(md, *firmwareFile)
	if err != nil {
		return err
	}

	if *origin > 0xffff || *memtop > 0xffff {
		return fmt.Errorf("address out of range for %s mode", md)
	}

	if *memtop == 0 {
		*memtop = uint64(len(rom) - 1)
		if *memtop > uint64(memorymap.MemtopROM) {
			*memtop = uint64(memorymap.MemtopROM)
		}
	}

	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	err = hwPrefs.Diagnostics.Set(false)
	if err != nil {
		return err
	}

	dmg, err := hardware.NewDMG(hwPrefs, firmware, rom)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(dmg.Mem, uint16(*origin), uint16(*memtop))
	if err != nil {
		return err
	}

	dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode, Cycles: *cycles})

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	firmwareFile := md.AddString("firmware", "", "firmware file to run before the cartridge")
	duration := md.AddString("duration", "5s", "length of time to run the emulation for")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: NONE, CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	logger.Clear()

	// set debugging log echo
	if *log {
		setEcho(md.Output)
	} else {
		logger.SetEcho(nil, false)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	firmware, rom, err := loadFiles(md, *firmwareFile)
	if err != nil {
		return err
	}

	dmg, err := hardware.NewDMG(nil, firmware, rom)
	if err != nil {
		return err
	}

	err = performance.Check(md.Output, prf, dmg, *duration)
	if err != nil {
		showLogTail(md.Output, *log)
		return err
	}

	return nil
}

func showMap(md *modalflag.Modes) error {
	md.NewMode()

	firmware := md.AddBool("firmware", true, "show the memory map with the firmware overlay active")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprint(md.Output, memorymap.Summary(*firmware))

	return nil
}
