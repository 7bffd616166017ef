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

package macro

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/govern"
	"github.com/gopherdmg/gopherdmg/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel error patterns.
const (
	MacroError      = "macro: %s: %v"
	NoCheckFunction = "macro: %s: no check function"
)

const checkFunction = "check"

// Emulation defines the functions the macro needs from the emulation.
type Emulation interface {
	Peek(address uint16) uint8
	Register(name string) (uint16, bool)
	ElapsedCycles() (uint64, uint64)
}

// Macro is a type that allows control of an emulation from a Lua script.
type Macro struct {
	emulation Emulation
	name      string
	state     *lua.LState
	check     lua.LValue
}

// NewMacro loads the Lua script from the named file.
func NewMacro(emulation Emulation, filename string) (*Macro, error) {
	mcr := newMacro(emulation, filename)
	if err := mcr.state.DoFile(filename); err != nil {
		mcr.state.Close()
		return nil, curated.Errorf(MacroError, filename, err)
	}
	if err := mcr.findCheck(); err != nil {
		return nil, err
	}
	return mcr, nil
}

// NewMacroFromString is the same as NewMacro() except that the script is
// supplied as a string. The name is used for error and log messages.
func NewMacroFromString(emulation Emulation, name string, script string) (*Macro, error) {
	mcr := newMacro(emulation, name)
	if err := mcr.state.DoString(script); err != nil {
		mcr.state.Close()
		return nil, curated.Errorf(MacroError, name, err)
	}
	if err := mcr.findCheck(); err != nil {
		return nil, err
	}
	return mcr, nil
}

func newMacro(emulation Emulation, name string) *Macro {
	mcr := &Macro{
		emulation: emulation,
		name:      name,
		state:     lua.NewState(),
	}

	tbl := mcr.state.NewTable()
	mcr.state.SetField(tbl, "peek", mcr.state.NewFunction(mcr.peek))
	mcr.state.SetField(tbl, "reg", mcr.state.NewFunction(mcr.reg))
	mcr.state.SetField(tbl, "log", mcr.state.NewFunction(mcr.log))
	mcr.state.SetGlobal("dmg", tbl)

	return mcr
}

func (mcr *Macro) findCheck() error {
	mcr.check = mcr.state.GetGlobal(checkFunction)
	if mcr.check.Type() != lua.LTFunction {
		mcr.state.Close()
		return curated.Errorf(NoCheckFunction, mcr.name)
	}
	return nil
}

// Close releases the Lua state. The Macro should not be used after Close()
// has been called.
func (mcr *Macro) Close() {
	mcr.state.Close()
}

// Check calls the script's check function. The result is suitable for use as
// the continueCheck argument of the DMG's Run() function.
func (mcr *Macro) Check() (govern.State, error) {
	pc, _ := mcr.emulation.Register("pc")
	m, t := mcr.emulation.ElapsedCycles()

	err := mcr.state.CallByParam(lua.P{
		Fn:      mcr.check,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(pc), lua.LNumber(m), lua.LNumber(t))
	if err != nil {
		return govern.Ending, curated.Errorf(MacroError, mcr.name, err)
	}

	ret := mcr.state.Get(-1)
	mcr.state.Pop(1)

	if lua.LVAsBool(ret) {
		return govern.Running, nil
	}
	return govern.Ending, nil
}

func (mcr *Macro) peek(L *lua.LState) int {
	addr := L.CheckInt(1)
	if addr < 0 || addr > 0xffff {
		L.ArgError(1, fmt.Sprintf("address out of range (%d)", addr))
		return 0
	}
	L.Push(lua.LNumber(mcr.emulation.Peek(uint16(addr))))
	return 1
}

func (mcr *Macro) reg(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := mcr.emulation.Register(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (mcr *Macro) log(L *lua.LState) int {
	logger.Logf(logger.Allow, "macro", "%s: %s", mcr.name, L.CheckString(1))
	return 0
}
