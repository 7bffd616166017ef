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

package preferences

import (
	"fmt"
	"sync/atomic"

	"github.com/gopherdmg/gopherdmg/prefs"
)

// Preference keys. These are the keys used on the command line.
const (
	KeySimplifiedALU = "hardware.cpu.simplifiedalu"
	KeyDiagnostics   = "hardware.diagnostics"
)

// LivePreferences are updated automatically when the corresponding
// preference is changed. These should be preferred in performance critical
// code.
type LivePreferences struct {
	SimplifiedALU atomic.Bool
	Diagnostics   atomic.Bool
}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	Live LivePreferences

	// the 8-bit and 16-bit add instructions use the simplified flag
	// semantics. see the alu.go file in the cpu package
	SimplifiedALU prefs.Bool

	// hardware diagnostics are written to the log
	Diagnostics prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%s; %s::%s", KeyDiagnostics, &p.Diagnostics, KeySimplifiedALU, &p.SimplifiedALU)
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preference values found on the command line stack are
// applied after the defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.SimplifiedALU.SetHookPost(func(v prefs.Value) error {
		p.Live.SimplifiedALU.Store(v.(bool))
		return nil
	})
	p.Diagnostics.SetHookPost(func(v prefs.Value) error {
		p.Live.Diagnostics.Store(v.(bool))
		return nil
	})

	p.SetDefaults()

	for key, pref := range map[string]prefs.Pref{
		KeySimplifiedALU: &p.SimplifiedALU,
		KeyDiagnostics:   &p.Diagnostics,
	} {
		if ok, v := prefs.GetCommandLinePref(key); ok {
			if err := pref.Set(v); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.SimplifiedALU.Set(true)
	_ = p.Diagnostics.Set(true)
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Live.Diagnostics.Load()
}
