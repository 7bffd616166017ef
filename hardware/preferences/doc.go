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

// Package preferences contains the preference values for the emulated
// hardware.
//
// Values can be supplied on the command line before NewPreferences() is
// called:
//
//	prefs.PushCommandLineStack("hardware.cpu.simplifiedalu::false")
//
// The Preferences type implements the logger.Permission interface. Hardware
// diagnostics are only logged when the Diagnostics preference is true.
package preferences
