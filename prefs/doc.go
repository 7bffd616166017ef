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

// Package prefs facilitates the storage of preference values. The Bool type is
// safe to read and write from different goroutines.
//
// Preference values can be supplied on the command line as a single string of
// key/value pairs:
//
//	"hardware.cpu.simplifiedalu::false; hardware.diagnostics::true"
//
// The string is pushed onto a stack with PushCommandLineStack(). Preference
// groups consume the values they recognise with GetCommandLinePref(). Values
// that nobody consumed are returned by PopCommandLineStack().
package prefs
