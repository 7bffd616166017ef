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

// Package logger is the central log for the emulation. It is not intended for
// errors that need to be returned to the caller. Rather it is a record of
// events that are of interest but which do not stop the emulation: an
// unimplemented instruction, an access to an unmapped address, etc.
//
// Log entries have a tag and a detail. The tag is usually the name of the
// package making the entry. Consecutive entries that are identical are
// collapsed into a single entry with a repeat count.
//
// Every logging request is accompanied by a Permission. The Allow value
// should be used when the entry should always be made.
package logger
