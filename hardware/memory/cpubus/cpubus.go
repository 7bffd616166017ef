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

// Package cpubus defines the interface between the CPU and the memory
// system.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory implementation maps the read/write address to the correct
// memory area, meaning that the CPU need not care which part of memory it is
// accessing.
//
// Errors returned by Read() and Write() are never fatal. An error matching the
// AddressError pattern means that the read returned zero or that the write was
// discarded.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the error pattern for an address that does not map to any
// area of memory.
const AddressError = "address error: %#04x"
