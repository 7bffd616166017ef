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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and are identified by the pattern
// used to create them, rather than by the formatted message. For example:
//
//	const AddressError = "address error: %#04x"
//
//	err := curated.Errorf(AddressError, 0xfea0)
//
//	if curated.Is(err, AddressError) {
//		...
//	}
//
// Has() looks for the pattern anywhere in the chain of wrapped curated
// errors. Wrapping happens when a curated error is passed as one of the
// values to Errorf(), usually with the %v verb:
//
//	f := curated.Errorf("dmg: %v", err)
//	curated.Has(f, AddressError) // true
//	curated.Is(f, AddressError)  // false
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts of the chain are removed. Parts are separated by the sub-string ": "
// so that "cpu: cpu: halted" is printed as "cpu: halted".
//
// Sentinel patterns should be exported string constants in the package that
// creates them.
package curated
