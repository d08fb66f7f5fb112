// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and a list of values in the same way as fmt.Errorf().
//
// The pattern is remembered and is used to identify the error later on. The
// Is() function checks the outermost pattern of an error and the Has()
// function checks the entire chain of wrapped curated errors. For example:
//
//	const InvalidConfiguration = "invalid configuration: %v"
//
//	err := curated.Errorf(InvalidConfiguration, "frequency must be positive")
//	err = curated.Errorf("scope: %v", err)
//
//	curated.Is(err, InvalidConfiguration)  // false
//	curated.Has(err, InvalidConfiguration) // true
//
// Patterns used for identification in this way should be exported as
// constant strings from the package that creates them.
//
// The Error() implementation normalises the message by removing adjacent
// duplicate parts of the chain, parts being separated by ": ". This means
// that a function can wrap an error with a "scope: %v" pattern without
// worrying whether the error has already been wrapped in the same way.
package curated
