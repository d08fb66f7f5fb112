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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectApproximate() functions test values for
// equality and approximate equality. The ExpectSuccess() and ExpectFailure()
// functions test for "success" and "failure", where success is indicated by
// a true boolean or a nil error, and failure by a false boolean or a non-nil
// error.
//
// The Demand*() functions are the same as the Expect*() functions except
// that the test is stopped with t.Fatalf() on failure.
//
// The package also contains io.Writer implementations that are useful for
// capturing and checking output.
package test
