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

package terminal

import "io"

// Terminal defines the operations required by the interactive scope.
type Terminal interface {
	// Read key presses from the terminal. Implementations should return a
	// key as soon as it is available but are not required to do so.
	io.Reader

	// Print writes the formatted string to the terminal.
	Print(s string, a ...any)

	// Status writes a one line summary of the scope. Interactive terminals
	// overwrite the previous status line. Other terminals write the summary
	// on a new line.
	Status(s string)

	// IsInteractive returns true if key presses are delivered without the
	// user pressing the return key.
	IsInteractive() bool

	// CleanUp returns the terminal to the condition it was in before the
	// Terminal was created.
	CleanUp()
}

// Keys that are not printable characters.
const (
	KeyInterrupt = 3 // end-of-text
	KeyEsc       = 27
)
