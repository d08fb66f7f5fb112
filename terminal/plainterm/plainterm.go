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

// Package plainterm implements the Terminal interface for non-interactive
// use. It makes no changes to the terminal and so key presses are only seen
// after the return key is pressed. It is suitable for piped input and for
// testing.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if the file is connected to a real terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Terminal is the most basic implementation of the terminal.Terminal
// interface.
type Terminal struct {
	input  io.Reader
	output io.Writer
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. A nil input is treated as an input that never returns any key
// presses.
func NewTerminal(input io.Reader, output io.Writer) *Terminal {
	if output == nil {
		output = io.Discard
	}
	return &Terminal{
		input:  input,
		output: output,
	}
}

// Read implements the terminal.Terminal interface.
func (pt *Terminal) Read(p []byte) (int, error) {
	if pt.input == nil {
		return 0, io.EOF
	}
	return pt.input.Read(p)
}

// Print implements the terminal.Terminal interface.
func (pt *Terminal) Print(s string, a ...any) {
	io.WriteString(pt.output, fmt.Sprintf(s, a...))
}

// Status implements the terminal.Terminal interface.
func (pt *Terminal) Status(s string) {
	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// IsInteractive implements the terminal.Terminal interface.
func (pt *Terminal) IsInteractive() bool {
	return false
}

// CleanUp implements the terminal.Terminal interface.
func (pt *Terminal) CleanUp() {
}
