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

//go:build windows

package easyterm

import (
	"os"

	"github.com/jetsetilly/gopherscope/curated"
	"github.com/jetsetilly/gopherscope/terminal"
)

// Terminal is not available on windows. NewTerminal() always returns an
// error.
type Terminal struct {
	terminal.Terminal
}

// NewTerminal always fails on windows.
func NewTerminal(inputFile *os.File, outputFile *os.File) (*Terminal, error) {
	return nil, curated.Errorf("easyterm: %v", "not supported on windows")
}
