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

// Package terminal defines the operations required for interaction with the
// scope from the command line.
//
// There are two implementations of the Terminal interface: the easyterm
// Terminal, which puts a real terminal into cbreak mode so that single key
// presses can be read, and the plainterm Terminal, which makes no changes to
// the terminal and is suitable for piped input and output.
package terminal
