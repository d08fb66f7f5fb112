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

// Package playmode runs the scope interactively from the command line.
//
// The scope is ticked by a scheduler.Clock and the state of the scope is
// summarised on the terminal at regular intervals. Key presses read from the
// terminal change the configuration of the scope. Key presses are applied
// in the same goroutine as the tick so the scope is never accessed
// concurrently.
package playmode
