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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of a direct call to flag.Parse() we create a
// Modes instance, give it the arguments and then Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	ticks := md.AddInt("ticks", 600, "number of ticks to run")
//	p, err := md.Parse()
//
// Modes are added with AddSubModes(). The first sub-mode is the default mode
// and is selected if the first argument is not a recognised sub-mode. After
// Parse() the selected mode is returned by Mode():
//
//	md.AddSubModes("RUN", "MEASURE", "PERFORMANCE")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// Flags for the selected mode are then added after a call to NewMode() and
// parsed with another call to Parse(). The Path() function returns the
// series of modes that have been selected, separated by a forward slash.
package modalflag
