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

// Package prefs facilitates the storage of preferential values. The typed
// values (Bool, Int, Float and String) can be used as live values anywhere
// in the program. Values are stored in an atomic.Value so they are safe to
// read from goroutines other than the one that sets them.
//
// A Disk instance associates a key with a value. The values can then be
// saved to and loaded from a file. Entries in the file have the form:
//
//	key :: value
//
// Saving does not clobber entries in the file that the Disk instance does
// not know about. This means that more than one Disk instance can share the
// same file.
//
// Values can also be set from the command line by pushing a prefs string to
// the command line stack. Values on the top of the stack override those in
// the file when Load() is called. For example:
//
//	prefs.PushCommandLineStack("scope.ch1.freq::2000; scope.trigger.mode::normal")
package prefs
