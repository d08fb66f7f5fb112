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

// Package logger is the central log for the scope. Log entries are a tag and
// a detail string. Consecutive entries with the same tag and detail are
// collapsed into a single entry with a repeat count.
//
// Log entries are created with the Log() and Logf() functions. The first
// argument is a Permission value, which allows the caller to decide whether
// logging is currently appropriate. Use logger.Allow when logging should
// always happen.
//
// The central logger is limited in the number of entries it keeps. Older
// entries are dropped as new entries arrive.
package logger
