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

// Package scheduler provides the repeating tick that drives the scope.
//
// A tick carries a monotonic timestamp, measured from the start of the
// session. The Clock interface abstracts the source of ticks. Limiter is a
// real-time source that produces ticks at a fixed rate. Manual produces ticks
// on demand and is used when the scope must be driven deterministically, for
// example in tests or when running as fast as possible.
//
// Run() is a simple loop that passes the timestamp of every tick to a
// function until either the function returns false or the context is
// cancelled.
package scheduler
