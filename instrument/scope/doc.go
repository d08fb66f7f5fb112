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

// Package scope implements the trigger state machine of the oscilloscope.
//
// The Scope type owns the configuration of both channels, the timebase and
// the trigger, as well as the runtime state that changes from tick to tick.
// The runtime state consists of the phase accumulator of each channel, the
// trigger flags and counters, the frozen buffers (the most recent triggered
// capture) and the published buffers (the buffers currently on display).
//
// The Tick() function should be called once per display frame with a
// monotonic timestamp. The scheduler package provides suitable sources of
// timestamps.
//
// Configuration is changed with the Set*() functions. Invalid configurations
// are rejected with an instrument.InvalidConfiguration error and the current
// configuration remains unchanged.
//
// The Scope type is not safe for concurrent use. The published buffers
// returned by Buffer() must be treated as read-only. Use Snapshot() for a
// copy of the published state that can be handed to another goroutine.
package scope
