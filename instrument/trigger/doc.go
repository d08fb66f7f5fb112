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

// Package trigger locates trigger events in the signal of a channel.
//
// The result of LocateTimeOffset() is the time, in seconds, by which the
// capture window must be moved so that the trigger event sits at the left
// edge of the display. Multiplying the offset by the angular frequency of a
// waveform gives the phase adjustment required for that waveform.
//
// Sine waves are handled analytically. Other shapes are handled by
// synthesising a test buffer and searching it for the first crossing of the
// trigger level.
package trigger
