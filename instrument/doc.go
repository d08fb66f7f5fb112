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

// Package instrument defines the configuration of the simulated dual channel
// oscilloscope: the waveform produced by each signal source, the vertical
// settings of each channel, the timebase and the trigger.
//
// Configuration values are plain structs. Each has a Validate() function
// that returns a curated error with the InvalidConfiguration pattern if the
// values cannot be used. Configuration should be validated before it reaches
// the synthesis and triggering code so that NaN and Inf values never find
// their way into a sample buffer.
//
// The sub-packages implement the scope itself: waveform synthesis, trigger
// location, the trigger state machine, measurements and cursor snapping.
package instrument
