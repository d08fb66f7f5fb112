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

// Package waveform synthesises sample buffers for the signal sources of the
// scope.
//
// Synthesize() is a pure function of its arguments, except for the noise
// component which is drawn from the supplied Noise source. With a noise
// fraction of zero the output is bit-for-bit reproducible.
//
// The sawtooth shape is produced by the expression (2/π)·atan(tan(x/2)).
// This is a deliberate choice and the resulting waveform has its
// discontinuities at odd multiples of π.
package waveform
