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

// Package random is the source of noise for waveform synthesis. It should be
// used in preference to the math/rand package so that noise can be made
// predictable for testing.
//
// A Random instance seeded with ZeroSeed set to true will always produce the
// same sequence of numbers after a call to Reset(). Otherwise the sequence
// is seeded from the base seed, which is initialised from the clock when the
// program starts.
package random
