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

// Package cursor helps with the placement of measurement cursors over a
// sample buffer.
//
// Cursor positions are normalised to the display. For time cursors zero is
// the left edge of the display and one is the right edge, with sample index
// i at position i/(n-1) for a buffer of length n. For voltage cursors zero
// is the top edge of the display and one is the bottom edge.
//
// A cursor can be snapped to the nearest peak or valley in the buffer if it
// is within a given number of pixels of it.
package cursor
