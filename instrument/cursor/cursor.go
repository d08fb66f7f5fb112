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

package cursor

import (
	"math"

	"github.com/jetsetilly/gopherscope/instrument"
)

// FindExtrema returns the indexes of the local peaks and valleys in the
// buffer. A sample is a peak if it is strictly greater than both of its
// neighbours and a valley if it is strictly less than both of them. The
// first and last samples are never extrema.
func FindExtrema(buf instrument.SampleBuffer) (peaks []int, valleys []int) {
	for i := 1; i < len(buf)-1; i++ {
		if buf[i] > buf[i-1] && buf[i] > buf[i+1] {
			peaks = append(peaks, i)
		} else if buf[i] < buf[i-1] && buf[i] < buf[i+1] {
			valleys = append(valleys, i)
		}
	}
	return peaks, valleys
}

// Position returns the normalised horizontal position of the sample index.
func Position(index int, length int) float64 {
	if length < 2 {
		return 0
	}
	return float64(index) / float64(length-1)
}

// Index returns the sample index nearest to the normalised horizontal
// position. The result is clamped to the length of the buffer.
func Index(normX float64, length int) int {
	if length < 1 {
		return 0
	}
	i := int(math.Round(normX * float64(length-1)))
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

// SnapTimeCursor moves the normalised horizontal position to the position
// of the nearest peak or valley, if one is within snapRadius pixels. The
// display is pixelWidth pixels wide. If there is no extremum within range the
// position is returned unchanged.
func SnapTimeCursor(normX float64, buf instrument.SampleBuffer, pixelWidth float64, snapRadius float64) float64 {
	peaks, valleys := FindExtrema(buf)

	best := normX
	bestDist := snapRadius

	try := func(i int) {
		p := Position(i, len(buf))
		d := math.Abs(p-normX) * pixelWidth
		if d <= bestDist {
			best = p
			bestDist = d
		}
	}

	for _, i := range peaks {
		try(i)
	}
	for _, i := range valleys {
		try(i)
	}

	return best
}

// VoltageScale describes the vertical setting of the display.
type VoltageScale struct {
	VoltsPerDivision float64
	Offset           float64

	// number of vertical divisions on the display
	Divisions int
}

// NewVoltageScale returns the VoltageScale for the channel and grid.
func NewVoltageScale(ch instrument.ChannelConfig, grid instrument.Grid) VoltageScale {
	return VoltageScale{
		VoltsPerDivision: ch.VoltsPerDivision,
		Offset:           ch.VerticalOffset,
		Divisions:        grid.VerticalDivisions,
	}
}

func (s VoltageScale) span() float64 {
	return s.VoltsPerDivision * float64(s.Divisions)
}

// Position returns the normalised vertical position of a voltage. Zero volts
// with no offset is at the centre of the display.
func (s VoltageScale) Position(v float64) float64 {
	span := s.span()
	if span <= 0 {
		return 0.5
	}
	return 0.5 - (v+s.Offset)/span
}

// Voltage returns the voltage at a normalised vertical position. It is the
// inverse of Position().
func (s VoltageScale) Voltage(normY float64) float64 {
	return (0.5-normY)*s.span() - s.Offset
}

// SnapVoltageCursor moves the normalised vertical position to the position
// of the voltage of the nearest peak or valley, if one is within snapRadius
// pixels. The display is pixelHeight pixels high. If there is no extremum
// within range the position is returned unchanged.
func SnapVoltageCursor(normY float64, buf instrument.SampleBuffer, pixelHeight float64, snapRadius float64, scale VoltageScale) float64 {
	if scale.span() <= 0 {
		return normY
	}

	peaks, valleys := FindExtrema(buf)

	best := normY
	bestDist := snapRadius

	try := func(i int) {
		p := scale.Position(buf[i])
		d := math.Abs(p-normY) * pixelHeight
		if d <= bestDist {
			best = p
			bestDist = d
		}
	}

	for _, i := range peaks {
		try(i)
	}
	for _, i := range valleys {
		try(i)
	}

	return best
}
