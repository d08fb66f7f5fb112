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

package instrument

// TimebaseConfig is the horizontal setting of the scope. It is shared by
// both channels.
type TimebaseConfig struct {
	// seconds per horizontal division
	TimePerDivision float64

	// nominal sample rate in Hz. zero means the sample rate is derived from
	// the grid (see EffectiveSampleRate())
	SampleRate float64
}

// Validate returns an InvalidConfiguration error if the timebase cannot be
// used.
func (tb TimebaseConfig) Validate() error {
	if !finite(tb.TimePerDivision) || tb.TimePerDivision <= 0 {
		return invalid("time per division must be positive (%v)", tb.TimePerDivision)
	}
	if !finite(tb.SampleRate) || tb.SampleRate < 0 {
		return invalid("sample rate must not be negative (%v)", tb.SampleRate)
	}
	return nil
}

// Grid is the division layout of the display. The number of points in a
// sample buffer is Divisions * PointsPerDivision.
type Grid struct {
	// horizontal divisions
	Divisions int

	// samples per horizontal division
	PointsPerDivision int

	// vertical divisions. used for converting between volts and screen
	// positions
	VerticalDivisions int
}

// Validate returns an InvalidConfiguration error if the grid cannot be
// used.
func (g Grid) Validate() error {
	if g.Divisions <= 0 {
		return invalid("divisions must be positive (%d)", g.Divisions)
	}
	if g.PointsPerDivision <= 0 {
		return invalid("points per division must be positive (%d)", g.PointsPerDivision)
	}
	if g.VerticalDivisions <= 0 {
		return invalid("vertical divisions must be positive (%d)", g.VerticalDivisions)
	}
	return nil
}

// TotalPoints is the length of a sample buffer.
func (g Grid) TotalPoints() int {
	if g.Divisions <= 0 || g.PointsPerDivision <= 0 {
		return 0
	}
	return g.Divisions * g.PointsPerDivision
}

// CaptureWindow returns the duration in seconds of the visible part of the
// signal.
func (g Grid) CaptureWindow(tb TimebaseConfig) float64 {
	return tb.TimePerDivision * float64(g.Divisions)
}

// TimeStep returns the time in seconds between adjacent samples.
func (g Grid) TimeStep(tb TimebaseConfig) float64 {
	n := g.TotalPoints()
	if n == 0 {
		return 0
	}
	return g.CaptureWindow(tb) / float64(n)
}

// EffectiveSampleRate returns the rate at which samples are taken. If the
// timebase specifies a sample rate that value is returned, otherwise the
// rate is derived from the grid.
func (g Grid) EffectiveSampleRate(tb TimebaseConfig) float64 {
	if tb.SampleRate > 0 {
		return tb.SampleRate
	}
	ts := g.TimeStep(tb)
	if ts <= 0 {
		return 0
	}
	return 1 / ts
}
