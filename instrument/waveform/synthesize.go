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

package waveform

import (
	"math"

	"github.com/jetsetilly/gopherscope/instrument"
)

// Noise is the source of the random perturbation added to a waveform.
// Uniform() should return a uniformly distributed value in the range
// -limit to +limit.
type Noise interface {
	Uniform(limit float64) float64
}

// Value returns the raw value of a waveform shape at phase x (radians). The
// result is in the range -1 to +1 before amplitude and offset are applied.
func Value(shape instrument.Shape, x float64) float64 {
	switch shape {
	case instrument.Square:
		if math.Sin(x) >= 0 {
			return 1
		}
		return -1
	case instrument.Triangle:
		return (2 / math.Pi) * math.Asin(math.Sin(x))
	case instrument.Sawtooth:
		return (2 / math.Pi) * math.Atan(math.Tan(x/2))
	}
	return math.Sin(x)
}

// Synthesize creates a sample buffer for the waveform parameters. The
// length of the buffer is divisions * pointsPerDivision and the sample at
// index i is the value of the waveform at time i * timeStep, where phase is
// the phase of the waveform at the left edge of the display.
//
// The noise argument can be nil, in which case no noise is added regardless
// of the NoiseFraction value.
//
// Divisions or pointsPerDivision values of zero or less result in an empty
// buffer. Frequency is clamped to instrument.MinFrequency.
func Synthesize(params instrument.WaveformParameters, tb instrument.TimebaseConfig, divisions int, pointsPerDivision int, phase float64, noise Noise) instrument.SampleBuffer {
	if divisions <= 0 || pointsPerDivision <= 0 {
		return instrument.SampleBuffer{}
	}

	totalPoints := divisions * pointsPerDivision
	timeStep := (tb.TimePerDivision * float64(divisions)) / float64(totalPoints)
	omega := params.AngularFrequency()

	noiseLimit := params.NoiseFraction * params.Amplitude
	if noise == nil {
		noiseLimit = 0
	}

	buf := make(instrument.SampleBuffer, totalPoints)
	for i := range buf {
		t := float64(i) * timeStep
		v := Value(params.Shape, omega*t+phase)*params.Amplitude + params.Offset
		if noiseLimit > 0 {
			v += noise.Uniform(noiseLimit)
		}
		buf[i] = v
	}

	return buf
}

// SynthesizeGrid is a convenience function that calls Synthesize() with the
// dimensions of the grid.
func SynthesizeGrid(params instrument.WaveformParameters, tb instrument.TimebaseConfig, grid instrument.Grid, phase float64, noise Noise) instrument.SampleBuffer {
	return Synthesize(params, tb, grid.Divisions, grid.PointsPerDivision, phase, noise)
}
