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

package trigger

import (
	"math"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/waveform"
)

// LocateTimeOffset returns the time offset of the next trigger event for the
// channel, given the current phase of its waveform. The boolean result is
// false if no trigger event can be found.
//
// The channel argument should be the channel named by the Source field of
// the trigger configuration.
func LocateTimeOffset(ch instrument.ChannelConfig, tc instrument.TriggerConfig, tb instrument.TimebaseConfig, grid instrument.Grid, phase float64) (float64, bool) {
	if ch.Waveform.Shape == instrument.Sine {
		return locateSine(ch.Waveform, tc, phase)
	}
	return locateNumerical(ch.Waveform, tc, tb, grid, phase)
}

// NormalisePhase adjusts a phase value so that it is in the range -π to +π.
// The lower bound is exclusive.
func NormalisePhase(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}

	// bring large values into range quickly before making the final
	// adjustments
	if math.Abs(p) > 4*math.Pi {
		p = math.Mod(p, 2*math.Pi)
	}
	for p > math.Pi {
		p -= 2 * math.Pi
	}
	for p <= -math.Pi {
		p += 2 * math.Pi
	}
	return p
}

// locateSine finds the trigger phase of a sine wave with the inverse sine
// function. this is exact and does not depend on the sample rate.
func locateSine(p instrument.WaveformParameters, tc instrument.TriggerConfig, phase float64) (float64, bool) {
	amplitude := math.Max(p.Amplitude, instrument.MinAmplitude)
	level := (tc.Level - p.Offset) / amplitude

	// the trigger level is outside the range of the signal
	if level < -1 || level > 1 {
		return 0, false
	}

	triggerPhase := math.Asin(level)
	if tc.Edge == instrument.Falling {
		triggerPhase = math.Pi - triggerPhase
	}

	cyclePhase := math.Mod(phase, 2*math.Pi)
	offset := NormalisePhase(triggerPhase - cyclePhase)

	return offset / p.AngularFrequency(), true
}

// locateNumerical searches a synthesised buffer for the first crossing of
// the trigger level. the entire buffer is searched so that low frequency
// signals, where the crossing may be towards the end of the buffer, are
// still triggered.
//
// the test buffer is synthesised without noise.
func locateNumerical(p instrument.WaveformParameters, tc instrument.TriggerConfig, tb instrument.TimebaseConfig, grid instrument.Grid, phase float64) (float64, bool) {
	buf := waveform.SynthesizeGrid(p, tb, grid, phase, nil)

	i, ok := FindCrossing(buf, tc.Level, tc.Edge)
	if !ok {
		return 0, false
	}

	return float64(i) * grid.TimeStep(tb), true
}

// FindCrossing returns the index of the first sample that completes a
// crossing of the level in the direction of the edge. For a rising edge a
// crossing is a sample at or above the level preceded by a sample below it.
// For a falling edge a crossing is a sample at or below the level preceded
// by a sample above it.
func FindCrossing(buf instrument.SampleBuffer, level float64, edge instrument.Edge) (int, bool) {
	for i := 1; i < len(buf); i++ {
		prev := buf[i-1]
		curr := buf[i]
		switch edge {
		case instrument.Rising:
			if prev < level && level <= curr {
				return i, true
			}
		case instrument.Falling:
			if prev > level && level >= curr {
				return i, true
			}
		}
	}
	return 0, false
}
