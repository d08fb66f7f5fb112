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

package trigger_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/trigger"
	"github.com/jetsetilly/gopherscope/instrument/waveform"
	"github.com/jetsetilly/gopherscope/test"
)

var grid = instrument.DefaultGrid()
var timebase = instrument.DefaultTimebase()

// lock applies the trigger offset to the phase and returns the buffer that
// would be displayed
func lock(t *testing.T, ch instrument.ChannelConfig, tc instrument.TriggerConfig, phase float64) (instrument.SampleBuffer, float64) {
	t.Helper()
	offset, ok := trigger.LocateTimeOffset(ch, tc, timebase, grid, phase)
	test.DemandSuccess(t, ok)
	phase += offset * ch.Waveform.AngularFrequency()
	return waveform.SynthesizeGrid(ch.Waveform, timebase, grid, phase, nil), phase
}

func TestSineRising(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	tc := instrument.DefaultTrigger()

	for _, phase := range []float64{0, 1.0, 4.0, 2 * math.Pi, 50.0} {
		buf, _ := lock(t, ch, tc, phase)
		test.ExpectApproximate(t, buf[0], 0.0, 1e-9, phase)
		test.ExpectSuccess(t, buf[1] > buf[0], phase)
	}
}

func TestSineFalling(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	tc := instrument.DefaultTrigger()
	tc.Edge = instrument.Falling
	tc.Level = 0.5

	for _, phase := range []float64{0, 1.0, 3.0, 5.5} {
		buf, _ := lock(t, ch, tc, phase)
		test.ExpectApproximate(t, buf[0], 0.5, 1e-9, phase)
		test.ExpectSuccess(t, buf[1] < buf[0], phase)
	}
}

func TestSineWithOffset(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	ch.Waveform.Amplitude = 2
	ch.Waveform.Offset = 1
	tc := instrument.DefaultTrigger()
	tc.Level = 2

	buf, _ := lock(t, ch, tc, 0.7)
	test.ExpectApproximate(t, buf[0], 2.0, 1e-9)
	test.ExpectSuccess(t, buf[1] > buf[0])
}

func TestSineOffsetIsWithinHalfCycle(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	tc := instrument.DefaultTrigger()
	halfPeriod := 0.5 / ch.Waveform.Frequency

	for phase := 0.0; phase < 20; phase += 0.37 {
		offset, ok := trigger.LocateTimeOffset(ch, tc, timebase, grid, phase)
		test.ExpectSuccess(t, ok)
		test.ExpectSuccess(t, math.Abs(offset) <= halfPeriod*(1+1e-9), phase)
	}
}

func TestSineOutOfRange(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	tc := instrument.DefaultTrigger()

	tc.Level = 1.5
	_, ok := trigger.LocateTimeOffset(ch, tc, timebase, grid, 0)
	test.ExpectFailure(t, ok)

	tc.Level = -1.01
	_, ok = trigger.LocateTimeOffset(ch, tc, timebase, grid, 0)
	test.ExpectFailure(t, ok)

	// the peak of the waveform is reachable
	tc.Level = 1.0
	_, ok = trigger.LocateTimeOffset(ch, tc, timebase, grid, 0)
	test.ExpectSuccess(t, ok)
}

func TestZeroAmplitude(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	ch.Waveform.Amplitude = 0
	tc := instrument.DefaultTrigger()

	// a flat line at the trigger level normalises to zero
	offset, ok := trigger.LocateTimeOffset(ch, tc, timebase, grid, 1.0)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, !math.IsNaN(offset) && !math.IsInf(offset, 0))

	// anything else is out of range
	tc.Level = 0.1
	_, ok = trigger.LocateTimeOffset(ch, tc, timebase, grid, 1.0)
	test.ExpectFailure(t, ok)
}

func TestSquare(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH2)
	tc := instrument.DefaultTrigger()

	buf, phase := lock(t, ch, tc, 0.5)
	test.ExpectSuccess(t, buf[0] >= tc.Level)

	// the sample immediately before the left edge is below the level
	step := grid.TimeStep(timebase) * ch.Waveform.AngularFrequency()
	prev := waveform.SynthesizeGrid(ch.Waveform, timebase, grid, phase-step, nil)
	test.ExpectSuccess(t, prev[0] < tc.Level)
}

func TestSquareNoCrossing(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH2)
	tc := instrument.DefaultTrigger()

	// the rising edge of a 500Hz wave starting at phase zero is just beyond
	// the end of a 2ms capture window
	_, ok := trigger.LocateTimeOffset(ch, tc, timebase, grid, 0)
	test.ExpectFailure(t, ok)

	tc.Level = 2
	_, ok = trigger.LocateTimeOffset(ch, tc, timebase, grid, 0.5)
	test.ExpectFailure(t, ok)
}

func TestTriangle(t *testing.T) {
	ch := instrument.DefaultChannel(instrument.CH1)
	ch.Waveform.Shape = instrument.Triangle
	tc := instrument.DefaultTrigger()
	tc.Level = 0.5

	offset, ok := trigger.LocateTimeOffset(ch, tc, timebase, grid, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, offset, 63*grid.TimeStep(timebase), 1e-9)

	tc.Edge = instrument.Falling
	offset, ok = trigger.LocateTimeOffset(ch, tc, timebase, grid, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, offset, 188*grid.TimeStep(timebase), 1e-9)

	buf, _ := lock(t, ch, tc, 0)
	test.ExpectSuccess(t, buf[0] <= tc.Level)
}

func TestFindCrossing(t *testing.T) {
	buf := instrument.SampleBuffer{-1, 0, 1, 0, -1}

	i, ok := trigger.FindCrossing(buf, 0, instrument.Rising)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 1)

	i, ok = trigger.FindCrossing(buf, 0, instrument.Falling)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 3)

	_, ok = trigger.FindCrossing(buf, 5, instrument.Rising)
	test.ExpectFailure(t, ok)

	_, ok = trigger.FindCrossing(instrument.SampleBuffer{}, 0, instrument.Rising)
	test.ExpectFailure(t, ok)
}

func TestNormalisePhase(t *testing.T) {
	test.ExpectApproximate(t, trigger.NormalisePhase(1.5*math.Pi), -0.5*math.Pi, 1e-12)
	test.ExpectEquality(t, trigger.NormalisePhase(math.Pi), math.Pi)
	test.ExpectEquality(t, trigger.NormalisePhase(-math.Pi), math.Pi)
	test.ExpectEquality(t, trigger.NormalisePhase(0.25), 0.25)

	for _, p := range []float64{100, -100, 1e6, -7.5} {
		n := trigger.NormalisePhase(p)
		test.ExpectSuccess(t, n > -math.Pi && n <= math.Pi, p)
		test.ExpectApproximate(t, math.Sin(n), math.Sin(p), 1e-6, p)
	}
}
