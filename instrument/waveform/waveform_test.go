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

package waveform_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/waveform"
	"github.com/jetsetilly/gopherscope/random"
	"github.com/jetsetilly/gopherscope/test"
)

var timebase = instrument.TimebaseConfig{TimePerDivision: 200e-6}

func sine(freq float64) instrument.WaveformParameters {
	return instrument.WaveformParameters{
		Frequency: freq,
		Amplitude: 1.0,
		Shape:     instrument.Sine,
	}
}

func TestLength(t *testing.T) {
	for _, s := range instrument.Shapes {
		p := sine(1000)
		p.Shape = s
		buf := waveform.Synthesize(p, timebase, 10, 100, 0, nil)
		test.ExpectEquality(t, len(buf), 1000, s)

		buf = waveform.Synthesize(p, timebase, 8, 50, 1.5, nil)
		test.ExpectEquality(t, len(buf), 400, s)
	}

	// invalid dimensions result in an empty buffer
	test.ExpectEquality(t, len(waveform.Synthesize(sine(1000), timebase, 0, 100, 0, nil)), 0)
	test.ExpectEquality(t, len(waveform.Synthesize(sine(1000), timebase, 10, -1, 0, nil)), 0)
}

func TestSine(t *testing.T) {
	buf := waveform.Synthesize(sine(1000), timebase, 10, 100, 0, nil)
	test.ExpectEquality(t, buf[0], 0.0)

	// 1kHz over a 2ms window is two full cycles. a quarter of a cycle is
	// 125 samples
	test.ExpectApproximate(t, buf[125], 1.0, 1e-9)
	test.ExpectApproximate(t, buf[375], -1.0, 1e-9)

	// bit-for-bit reproducibility
	again := waveform.Synthesize(sine(1000), timebase, 10, 100, 0, nil)
	for i := range buf {
		if buf[i] != again[i] {
			t.Fatalf("synthesis is not reproducible at index %d", i)
		}
	}
}

func TestAmplitudeAndOffset(t *testing.T) {
	p := sine(1000)
	p.Amplitude = 2.5
	p.Offset = 1.0
	buf := waveform.Synthesize(p, timebase, 10, 100, 0, nil)
	test.ExpectEquality(t, buf[0], 1.0)
	test.ExpectApproximate(t, buf[125], 3.5, 1e-9)
	test.ExpectApproximate(t, buf[375], -1.5, 1e-9)
}

func TestSquare(t *testing.T) {
	p := sine(1000)
	p.Shape = instrument.Square
	buf := waveform.Synthesize(p, timebase, 10, 100, 0, nil)

	// sin(0) is zero, which is treated as the positive half
	test.ExpectEquality(t, buf[0], 1.0)
	test.ExpectEquality(t, buf[100], 1.0)
	test.ExpectEquality(t, buf[300], -1.0)

	for i := range buf {
		if buf[i] != 1.0 && buf[i] != -1.0 {
			t.Fatalf("square wave has an unexpected value at %d: %f", i, buf[i])
		}
	}
}

func TestTriangle(t *testing.T) {
	p := sine(1000)
	p.Shape = instrument.Triangle
	buf := waveform.Synthesize(p, timebase, 10, 100, 0, nil)

	test.ExpectApproximate(t, buf[0], 0.0, 1e-12)
	test.ExpectApproximate(t, buf[125], 1.0, 1e-6)
	test.ExpectApproximate(t, buf[250], 0.0, 1e-9)
	test.ExpectApproximate(t, buf[375], -1.0, 1e-6)

	// the triangle is linear between peaks
	test.ExpectApproximate(t, buf[62], 62.0/125.0, 1e-9)
}

func TestSawtooth(t *testing.T) {
	p := sine(1000)
	p.Shape = instrument.Sawtooth

	// sample the expression directly at a handful of phases
	for _, x := range []float64{0, 0.5, 1.0, 2.0, 3.0, 4.0} {
		want := (2 / math.Pi) * math.Atan(math.Tan(x/2))
		test.ExpectEquality(t, waveform.Value(instrument.Sawtooth, x), want)
	}

	buf := waveform.Synthesize(p, timebase, 10, 100, 0, nil)
	for i := range buf {
		if buf[i] < -1.0 || buf[i] > 1.0 {
			t.Fatalf("sawtooth out of range at %d: %f", i, buf[i])
		}
	}

	// the value rises within a cycle and falls sharply at the discontinuity
	test.ExpectSuccess(t, buf[100] > buf[50])
	test.ExpectSuccess(t, buf[260] < buf[240])
}

func TestNoise(t *testing.T) {
	p := sine(1000)
	p.NoiseFraction = 0.1

	clean := waveform.Synthesize(p, timebase, 10, 100, 0, nil)

	rnd := random.NewRandom(true)
	noisy := waveform.Synthesize(p, timebase, 10, 100, 0, rnd)

	var different bool
	for i := range clean {
		d := math.Abs(noisy[i] - clean[i])
		if d > 0.1+1e-12 {
			t.Fatalf("noise exceeds limit at %d: %f", i, d)
		}
		different = different || d > 0
	}
	test.ExpectSuccess(t, different)

	// a zero seed makes noise reproducible
	rnd.Reset()
	again := waveform.Synthesize(p, timebase, 10, 100, 0, rnd)
	for i := range noisy {
		test.DemandEquality(t, again[i], noisy[i])
	}
}

func TestPhase(t *testing.T) {
	buf := waveform.Synthesize(sine(1000), timebase, 10, 100, math.Pi/2, nil)
	test.ExpectEquality(t, buf[0], 1.0)
}
