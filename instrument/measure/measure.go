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

package measure

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gopherscope/instrument"
)

// Measurements is the result of Measure(). All voltages are in volts.
type Measurements struct {
	VMax float64
	VMin float64
	VPP  float64
	VRMS float64

	// estimated frequency in Hz and period in seconds. both values are zero
	// if no mean crossings were found
	Frequency float64
	Period    float64

	// percentage of samples above the mean
	DutyCycle float64
}

func (m Measurements) String() string {
	return fmt.Sprintf("max=%s min=%s pp=%s rms=%s freq=%s period=%s duty=%.1f%%",
		Engineering(m.VMax, "V"),
		Engineering(m.VMin, "V"),
		Engineering(m.VPP, "V"),
		Engineering(m.VRMS, "V"),
		Engineering(m.Frequency, "Hz"),
		Engineering(m.Period, "s"),
		m.DutyCycle,
	)
}

// Measure the sample buffer. The capture window of the buffer is
// timePerDivision * divisions. An empty buffer results in a zero value
// Measurements.
func Measure(buf instrument.SampleBuffer, tb instrument.TimebaseConfig, divisions int) Measurements {
	var m Measurements

	if len(buf) == 0 {
		return m
	}

	m.VMax = buf[0]
	m.VMin = buf[0]

	var sum float64
	var sumSquares float64
	for _, v := range buf {
		m.VMax = math.Max(m.VMax, v)
		m.VMin = math.Min(m.VMin, v)
		sum += v
		sumSquares += v * v
	}

	n := float64(len(buf))
	mean := sum / n

	m.VPP = m.VMax - m.VMin
	m.VRMS = math.Sqrt(sumSquares / n)

	var crossings int
	var above int
	for i, v := range buf {
		if v > mean {
			above++
		}
		if i > 0 && (buf[i-1]-mean >= 0) != (v-mean >= 0) {
			crossings++
		}
	}

	m.DutyCycle = 100 * float64(above) / n

	// two crossings for every cycle
	window := tb.TimePerDivision * float64(divisions)
	if window > 0 {
		m.Frequency = float64(crossings) / 2 / window
	}
	if m.Frequency > 0 {
		m.Period = 1 / m.Frequency
	}

	return m
}

var prefixes = []struct {
	scale  float64
	prefix string
}{
	{scale: 1e9, prefix: "G"},
	{scale: 1e6, prefix: "M"},
	{scale: 1e3, prefix: "k"},
	{scale: 1, prefix: ""},
	{scale: 1e-3, prefix: "m"},
	{scale: 1e-6, prefix: "µ"},
	{scale: 1e-9, prefix: "n"},
}

// Engineering formats a value with an SI prefix so that the mantissa is
// between 1 and 1000. Values smaller than one nano-unit are shown in
// nano-units.
func Engineering(v float64, unit string) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.3f%s", v, unit)
	}

	a := math.Abs(v)
	for _, p := range prefixes {
		if a >= p.scale {
			return fmt.Sprintf("%.3f%s%s", v/p.scale, p.prefix, unit)
		}
	}

	p := prefixes[len(prefixes)-1]
	return fmt.Sprintf("%.3f%s%s", v/p.scale, p.prefix, unit)
}
