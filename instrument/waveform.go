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

import (
	"fmt"
	"math"
	"strings"
)

// Shape of a periodic waveform.
type Shape int

// List of valid Shape values.
const (
	Sine Shape = iota
	Square
	Triangle
	Sawtooth
)

// Shapes is the list of all valid Shape values, in order.
var Shapes = []Shape{Sine, Square, Triangle, Sawtooth}

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	}
	return fmt.Sprintf("unknown shape (%d)", int(s))
}

// Valid returns true if the Shape is one of the defined values.
func (s Shape) Valid() bool {
	return s >= Sine && s <= Sawtooth
}

// ParseShape converts a string to a Shape. The comparison is not case
// sensitive.
func ParseShape(s string) (Shape, error) {
	for _, v := range Shapes {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, nil
		}
	}
	return Sine, invalid("unrecognised waveform shape (%s)", s)
}

// WaveformParameters describe the signal produced by a signal source.
type WaveformParameters struct {
	// frequency in Hz
	Frequency float64

	// peak amplitude in volts
	Amplitude float64

	// DC offset in volts
	Offset float64

	Shape Shape

	// noise amplitude as a fraction of Amplitude. in the range 0 to 1
	NoiseFraction float64
}

// Validate returns an InvalidConfiguration error if the parameters cannot be
// used for synthesis.
func (p WaveformParameters) Validate() error {
	if !finite(p.Frequency) || p.Frequency <= 0 {
		return invalid("frequency must be positive (%v)", p.Frequency)
	}
	if !finite(p.Amplitude) || p.Amplitude < 0 {
		return invalid("amplitude must not be negative (%v)", p.Amplitude)
	}
	if !finite(p.Offset) {
		return invalid("offset must be finite (%v)", p.Offset)
	}
	if !p.Shape.Valid() {
		return invalid("unrecognised waveform shape (%d)", int(p.Shape))
	}
	if !finite(p.NoiseFraction) || p.NoiseFraction < 0 || p.NoiseFraction > 1 {
		return invalid("noise fraction must be between 0 and 1 (%v)", p.NoiseFraction)
	}
	return nil
}

// AngularFrequency returns the angular frequency of the waveform in radians
// per second. The frequency is clamped to MinFrequency.
func (p WaveformParameters) AngularFrequency() float64 {
	return 2 * math.Pi * math.Max(p.Frequency, MinFrequency)
}
