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

// SampleBuffer is a sequence of sampled values in volts. Index i represents
// the time i * TimeStep from the left edge of the display.
type SampleBuffer []float64

// Clone returns a copy of the buffer. A nil buffer is cloned as nil.
func (b SampleBuffer) Clone() SampleBuffer {
	if b == nil {
		return nil
	}
	c := make(SampleBuffer, len(b))
	copy(c, b)
	return c
}

// Default values for a new scope session.
const (
	DefaultDivisions         = 10
	DefaultPointsPerDivision = 100
	DefaultVerticalDivisions = 8
	DefaultFramesPerSecond   = 60
)

// DefaultGrid returns the grid used at the start of a session.
func DefaultGrid() Grid {
	return Grid{
		Divisions:         DefaultDivisions,
		PointsPerDivision: DefaultPointsPerDivision,
		VerticalDivisions: DefaultVerticalDivisions,
	}
}

// DefaultTimebase returns the timebase used at the start of a session.
func DefaultTimebase() TimebaseConfig {
	return TimebaseConfig{
		TimePerDivision: 200e-6,
	}
}

// DefaultTrigger returns the trigger configuration used at the start of a
// session.
func DefaultTrigger() TriggerConfig {
	return TriggerConfig{
		Mode:   Auto,
		Edge:   Rising,
		Level:  0,
		Source: CH1,
	}
}

// DefaultChannel returns the channel configuration used at the start of a
// session.
func DefaultChannel(ch Channel) ChannelConfig {
	if ch == CH2 {
		return ChannelConfig{
			Enabled:          true,
			VoltsPerDivision: 0.5,
			Waveform: WaveformParameters{
				Frequency: 500,
				Amplitude: 0.5,
				Shape:     Square,
			},
		}
	}

	return ChannelConfig{
		Enabled:          true,
		VoltsPerDivision: 0.5,
		Waveform: WaveformParameters{
			Frequency: 1000,
			Amplitude: 1.0,
			Shape:     Sine,
		},
	}
}
