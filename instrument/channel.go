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
	"strings"
)

// Channel identifies one of the two input channels.
type Channel int

// List of valid Channel values.
const (
	CH1 Channel = iota
	CH2
)

// NumChannels is the number of input channels.
const NumChannels = 2

func (c Channel) String() string {
	switch c {
	case CH1:
		return "ch1"
	case CH2:
		return "ch2"
	}
	return fmt.Sprintf("unknown channel (%d)", int(c))
}

// Valid returns true if the Channel is one of the defined values.
func (c Channel) Valid() bool {
	return c == CH1 || c == CH2
}

// ParseChannel converts a string to a Channel. Accepted strings are "ch1",
// "ch2", "1" and "2". The comparison is not case sensitive.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ch1", "1":
		return CH1, nil
	case "ch2", "2":
		return CH2, nil
	}
	return CH1, invalid("unrecognised channel (%s)", s)
}

// ChannelConfig is the configuration of a single input channel, including
// the signal source connected to it.
type ChannelConfig struct {
	Enabled bool

	// vertical scale in volts per division
	VoltsPerDivision float64

	// vertical position of the trace in volts
	VerticalOffset float64

	Waveform WaveformParameters
}

// Validate returns an InvalidConfiguration error if the channel cannot be
// used.
func (c ChannelConfig) Validate() error {
	if !finite(c.VoltsPerDivision) || c.VoltsPerDivision <= 0 {
		return invalid("volts per division must be positive (%v)", c.VoltsPerDivision)
	}
	if !finite(c.VerticalOffset) {
		return invalid("vertical offset must be finite (%v)", c.VerticalOffset)
	}
	return c.Waveform.Validate()
}
