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
	"time"
)

// TriggerMode determines what the scope does when no trigger event occurs.
type TriggerMode int

// List of valid TriggerMode values.
const (
	// the display is updated on every trigger event. if no trigger event
	// occurs for a while the display is updated anyway
	Auto TriggerMode = iota

	// the display is only updated on a trigger event. otherwise the last
	// triggered capture is held
	Normal

	// the display is updated on the first trigger event after arming, after
	// which the scope stops running
	Single
)

// TriggerModes is the list of all valid TriggerMode values, in order.
var TriggerModes = []TriggerMode{Auto, Normal, Single}

func (m TriggerMode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Normal:
		return "normal"
	case Single:
		return "single"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// Valid returns true if the TriggerMode is one of the defined values.
func (m TriggerMode) Valid() bool {
	return m >= Auto && m <= Single
}

// ParseTriggerMode converts a string to a TriggerMode. The comparison is not
// case sensitive.
func ParseTriggerMode(s string) (TriggerMode, error) {
	for _, m := range TriggerModes {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return Auto, invalid("unrecognised trigger mode (%s)", s)
}

// Edge is the direction of the signal as it crosses the trigger level.
type Edge int

// List of valid Edge values.
const (
	Rising Edge = iota
	Falling
)

func (e Edge) String() string {
	switch e {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return fmt.Sprintf("unknown edge (%d)", int(e))
}

// Valid returns true if the Edge is one of the defined values.
func (e Edge) Valid() bool {
	return e == Rising || e == Falling
}

// ParseEdge converts a string to an Edge. The comparison is not case
// sensitive.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rising":
		return Rising, nil
	case "falling":
		return Falling, nil
	}
	return Rising, invalid("unrecognised trigger edge (%s)", s)
}

// TriggerConfig is the trigger setting of the scope.
type TriggerConfig struct {
	Mode TriggerMode
	Edge Edge

	// trigger level in volts
	Level float64

	// minimum time in seconds after a trigger event before another trigger
	// event is allowed
	HoldoffSeconds float64

	// the channel that is monitored for trigger events. this need not be
	// the channel that is being displayed or measured
	Source Channel
}

// Validate returns an InvalidConfiguration error if the trigger cannot be
// used.
func (tc TriggerConfig) Validate() error {
	if !tc.Mode.Valid() {
		return invalid("unrecognised trigger mode (%d)", int(tc.Mode))
	}
	if !tc.Edge.Valid() {
		return invalid("unrecognised trigger edge (%d)", int(tc.Edge))
	}
	if !finite(tc.Level) {
		return invalid("trigger level must be finite (%v)", tc.Level)
	}
	if !finite(tc.HoldoffSeconds) || tc.HoldoffSeconds < 0 {
		return invalid("holdoff must not be negative (%v)", tc.HoldoffSeconds)
	}
	if !tc.Source.Valid() {
		return invalid("unrecognised trigger source (%d)", int(tc.Source))
	}
	return nil
}

// Holdoff returns the holdoff period as a time.Duration. Timestamps supplied
// by the scheduler are also time.Duration values so the two can be compared
// directly.
func (tc TriggerConfig) Holdoff() time.Duration {
	return time.Duration(tc.HoldoffSeconds * float64(time.Second))
}
