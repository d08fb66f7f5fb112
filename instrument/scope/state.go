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

package scope

import (
	"time"

	"github.com/jetsetilly/gopherscope/instrument"
)

// RuntimeState is the part of the scope that changes from tick to tick.
type RuntimeState struct {
	// phase accumulator of each channel in radians
	Phase [instrument.NumChannels]float64

	// the phase of each channel used for the most recent triggered capture
	TriggeredPhase [instrument.NumChannels]float64

	// the published buffers are the result of a trigger event
	IsTriggered bool

	// the trigger is eligible to fire
	Armed bool

	// timestamp of the most recent trigger event. only meaningful if
	// HasTriggered is true
	LastTrigger  time.Duration
	HasTriggered bool

	// number of consecutive ticks without a trigger event
	NoTriggerFrames int

	// the most recent triggered capture of each channel. nil if there has
	// been no trigger event since the last reset
	Frozen [instrument.NumChannels]instrument.SampleBuffer

	// the buffers currently on display
	Published [instrument.NumChannels]instrument.SampleBuffer

	// number of trigger events and auto trigger timeouts since the last
	// reset
	TriggerCount int
	AutoTimeouts int

	// a single shot capture has been made and the scope has stopped
	Captured bool
}

// reset the runtime state, preserving the published buffers.
func (st *RuntimeState) reset() {
	*st = RuntimeState{
		Armed:     true,
		Published: st.Published,
	}
}

// hasFrozen returns true if there is a frozen buffer for any channel.
func (st *RuntimeState) hasFrozen() bool {
	for _, b := range st.Frozen {
		if b != nil {
			return true
		}
	}
	return false
}

// clone returns a copy of the runtime state with copies of all buffers.
func (st *RuntimeState) clone() RuntimeState {
	c := *st
	for ch := range c.Frozen {
		c.Frozen[ch] = st.Frozen[ch].Clone()
		c.Published[ch] = st.Published[ch].Clone()
	}
	return c
}

// StateName identifies the condition of the scope, as would be shown to the
// user.
type StateName int

// List of valid StateName values.
const (
	// the scope is not running
	Idle StateName = iota

	// the scope is running in auto mode but the display is not the result
	// of a trigger event
	FreeRunning

	// the scope is running and is waiting for a trigger event
	ArmedWaiting

	// the display is the result of a trigger event
	Triggered

	// a single shot capture has been made and the scope has stopped
	SingleCaptured
)

func (n StateName) String() string {
	switch n {
	case Idle:
		return "idle"
	case FreeRunning:
		return "free running"
	case ArmedWaiting:
		return "armed"
	case Triggered:
		return "triggered"
	case SingleCaptured:
		return "single captured"
	}
	return "unknown"
}

// State returns the current condition of the scope.
func (s *Scope) State() StateName {
	if !s.running {
		if s.state.Captured {
			return SingleCaptured
		}
		return Idle
	}
	if s.state.IsTriggered {
		return Triggered
	}
	if s.trigger.Mode == instrument.Auto {
		return FreeRunning
	}
	return ArmedWaiting
}

// Snapshot is a copy of the published state of the scope.
type Snapshot struct {
	Buffers      [instrument.NumChannels]instrument.SampleBuffer
	State        StateName
	IsTriggered  bool
	Armed        bool
	IsRunning    bool
	TriggerCount int
	AutoTimeouts int
}

// Snapshot returns a copy of the published state. The buffers in the
// Snapshot are copies and can be modified freely.
func (s *Scope) Snapshot() Snapshot {
	snp := Snapshot{
		State:        s.State(),
		IsTriggered:  s.state.IsTriggered,
		Armed:        s.state.Armed,
		IsRunning:    s.running,
		TriggerCount: s.state.TriggerCount,
		AutoTimeouts: s.state.AutoTimeouts,
	}
	for ch := range snp.Buffers {
		snp.Buffers[ch] = s.state.Published[ch].Clone()
	}
	return snp
}
