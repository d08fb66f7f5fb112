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
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherscope/curated"
	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/measure"
	"github.com/jetsetilly/gopherscope/instrument/waveform"
	"github.com/jetsetilly/gopherscope/logger"
)

// the tag used for all log entries created by the scope
const logTag = "scope"

// Scope is the dual channel oscilloscope.
type Scope struct {
	// suppress log entries. useful when running for performance measurement
	Quiet bool

	channels [instrument.NumChannels]instrument.ChannelConfig
	timebase instrument.TimebaseConfig
	trigger  instrument.TriggerConfig
	grid     instrument.Grid

	framesPerSecond int

	running bool
	state   RuntimeState

	// source of noise for synthesis. can be nil
	noise waveform.Noise
}

// NewScope is the preferred method of initialisation for the Scope type. The
// scope is created with the default configuration and is running.
//
// The noise argument can be nil, in which case the waveforms will not have a
// noise component.
func NewScope(noise waveform.Noise) *Scope {
	s := &Scope{
		timebase:        instrument.DefaultTimebase(),
		trigger:         instrument.DefaultTrigger(),
		grid:            instrument.DefaultGrid(),
		framesPerSecond: instrument.DefaultFramesPerSecond,
		running:         true,
		noise:           noise,
	}
	for ch := range s.channels {
		s.channels[ch] = instrument.DefaultChannel(instrument.Channel(ch))
	}
	s.state.reset()
	return s
}

// AllowLogging implements the logger.Permission interface.
func (s *Scope) AllowLogging() bool {
	return !s.Quiet
}

func (s *Scope) String() string {
	return fmt.Sprintf("%s %s %s %s level=%.3fV src=%s",
		s.State(), s.trigger.Mode, s.trigger.Edge,
		measure.Engineering(s.timebase.TimePerDivision, "s/div"),
		s.trigger.Level, s.trigger.Source)
}

// reject logs the configuration error before returning it.
func (s *Scope) reject(what string, err error) error {
	logger.Logf(s, logTag, "%s rejected: %v", what, err)
	return err
}

// SetChannelConfig changes the configuration of a channel.
func (s *Scope) SetChannelConfig(ch instrument.Channel, cfg instrument.ChannelConfig) error {
	if !ch.Valid() {
		return s.reject("channel config", curated.Errorf(instrument.InvalidConfiguration,
			fmt.Sprintf("channel out of range (%d)", int(ch))))
	}
	if err := cfg.Validate(); err != nil {
		return s.reject(fmt.Sprintf("%s config", ch), err)
	}
	s.channels[ch] = cfg
	return nil
}

// SetTimebaseConfig changes the timebase of the scope.
func (s *Scope) SetTimebaseConfig(tb instrument.TimebaseConfig) error {
	if err := tb.Validate(); err != nil {
		return s.reject("timebase config", err)
	}
	s.timebase = tb
	return nil
}

// SetTriggerConfig changes the trigger settings of the scope.
func (s *Scope) SetTriggerConfig(tc instrument.TriggerConfig) error {
	if err := tc.Validate(); err != nil {
		return s.reject("trigger config", err)
	}
	if tc.Mode != s.trigger.Mode {
		logger.Logf(s, logTag, "trigger mode: %s", tc.Mode)
	}
	s.trigger = tc
	return nil
}

// SetGrid changes the division layout of the display. Buffers published
// after the change will be of the new length.
func (s *Scope) SetGrid(g instrument.Grid) error {
	if err := g.Validate(); err != nil {
		return s.reject("grid", err)
	}
	s.grid = g
	return nil
}

// SetFramesPerSecond changes the expected rate at which Tick() is called.
// The phase accumulators advance by 1/framesPerSecond of a second on every
// tick.
func (s *Scope) SetFramesPerSecond(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return s.reject("frame rate", curated.Errorf(instrument.InvalidConfiguration,
			fmt.Sprintf("frames per second must be positive (%d)", framesPerSecond)))
	}
	s.framesPerSecond = framesPerSecond
	return nil
}

// ChannelConfig returns the configuration of the channel. The zero value is
// returned for an invalid channel.
func (s *Scope) ChannelConfig(ch instrument.Channel) instrument.ChannelConfig {
	if !ch.Valid() {
		return instrument.ChannelConfig{}
	}
	return s.channels[ch]
}

// TimebaseConfig returns the current timebase.
func (s *Scope) TimebaseConfig() instrument.TimebaseConfig {
	return s.timebase
}

// TriggerConfig returns the current trigger settings.
func (s *Scope) TriggerConfig() instrument.TriggerConfig {
	return s.trigger
}

// Grid returns the current division layout.
func (s *Scope) Grid() instrument.Grid {
	return s.grid
}

// FramesPerSecond returns the expected rate at which Tick() is called.
func (s *Scope) FramesPerSecond() int {
	return s.framesPerSecond
}

// IsRunning returns true if the scope is running.
func (s *Scope) IsRunning() bool {
	return s.running
}

// IsTriggered returns true if the published buffers are the result of a
// trigger event.
func (s *Scope) IsTriggered() bool {
	return s.state.IsTriggered
}

// Armed returns true if the trigger is eligible to fire.
func (s *Scope) Armed() bool {
	return s.state.Armed
}

// Buffer returns the published buffer for the channel. The buffer is nil if
// nothing has been published since the scope was created. The buffer for a
// disabled channel is empty.
//
// The returned buffer must not be modified.
func (s *Scope) Buffer(ch instrument.Channel) instrument.SampleBuffer {
	if !ch.Valid() {
		return nil
	}
	return s.state.Published[ch]
}

// Measure the published buffer of the channel.
func (s *Scope) Measure(ch instrument.Channel) measure.Measurements {
	return measure.Measure(s.Buffer(ch), s.timebase, s.grid.Divisions)
}

// Runtime returns a copy of the runtime state.
func (s *Scope) Runtime() RuntimeState {
	return s.state.clone()
}

// ToggleRunning starts the scope if it is stopped and stops it if it is
// running. Starting the scope re-arms the trigger.
func (s *Scope) ToggleRunning() {
	s.setRunning(!s.running)
}

func (s *Scope) setRunning(running bool) {
	if s.running == running {
		return
	}
	s.running = running
	if s.running {
		s.state.Armed = true
		s.state.Captured = false
		logger.Log(s, logTag, "running")
	} else {
		logger.Log(s, logTag, "stopped")
	}
}

// ResetPhase returns the runtime state to its initial condition. The phase
// accumulators are zeroed, the frozen buffers are cleared and the trigger is
// re-armed. The published buffers and the running state are not affected.
func (s *Scope) ResetPhase() {
	s.state.reset()
	logger.Log(s, logTag, "phase reset")
}

// ArmTrigger makes the trigger eligible to fire. In single mode a stopped
// scope is started.
func (s *Scope) ArmTrigger() {
	s.state.Armed = true
	if s.trigger.Mode == instrument.Single && !s.running {
		s.setRunning(true)
	}
	logger.Log(s, logTag, "armed")
}

// Visualise writes a graphviz representation of the runtime state to the
// writer.
func (s *Scope) Visualise(w io.Writer) {
	state := s.state.clone()
	memviz.Map(w, &state)
}
