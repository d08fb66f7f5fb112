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
	"math"
	"time"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/trigger"
	"github.com/jetsetilly/gopherscope/instrument/waveform"
	"github.com/jetsetilly/gopherscope/logger"
)

// AutoTriggerTimeout is the number of consecutive ticks without a trigger
// event after which a scope in auto mode publishes an untriggered capture.
const AutoTriggerTimeout = 30

// phase accumulators wrap at this value to keep their magnitude bounded. it
// is a multiple of 2π so wrapping does not change the waveform
const phaseWrap = 200 * math.Pi

// Tick advances the scope by one frame. The now argument is the timestamp of
// the tick, measured from the start of the session. It should increase with
// every call.
//
// Nothing happens if the scope is not running.
func (s *Scope) Tick(now time.Duration) {
	if !s.running {
		return
	}

	s.advancePhase()

	if !s.eligible(now) {
		s.noTrigger()
		return
	}

	src := s.trigger.Source
	dt, ok := trigger.LocateTimeOffset(s.channels[src], s.trigger, s.timebase, s.grid, s.state.Phase[src])
	if !ok {
		s.noTrigger()
		return
	}

	s.triggered(now, dt)
}

// advancePhase moves the phase accumulator of each channel on by one frame.
// each channel advances according to its own frequency.
func (s *Scope) advancePhase() {
	fps := float64(s.framesPerSecond)
	for ch := range s.channels {
		p := s.state.Phase[ch] + s.channels[ch].Waveform.AngularFrequency()/fps
		s.state.Phase[ch] = math.Mod(p, phaseWrap)
	}
}

// eligible returns false if the trigger is not allowed to fire this tick.
func (s *Scope) eligible(now time.Duration) bool {
	if s.trigger.Mode == instrument.Single && !s.state.Armed {
		return false
	}
	if holdoff := s.trigger.Holdoff(); holdoff > 0 && s.state.HasTriggered {
		if now-s.state.LastTrigger < holdoff {
			return false
		}
	}
	return true
}

// triggered publishes new buffers for a trigger event. dt is the time offset
// from the trigger locator. it is applied to every channel so that the
// channels remain synchronised in time.
func (s *Scope) triggered(now time.Duration, dt float64) {
	for ch := range s.channels {
		w := s.channels[ch].Waveform.AngularFrequency()
		s.state.TriggeredPhase[ch] = s.state.Phase[ch] + dt*w
	}

	bufs := s.synthesize(s.state.TriggeredPhase)
	s.state.Frozen = bufs
	s.state.Published = bufs

	s.state.IsTriggered = true
	s.state.LastTrigger = now
	s.state.HasTriggered = true
	s.state.NoTriggerFrames = 0
	s.state.TriggerCount++

	if s.trigger.Mode == instrument.Single {
		s.state.Armed = false
		s.state.Captured = true
		s.running = false
		logger.Logf(s, logTag, "single capture at %v", now)
	}
}

// noTrigger handles a tick where the trigger did not fire, either because no
// trigger event was found or because the trigger was not eligible.
func (s *Scope) noTrigger() {
	switch s.trigger.Mode {
	case instrument.Auto:
		s.state.NoTriggerFrames++
		if s.state.NoTriggerFrames >= AutoTriggerTimeout {
			s.state.Published = s.synthesize(s.state.Phase)
			s.state.IsTriggered = false
			s.state.NoTriggerFrames = 0
			s.state.AutoTimeouts++
			logger.Log(s, logTag, "auto trigger timeout")
		}
	case instrument.Normal:
		if s.state.hasFrozen() {
			s.state.Published = s.state.Frozen
		}
		s.state.IsTriggered = false
	}
}

// synthesize buffers for every channel at the supplied phases. disabled
// channels have an empty buffer.
func (s *Scope) synthesize(phase [instrument.NumChannels]float64) [instrument.NumChannels]instrument.SampleBuffer {
	var bufs [instrument.NumChannels]instrument.SampleBuffer
	for ch, cfg := range s.channels {
		if !cfg.Enabled {
			bufs[ch] = instrument.SampleBuffer{}
			continue
		}
		bufs[ch] = waveform.SynthesizeGrid(cfg.Waveform, s.timebase, s.grid, phase[ch], s.noise)
	}
	return bufs
}
