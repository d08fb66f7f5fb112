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

package scope_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherscope/curated"
	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/scope"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/scheduler"
	"github.com/jetsetilly/gopherscope/test"
)

func newScope(t *testing.T) (*scope.Scope, *scheduler.Manual) {
	t.Helper()
	s := scope.NewScope(nil)
	s.Quiet = true
	clk, err := scheduler.NewManual(s.FramesPerSecond())
	test.DemandSuccess(t, err)
	return s, clk
}

func tick(s *scope.Scope, clk *scheduler.Manual, n int) {
	for i := 0; i < n; i++ {
		s.Tick(clk.Wait())
	}
}

func setTrigger(t *testing.T, s *scope.Scope, f func(tc *instrument.TriggerConfig)) {
	t.Helper()
	tc := s.TriggerConfig()
	f(&tc)
	test.DemandSuccess(t, s.SetTriggerConfig(tc))
}

func TestInitialState(t *testing.T) {
	s, _ := newScope(t)
	test.ExpectSuccess(t, s.IsRunning())
	test.ExpectSuccess(t, s.Armed())
	test.ExpectFailure(t, s.IsTriggered())
	test.ExpectEquality(t, s.State(), scope.FreeRunning)
	test.ExpectSuccess(t, s.Buffer(instrument.CH1) == nil)
	test.ExpectSuccess(t, s.Buffer(instrument.CH2) == nil)
	test.ExpectSuccess(t, s.Buffer(instrument.Channel(7)) == nil)
}

func TestAutoTrigger(t *testing.T) {
	s, clk := newScope(t)
	tick(s, clk, 1)

	test.ExpectSuccess(t, s.IsTriggered())
	test.ExpectEquality(t, s.State(), scope.Triggered)

	ch1 := s.Buffer(instrument.CH1)
	test.DemandEquality(t, len(ch1), s.Grid().TotalPoints())
	test.ExpectApproximate(t, ch1[0], 0.0, 1e-9)
	test.ExpectSuccess(t, ch1[1] > ch1[0])
	test.ExpectEquality(t, len(s.Buffer(instrument.CH2)), s.Grid().TotalPoints())

	// the trigger locks the display on every tick
	for i := 0; i < 20; i++ {
		tick(s, clk, 1)
		ch1 = s.Buffer(instrument.CH1)
		test.ExpectApproximate(t, ch1[0], 0.0, 1e-9, i)
		test.ExpectSuccess(t, ch1[1] > ch1[0], i)
	}
	test.ExpectEquality(t, s.Runtime().TriggerCount, 21)
}

func TestSingleShot(t *testing.T) {
	s, clk := newScope(t)
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Mode = instrument.Single
	})

	tick(s, clk, 1)
	test.ExpectFailure(t, s.Armed())
	test.ExpectFailure(t, s.IsRunning())
	test.ExpectSuccess(t, s.IsTriggered())
	test.ExpectEquality(t, s.State(), scope.SingleCaptured)

	// no further ticks are processed
	before := s.Runtime()
	tick(s, clk, 10)
	after := s.Runtime()
	test.ExpectEquality(t, after.TriggerCount, 1)
	test.ExpectEquality(t, after.Phase[instrument.CH1], before.Phase[instrument.CH1])

	s.ArmTrigger()
	test.ExpectSuccess(t, s.Armed())
	test.ExpectSuccess(t, s.IsRunning())

	tick(s, clk, 1)
	test.ExpectEquality(t, s.Runtime().TriggerCount, 2)
	test.ExpectFailure(t, s.IsRunning())
	test.ExpectFailure(t, s.Armed())
}

func TestSingleShotNotArmed(t *testing.T) {
	s, clk := newScope(t)
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Mode = instrument.Single
		tc.Level = 5.0
	})

	// waiting for a trigger event that never comes
	tick(s, clk, 50)
	test.ExpectSuccess(t, s.IsRunning())
	test.ExpectSuccess(t, s.Armed())
	test.ExpectEquality(t, s.State(), scope.ArmedWaiting)
	test.ExpectSuccess(t, s.Buffer(instrument.CH1) == nil)
}

func TestArmTriggerOtherModes(t *testing.T) {
	s, _ := newScope(t)
	s.ToggleRunning()
	test.ExpectFailure(t, s.IsRunning())

	// arming in auto mode does not start the scope
	s.ArmTrigger()
	test.ExpectSuccess(t, s.Armed())
	test.ExpectFailure(t, s.IsRunning())
	test.ExpectEquality(t, s.State(), scope.Idle)
}

func TestAutoTimeout(t *testing.T) {
	s, clk := newScope(t)
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Level = 5.0
	})

	tick(s, clk, scope.AutoTriggerTimeout-1)
	test.ExpectSuccess(t, s.Buffer(instrument.CH1) == nil)
	test.ExpectEquality(t, s.Runtime().NoTriggerFrames, scope.AutoTriggerTimeout-1)

	tick(s, clk, 1)
	test.ExpectEquality(t, len(s.Buffer(instrument.CH1)), s.Grid().TotalPoints())
	test.ExpectFailure(t, s.IsTriggered())
	test.ExpectEquality(t, s.State(), scope.FreeRunning)

	rs := s.Runtime()
	test.ExpectEquality(t, rs.AutoTimeouts, 1)
	test.ExpectEquality(t, rs.NoTriggerFrames, 0)
	test.ExpectEquality(t, rs.TriggerCount, 0)

	// untriggered captures do not become frozen buffers
	test.ExpectSuccess(t, rs.Frozen[instrument.CH1] == nil)

	tick(s, clk, scope.AutoTriggerTimeout)
	test.ExpectEquality(t, s.Runtime().AutoTimeouts, 2)
}

func TestNormalWithoutFrozen(t *testing.T) {
	s, clk := newScope(t)
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Mode = instrument.Normal
		tc.Level = 5.0
	})

	tick(s, clk, 100)
	test.ExpectSuccess(t, s.Buffer(instrument.CH1) == nil)
	test.ExpectSuccess(t, s.Buffer(instrument.CH2) == nil)
	test.ExpectFailure(t, s.IsTriggered())
	test.ExpectEquality(t, s.State(), scope.ArmedWaiting)
	test.ExpectEquality(t, s.Runtime().AutoTimeouts, 0)
}

func TestNormalHoldsFrozen(t *testing.T) {
	s, clk := newScope(t)
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Mode = instrument.Normal
	})

	tick(s, clk, 1)
	test.DemandSuccess(t, s.IsTriggered())
	frozen := s.Snapshot().Buffers[instrument.CH1]

	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Level = 5.0
	})
	tick(s, clk, 10)
	test.ExpectFailure(t, s.IsTriggered())

	held := s.Buffer(instrument.CH1)
	test.DemandEquality(t, len(held), len(frozen))
	for i := range held {
		if held[i] != frozen[i] {
			t.Fatalf("published buffer differs from frozen buffer at index %d", i)
		}
	}
}

func TestDisabledChannel(t *testing.T) {
	s, clk := newScope(t)
	cfg := s.ChannelConfig(instrument.CH2)
	cfg.Enabled = false
	test.DemandSuccess(t, s.SetChannelConfig(instrument.CH2, cfg))

	tick(s, clk, 1)
	ch2 := s.Buffer(instrument.CH2)
	test.ExpectSuccess(t, ch2 != nil)
	test.ExpectEquality(t, len(ch2), 0)
	test.ExpectEquality(t, len(s.Buffer(instrument.CH1)), s.Grid().TotalPoints())
}

func TestTriggerSource(t *testing.T) {
	s, clk := newScope(t)

	// channel two is a square wave by default
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Source = instrument.CH2
	})

	tick(s, clk, 1)
	test.DemandSuccess(t, s.IsTriggered())
	ch2 := s.Buffer(instrument.CH2)
	test.ExpectSuccess(t, ch2[0] >= 0)

	// both channels are shifted by the same amount of time
	rs := s.Runtime()
	w1 := s.ChannelConfig(instrument.CH1).Waveform.AngularFrequency()
	w2 := s.ChannelConfig(instrument.CH2).Waveform.AngularFrequency()
	dt1 := (rs.TriggeredPhase[instrument.CH1] - rs.Phase[instrument.CH1]) / w1
	dt2 := (rs.TriggeredPhase[instrument.CH2] - rs.Phase[instrument.CH2]) / w2
	test.ExpectApproximate(t, dt1, dt2, 1e-9)
	test.ExpectSuccess(t, dt2 > 0)
}

func TestHoldoff(t *testing.T) {
	s, clk := newScope(t)
	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.HoldoffSeconds = 0.1
	})

	// the first trigger is not subject to the holdoff
	tick(s, clk, 1)
	test.ExpectEquality(t, s.Runtime().TriggerCount, 1)
	test.ExpectEquality(t, s.Runtime().LastTrigger, clk.Now())

	// one hundred milliseconds is six frames at sixty frames per second
	tick(s, clk, 5)
	test.ExpectEquality(t, s.Runtime().TriggerCount, 1)

	tick(s, clk, 6)
	test.ExpectEquality(t, s.Runtime().TriggerCount, 2)
	test.ExpectSuccess(t, clk.Now()-s.Runtime().LastTrigger < 100*time.Millisecond)
}

func TestResetPhase(t *testing.T) {
	s, clk := newScope(t)
	tick(s, clk, 10)
	published := s.Buffer(instrument.CH1)
	test.DemandSuccess(t, published != nil)

	check := func() {
		t.Helper()
		rs := s.Runtime()
		for ch := range rs.Phase {
			test.ExpectEquality(t, rs.Phase[ch], 0.0)
			test.ExpectEquality(t, rs.TriggeredPhase[ch], 0.0)
			test.ExpectSuccess(t, rs.Frozen[ch] == nil)
		}
		test.ExpectSuccess(t, rs.Armed)
		test.ExpectFailure(t, rs.IsTriggered)
		test.ExpectFailure(t, rs.HasTriggered)
		test.ExpectEquality(t, rs.NoTriggerFrames, 0)
		test.ExpectEquality(t, rs.TriggerCount, 0)
		test.ExpectEquality(t, rs.LastTrigger, time.Duration(0))

		// published buffers are not affected
		test.ExpectEquality(t, len(rs.Published[instrument.CH1]), len(published))
	}

	s.ResetPhase()
	check()
	s.ResetPhase()
	check()

	test.ExpectSuccess(t, s.IsRunning())
}

func TestToggleRunning(t *testing.T) {
	s, clk := newScope(t)
	tick(s, clk, 1)
	phase := s.Runtime().Phase[instrument.CH1]

	s.ToggleRunning()
	test.ExpectFailure(t, s.IsRunning())
	test.ExpectEquality(t, s.State(), scope.Idle)
	tick(s, clk, 10)
	test.ExpectEquality(t, s.Runtime().Phase[instrument.CH1], phase)

	setTrigger(t, s, func(tc *instrument.TriggerConfig) {
		tc.Mode = instrument.Single
	})
	s.ToggleRunning()
	test.ExpectSuccess(t, s.IsRunning())
	test.ExpectSuccess(t, s.Armed())
	test.ExpectEquality(t, s.State(), scope.Triggered)
}

func TestPhaseAccumulator(t *testing.T) {
	s, clk := newScope(t)

	cfg := s.ChannelConfig(instrument.CH1)
	cfg.Waveform.Frequency = 30
	test.DemandSuccess(t, s.SetChannelConfig(instrument.CH1, cfg))

	// half a cycle per frame
	tick(s, clk, 1)
	test.ExpectApproximate(t, s.Runtime().Phase[instrument.CH1], math.Pi, 1e-12)

	// the accumulator is bounded
	cfg.Waveform.Frequency = 1e6
	test.DemandSuccess(t, s.SetChannelConfig(instrument.CH1, cfg))
	for i := 0; i < 1000; i++ {
		tick(s, clk, 1)
		p := s.Runtime().Phase[instrument.CH1]
		if p < 0 || p >= 200*math.Pi {
			t.Fatalf("phase accumulator out of range: %f", p)
		}
	}
}

func TestInvalidConfiguration(t *testing.T) {
	s, _ := newScope(t)

	expectInvalid := func(err error, tag string) {
		t.Helper()
		test.ExpectSuccess(t, curated.Is(err, instrument.InvalidConfiguration), tag)
	}

	ch1 := s.ChannelConfig(instrument.CH1)
	bad := ch1
	bad.Waveform.Frequency = 0
	expectInvalid(s.SetChannelConfig(instrument.CH1, bad), "frequency")
	bad = ch1
	bad.VoltsPerDivision = -1
	expectInvalid(s.SetChannelConfig(instrument.CH1, bad), "volts per division")
	bad = ch1
	bad.Waveform.Amplitude = -0.1
	expectInvalid(s.SetChannelConfig(instrument.CH1, bad), "amplitude")
	expectInvalid(s.SetChannelConfig(instrument.Channel(2), ch1), "channel")
	test.ExpectEquality(t, s.ChannelConfig(instrument.CH1), ch1)

	tb := s.TimebaseConfig()
	expectInvalid(s.SetTimebaseConfig(instrument.TimebaseConfig{}), "timebase")
	test.ExpectEquality(t, s.TimebaseConfig(), tb)

	tc := s.TriggerConfig()
	expectInvalid(s.SetTriggerConfig(instrument.TriggerConfig{HoldoffSeconds: -1}), "holdoff")
	test.ExpectEquality(t, s.TriggerConfig(), tc)

	g := s.Grid()
	expectInvalid(s.SetGrid(instrument.Grid{Divisions: 0, PointsPerDivision: 10, VerticalDivisions: 8}), "grid")
	test.ExpectEquality(t, s.Grid(), g)

	expectInvalid(s.SetFramesPerSecond(0), "fps")
	test.ExpectEquality(t, s.FramesPerSecond(), instrument.DefaultFramesPerSecond)
}

func TestGrid(t *testing.T) {
	s, clk := newScope(t)
	test.DemandSuccess(t, s.SetGrid(instrument.Grid{Divisions: 8, PointsPerDivision: 50, VerticalDivisions: 8}))
	tick(s, clk, 1)
	test.ExpectEquality(t, len(s.Buffer(instrument.CH1)), 400)
}

func TestMeasure(t *testing.T) {
	s, clk := newScope(t)
	tick(s, clk, 1)

	m := s.Measure(instrument.CH1)
	test.ExpectApproximate(t, m.VPP, 2.0, 1e-3)
	test.ExpectApproximate(t, m.VRMS, 1/math.Sqrt2, 1e-3)

	m = s.Measure(instrument.CH2)
	test.ExpectEquality(t, m.VPP, 1.0)
}

func TestSnapshot(t *testing.T) {
	s, clk := newScope(t)
	tick(s, clk, 1)

	snp := s.Snapshot()
	test.ExpectSuccess(t, snp.IsRunning)
	test.ExpectSuccess(t, snp.IsTriggered)
	test.ExpectEquality(t, snp.State, scope.Triggered)
	test.ExpectEquality(t, snp.TriggerCount, 1)

	// the snapshot buffers are copies
	snp.Buffers[instrument.CH1][0] = 100
	test.ExpectInequality(t, s.Buffer(instrument.CH1)[0], 100.0)
}

func TestLogging(t *testing.T) {
	s, _ := newScope(t)
	s.Quiet = false

	logger.Clear()
	s.ToggleRunning()
	s.ResetPhase()

	var b strings.Builder
	logger.Write(&b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "scope: stopped"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "scope: phase reset"))

	// rejected configurations are logged
	logger.Clear()
	_ = s.SetFramesPerSecond(-1)
	b.Reset()
	logger.Write(&b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "frame rate rejected"))

	// nothing is logged when the scope is quiet
	s.Quiet = true
	logger.Clear()
	s.ToggleRunning()
	b.Reset()
	logger.Write(&b)
	test.ExpectEquality(t, b.String(), "")
}

func TestVisualise(t *testing.T) {
	s, clk := newScope(t)
	tick(s, clk, 1)

	var b strings.Builder
	s.Visualise(&b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}
