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

package playmode

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/scope"
	"github.com/jetsetilly/gopherscope/scheduler"
	"github.com/jetsetilly/gopherscope/terminal/plainterm"
	"github.com/jetsetilly/gopherscope/test"
)

func newScope(t *testing.T) (*scope.Scope, *scheduler.Manual) {
	t.Helper()
	scp := scope.NewScope(nil)
	scp.Quiet = true
	clk, err := scheduler.NewManual(scp.FramesPerSecond())
	test.DemandSuccess(t, err)
	return scp, clk
}

func TestKeyboard(t *testing.T) {
	scp, _ := newScope(t)
	kb := keyboard{scp: scp}

	test.ExpectFailure(t, kb.handleKey(' '))
	test.ExpectFailure(t, scp.IsRunning())
	test.ExpectFailure(t, kb.handleKey(' '))
	test.ExpectSuccess(t, scp.IsRunning())

	kb.handleKey('m')
	test.ExpectEquality(t, scp.TriggerConfig().Mode, instrument.Normal)
	kb.handleKey('m')
	test.ExpectEquality(t, scp.TriggerConfig().Mode, instrument.Single)
	kb.handleKey('m')
	test.ExpectEquality(t, scp.TriggerConfig().Mode, instrument.Auto)

	kb.handleKey('e')
	test.ExpectEquality(t, scp.TriggerConfig().Edge, instrument.Falling)
	kb.handleKey('e')
	test.ExpectEquality(t, scp.TriggerConfig().Edge, instrument.Rising)

	kb.handleKey('+')
	kb.handleKey('+')
	kb.handleKey('-')
	test.ExpectApproximate(t, scp.TriggerConfig().Level, levelStep, 1e-9)

	kb.handleKey('s')
	test.ExpectEquality(t, scp.TriggerConfig().Source, instrument.CH2)
	kb.handleKey('s')
	test.ExpectEquality(t, scp.TriggerConfig().Source, instrument.CH1)

	kb.handleKey('2')
	test.ExpectFailure(t, scp.ChannelConfig(instrument.CH2).Enabled)
	kb.handleKey('2')
	test.ExpectSuccess(t, scp.ChannelConfig(instrument.CH2).Enabled)

	kb.handleKey('w')
	test.ExpectEquality(t, scp.ChannelConfig(instrument.CH1).Waveform.Shape, instrument.Square)
	for range instrument.Shapes[1:] {
		kb.handleKey('w')
	}
	test.ExpectEquality(t, scp.ChannelConfig(instrument.CH1).Waveform.Shape, instrument.Sine)

	// unknown keys are ignored
	test.ExpectFailure(t, kb.handleKey('x'))

	test.ExpectSuccess(t, kb.handleKey('q'))
	test.ExpectSuccess(t, kb.handleKey(27))
}

func TestArmKey(t *testing.T) {
	scp, clk := newScope(t)
	kb := keyboard{scp: scp}

	kb.handleKey('m')
	kb.handleKey('m')
	test.DemandEquality(t, scp.TriggerConfig().Mode, instrument.Single)

	scp.Tick(clk.Wait())
	test.ExpectFailure(t, scp.IsRunning())

	kb.handleKey('a')
	test.ExpectSuccess(t, scp.IsRunning())
	test.ExpectSuccess(t, scp.Armed())

	kb.handleKey('z')
	test.ExpectEquality(t, scp.Runtime().Phase[instrument.CH1], 0.0)
}

func TestVisualiseKey(t *testing.T) {
	scp, clk := newScope(t)
	scp.Tick(clk.Wait())

	pth := filepath.Join(t.TempDir(), "state.dot")
	kb := keyboard{scp: scp, visualiseFile: pth}
	kb.handleKey('v')

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))

	// no file is written if there is no filename
	kb.visualiseFile = ""
	kb.handleKey('v')
}

func TestPlay(t *testing.T) {
	scp, clk := newScope(t)

	out, err := test.NewCappedWriter(4096)
	test.DemandSuccess(t, err)
	term := plainterm.NewTerminal(nil, out)

	err = Play(context.Background(), term, scp, clk, Options{
		MaxTicks:       120,
		StatusInterval: 60,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, clk.Now(), 120*clk.Frame())

	// two status lines plus the final status line
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.Contains(lines[0], "ch1 sine"))
	test.ExpectSuccess(t, strings.Contains(lines[0], "ch2 square"))
}

func TestPlayQuit(t *testing.T) {
	scp, clk := newScope(t)
	term := plainterm.NewTerminal(strings.NewReader("2q"), nil)

	err := Play(context.Background(), term, scp, clk, Options{})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, scp.ChannelConfig(instrument.CH2).Enabled)
}

func TestPlayCancelled(t *testing.T) {
	scp, clk := newScope(t)
	term := plainterm.NewTerminal(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Play(ctx, term, scp, clk, Options{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, clk.Now(), 0)
}

func TestStatus(t *testing.T) {
	scp, clk := newScope(t)
	scp.Tick(clk.Wait())

	s := Status(scp)
	test.ExpectSuccess(t, strings.HasPrefix(s, "triggered auto rising"))
	test.ExpectSuccess(t, strings.Contains(s, "pp=2.000V"))

	cfg := scp.ChannelConfig(instrument.CH2)
	cfg.Enabled = false
	test.DemandSuccess(t, scp.SetChannelConfig(instrument.CH2, cfg))
	test.ExpectSuccess(t, strings.HasSuffix(Status(scp), "ch2 off"))
}
