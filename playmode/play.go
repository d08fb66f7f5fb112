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
	"fmt"
	"time"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/measure"
	"github.com/jetsetilly/gopherscope/instrument/scope"
	"github.com/jetsetilly/gopherscope/scheduler"
	"github.com/jetsetilly/gopherscope/terminal"
)

// Options for the Play() function.
type Options struct {
	// stop after the specified number of ticks. zero means no limit
	MaxTicks int

	// the number of ticks between status updates. zero means a status
	// update is produced once a second for non-interactive terminals and
	// four times a second for interactive terminals
	StatusInterval int

	// filename for the state graph written by the 'v' key. the key is
	// ignored if the filename is empty
	VisualiseFile string
}

// Play runs the scope until the user quits, the maximum number of ticks is
// reached or the context is cancelled. A cancelled context is not
// considered to be an error.
func Play(ctx context.Context, term terminal.Terminal, scp *scope.Scope, clk scheduler.Clock, opts Options) error {
	kb := keyboard{
		scp:           scp,
		visualiseFile: opts.VisualiseFile,
	}

	interval := opts.StatusInterval
	if interval <= 0 {
		interval = scp.FramesPerSecond()
		if term.IsInteractive() {
			interval /= 4
		}
		if interval <= 0 {
			interval = 1
		}
	}

	if term.IsInteractive() {
		term.Print("%s\n\n", KeyHelp)
	}

	done := make(chan bool)
	defer close(done)
	keys := readKeys(term, done)

	var ticks int
	var quit bool

	err := scheduler.Run(ctx, clk, func(now time.Duration) bool {
		// drain all pending key presses before ticking
		for draining := true; draining && !quit; {
			select {
			case k, ok := <-keys:
				if !ok {
					keys = nil
					draining = false
					break
				}
				quit = kb.handleKey(k)
			default:
				draining = false
			}
		}
		if quit {
			return false
		}

		scp.Tick(now)
		ticks++

		if ticks%interval == 0 {
			term.Status(Status(scp))
		}

		return opts.MaxTicks <= 0 || ticks < opts.MaxTicks
	})

	// final status line
	term.Status(Status(scp))

	if err == context.Canceled {
		return nil
	}
	return err
}

// readKeys starts a goroutine that reads from the terminal and sends every
// byte to the returned channel. The channel is closed when the terminal
// returns an error, including io.EOF.
func readKeys(term terminal.Terminal, done chan bool) chan byte {
	keys := make(chan byte, 16)
	go func() {
		defer close(keys)
		b := make([]byte, 16)
		for {
			n, err := term.Read(b)
			for _, k := range b[:n] {
				select {
				case keys <- k:
				case <-done:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}

// Status returns a one line summary of the scope.
func Status(scp *scope.Scope) string {
	return fmt.Sprintf("%s | ch1 %s | ch2 %s", scp, channelStatus(scp, instrument.CH1), channelStatus(scp, instrument.CH2))
}

func channelStatus(scp *scope.Scope, ch instrument.Channel) string {
	cfg := scp.ChannelConfig(ch)
	if !cfg.Enabled {
		return "off"
	}
	m := scp.Measure(ch)
	return fmt.Sprintf("%s pp=%s f=%s", cfg.Waveform.Shape,
		measure.Engineering(m.VPP, "V"), measure.Engineering(m.Frequency, "Hz"))
}
