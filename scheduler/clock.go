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

package scheduler

import (
	"context"
	"time"

	"github.com/jetsetilly/gopherscope/curated"
)

// InvalidRate is the curated pattern for a rate that cannot be used.
const InvalidRate = "scheduler: invalid rate (%d)"

// Clock is the source of ticks.
type Clock interface {
	// Wait until the next tick is due and return its timestamp. The
	// timestamp of a tick is always greater than the timestamp of the
	// previous tick.
	Wait() time.Duration
}

// Manual is a Clock that advances by exactly one frame every time Wait() is
// called. It never blocks.
type Manual struct {
	frame time.Duration
	now   time.Duration
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual(framesPerSecond int) (*Manual, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}
	return &Manual{
		frame: time.Second / time.Duration(framesPerSecond),
	}, nil
}

// Wait implements the Clock interface.
func (m *Manual) Wait() time.Duration {
	m.now += m.frame
	return m.now
}

// Advance the clock by the specified duration, without producing a tick.
func (m *Manual) Advance(d time.Duration) {
	if d > 0 {
		m.now += d
	}
}

// Now returns the timestamp of the most recent tick.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Frame returns the duration of one frame.
func (m *Manual) Frame() time.Duration {
	return m.frame
}

// Run calls the tick function with the timestamp of every tick produced by
// the clock. The loop ends when the tick function returns false, in which
// case the error is nil, or when the context is cancelled, in which case the
// error from the context is returned.
func Run(ctx context.Context, clk Clock, tick func(now time.Duration) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !tick(clk.Wait()) {
			return nil
		}
	}
}
