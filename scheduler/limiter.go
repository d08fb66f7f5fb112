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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherscope/curated"
)

// Limiter is a Clock that produces ticks at a fixed rate in real time.
//
// This is a rough and ready method of limiting and is probably only any good
// if the work done between ticks is well within the duration of a frame.
type Limiter struct {
	start time.Time

	// the duration of a frame in nanoseconds. atomic access because
	// SetLimit() can be called from a goroutine other than the one calling
	// Wait()
	frame atomic.Int64

	tick chan bool
	quit chan bool
	stop sync.Once
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The Limiter starts ticking immediately. Stop() should be called when the
// Limiter is no longer required.
func NewLimiter(framesPerSecond int) (*Limiter, error) {
	lim := &Limiter{
		start: time.Now(),
		tick:  make(chan bool),
		quit:  make(chan bool),
	}

	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	go func() {
		adjusted := lim.period()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// adjust the next sleep by how late this one was
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.period()
			if adjusted < 0 {
				adjusted = lim.period()
			}
			t = nt
		}
	}()

	return lim, nil
}

func (lim *Limiter) period() time.Duration {
	return time.Duration(lim.frame.Load())
}

// SetLimit changes the rate at which the Limiter ticks.
func (lim *Limiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}
	lim.frame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Wait implements the Clock interface. The timestamp is the time since the
// Limiter was created.
func (lim *Limiter) Wait() time.Duration {
	<-lim.tick
	return time.Since(lim.start)
}

// HasWaited returns true and the timestamp of the tick if a tick is due.
// It returns false if the tick is still yet to happen. It never blocks.
func (lim *Limiter) HasWaited() (time.Duration, bool) {
	select {
	case <-lim.tick:
		return time.Since(lim.start), true
	default:
		return 0, false
	}
}

// Stop the Limiter. Wait() must not be called after Stop() because it will
// block forever.
func (lim *Limiter) Stop() {
	lim.stop.Do(func() {
		close(lim.quit)
	})
}
