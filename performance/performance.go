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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherscope/curated"
	"github.com/jetsetilly/gopherscope/instrument/scope"
	"github.com/jetsetilly/gopherscope/scheduler"
)

// Check the performance of the scope by running it for the specified number
// of ticks as fast as possible. The timestamps of the ticks are those that
// would be seen if the scope was running in real time.
//
// Profiles are generated as defined by the Profile argument.
func Check(output io.Writer, scp *scope.Scope, ticks int, profile Profile) error {
	if ticks <= 0 {
		return curated.Errorf("performance: %v", fmt.Sprintf("number of ticks must be positive (%d)", ticks))
	}

	clk, err := scheduler.NewManual(scp.FramesPerSecond())
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var count int
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		err := scheduler.Run(context.Background(), clk, func(now time.Duration) bool {
			scp.Tick(now)
			count++
			return count < ticks
		})
		elapsed = time.Since(start)
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate, realtime := CalcRate(count, elapsed.Seconds(), scp.FramesPerSecond())
	output.Write([]byte(fmt.Sprintf("%.2f ticks/s (%d ticks in %.2f seconds) %.1fx real time\n", rate, count, elapsed.Seconds(), realtime)))

	return nil
}

// CalcRate takes the number of ticks and duration (in seconds) and returns
// the ticks-per-second and how many times faster than real time that is,
// given the nominal frame rate.
func CalcRate(numTicks int, duration float64, framesPerSecond int) (rate float64, realtime float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numTicks) / duration
	if framesPerSecond > 0 {
		realtime = rate / float64(framesPerSecond)
	}
	return rate, realtime
}
