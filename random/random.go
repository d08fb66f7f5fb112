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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a random number generator used for the noise component of a
// synthesised waveform. It is not safe for concurrent use.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for testing where the noise must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(zeroSeed bool) *Random {
	r := &Random{ZeroSeed: zeroSeed}
	r.Reset()
	return r
}

// Reset the sequence of random numbers.
func (r *Random) Reset() {
	if r.ZeroSeed {
		r.rnd = rand.New(rand.NewSource(0))
		return
	}
	r.rnd = rand.New(rand.NewSource(baseSeed))
}

// Float64 returns a number in the half-open interval [0.0,1.0).
func (r *Random) Float64() float64 {
	if r.rnd == nil {
		r.Reset()
	}
	return r.rnd.Float64()
}

// Uniform returns a uniformly distributed number in the range -limit to
// +limit.
func (r *Random) Uniform(limit float64) float64 {
	return (r.Float64()*2 - 1) * limit
}
