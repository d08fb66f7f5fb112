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

package instrument

import (
	"math"

	"github.com/jetsetilly/gopherscope/curated"
)

// InvalidConfiguration is the curated pattern for all configuration errors.
const InvalidConfiguration = "invalid configuration: %v"

// MinFrequency is the smallest frequency used in angular frequency
// calculations. Frequencies below this value are clamped to prevent division
// by zero.
const MinFrequency = 1e-9

// MinAmplitude is the smallest amplitude used when normalising a trigger
// level against a waveform.
const MinAmplitude = 1e-12

func invalid(detail string, values ...interface{}) error {
	return curated.Errorf(InvalidConfiguration, curated.Errorf(detail, values...))
}

// finite returns false if v is NaN or infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
