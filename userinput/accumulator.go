// This file is part of Padpointer.
//
// Padpointer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padpointer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padpointer.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "math"

// Accumulator collects scaled axis output and releases it as whole units.
// The fractional remainder is kept for the next call to Take().
type Accumulator struct {
	remainder float64
}

// Take adds v to the remainder and returns the whole part, rounded towards
// zero. A zero value, or a change in the sign of v, discards the remainder.
func (a *Accumulator) Take(v float64) int {
	if v == 0 {
		a.remainder = 0
		return 0
	}
	if (v > 0 && a.remainder < 0) || (v < 0 && a.remainder > 0) {
		a.remainder = 0
	}
	a.remainder += v
	whole := math.Trunc(a.remainder)
	a.remainder -= whole
	return int(whole)
}

// Reset discards the remainder.
func (a *Accumulator) Reset() {
	a.remainder = 0
}
