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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/padpointer/test"
	"github.com/jetsetilly/padpointer/userinput"
)

func TestAccumulator(t *testing.T) {
	var a userinput.Accumulator

	test.ExpectEquality(t, a.Take(0.5), 0)
	test.ExpectEquality(t, a.Take(0.5), 1)
	test.ExpectEquality(t, a.Take(3.25), 3)
	test.ExpectEquality(t, a.Take(0.75), 1)

	// negative values round towards zero
	test.ExpectEquality(t, a.Take(-0.5), 0)
	test.ExpectEquality(t, a.Take(-0.75), -1)

	// change of direction discards the remainder
	test.ExpectEquality(t, a.Take(0.75), 0)
	test.ExpectEquality(t, a.Take(0.25), 1)

	// zero discards the remainder
	test.ExpectEquality(t, a.Take(0.5), 0)
	test.ExpectEquality(t, a.Take(0), 0)
	test.ExpectEquality(t, a.Take(0.5), 0)

	a.Reset()
	test.ExpectEquality(t, a.Take(0.9), 0)
}
