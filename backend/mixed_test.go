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

package backend_test

import (
	"testing"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/backend/fake"
	"github.com/jetsetilly/padpointer/test"
)

func TestMixed(t *testing.T) {
	a := fake.NewDriver()
	b := fake.NewDriver()

	m := backend.Mixed{PrimaryFrom: a, SecondaryFrom: b}

	p, err := m.Primary()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, backend.Device(a.PrimaryDevice()))

	_, err = m.NewEnumerator()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(a.Enumerators()), 0)
	test.ExpectEquality(t, len(b.Enumerators()), 1)

	_, err = backend.Mixed{}.Primary()
	test.ExpectFailure(t, err)
	_, err = backend.Mixed{}.NewEnumerator()
	test.ExpectFailure(t, err)
}
