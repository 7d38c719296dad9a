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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/padpointer/prefs"
	"github.com/jetsetilly/padpointer/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	// any string other than "true" is false
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectFailure(t, v.Set(1))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)

	// test string conversion to int
	test.ExpectSuccess(t, v.Set("99"))
	test.ExpectEquality(t, v.Get().(int), 99)

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 99)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")

	test.ExpectSuccess(t, v.Set(0.25))
	test.ExpectEquality(t, v.Load(), 0.25)

	test.ExpectSuccess(t, v.Set("0.5"))
	test.ExpectEquality(t, v.Load(), 0.5)

	test.ExpectSuccess(t, v.Set(7))
	test.ExpectEquality(t, v.Load(), 7.0)

	test.ExpectFailure(t, v.Set("abc"))
	test.ExpectEquality(t, v.Load(), 7.0)
}

func TestHooks(t *testing.T) {
	var v prefs.Float

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(float64) < 0 {
			return errors.New("negative")
		}
		return nil
	})

	var post float64
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(float64)
		return nil
	})

	test.ExpectSuccess(t, v.Set(0.1))
	test.ExpectEquality(t, post, 0.1)

	// pre hook rejects value and the stored value is unchanged
	test.ExpectFailure(t, v.Set(-0.1))
	test.ExpectEquality(t, v.Load(), 0.1)
	test.ExpectEquality(t, post, 0.1)
}

func TestCollection(t *testing.T) {
	c := prefs.NewCollection()

	var dz prefs.Float
	var inv prefs.Bool
	test.DemandSuccess(t, c.Add("deadzone", &dz, 0.1))
	test.DemandSuccess(t, c.Add("invert", &inv, true))

	// defaults are applied on Add()
	test.ExpectEquality(t, dz.Load(), 0.1)
	test.ExpectEquality(t, inv.Get().(bool), true)

	// duplicate keys are not allowed
	test.ExpectFailure(t, c.Add("deadzone", &dz, 0.2))

	test.ExpectEquality(t, c.String(), "deadzone :: 0.100\ninvert :: true\n")

	// command line overrides
	prefs.PushCommandLineStack("deadzone::0.3; unknown::1")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, dz.Load(), 0.3)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	// and back to defaults
	test.ExpectSuccess(t, inv.Set(false))
	test.ExpectSuccess(t, c.SetDefaults())
	test.ExpectEquality(t, dz.Load(), 0.1)
	test.ExpectEquality(t, inv.Get().(bool), true)
}
