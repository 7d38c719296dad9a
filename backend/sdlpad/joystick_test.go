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

package sdlpad

import (
	"testing"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/test"
)

type testJoystick struct {
	guid       string
	name       string
	controller bool
}

// an enumerator that lists joysticks without calling into SDL
func newTestEnumerator(joys *[]testJoystick, updates *int) *enumerator {
	drv := &Driver{
		joys: joystickList{
			update: func() {
				*updates++
			},
			count: func() int {
				return len(*joys)
			},
			isController: func(idx int) bool {
				return (*joys)[idx].controller
			},
			guid: func(idx int) string {
				return (*joys)[idx].guid
			},
			name: func(idx int) string {
				return (*joys)[idx].name
			},
		},
	}
	return &enumerator{drv: drv, valid: true}
}

func TestJoystickDevices(t *testing.T) {
	joys := []testJoystick{
		{guid: "0300aaaa", name: "Stick"},
		{guid: "0300bbbb", name: "Gamepad", controller: true},
		{guid: "0300aaaa", name: "Stick"},
		{guid: "0300cccc", name: "Wheel"},
		{guid: "0300aaaa", name: "Stick"},
	}
	var updates int
	enum := newTestEnumerator(&joys, &updates)

	devs, err := enum.Devices()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, updates, 1)

	// devices with a game controller mapping belong to the primary backend.
	// identical devices are told apart by a count
	test.DemandEquality(t, len(devs), 4)
	test.ExpectEquality(t, devs[0], backend.DeviceInfo{ID: "0300aaaa", Name: "Stick"})
	test.ExpectEquality(t, devs[1], backend.DeviceInfo{ID: "0300aaaa#1", Name: "Stick"})
	test.ExpectEquality(t, devs[2], backend.DeviceInfo{ID: "0300cccc", Name: "Wheel"})
	test.ExpectEquality(t, devs[3], backend.DeviceInfo{ID: "0300aaaa#2", Name: "Stick"})

	_, idxs := enum.devices()
	test.DemandEquality(t, len(idxs), 4)
	test.ExpectEquality(t, idxs[1], 2)
	test.ExpectEquality(t, idxs[2], 3)

	joys = nil
	devs, err = enum.Devices()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(devs), 0)
}

func TestJoystickOpen(t *testing.T) {
	joys := []testJoystick{
		{guid: "0300aaaa", name: "Stick"},
	}
	var updates int
	enum := newTestEnumerator(&joys, &updates)

	_, err := enum.Open("0300ffff")
	test.ExpectSuccess(t, backend.IsFault(err, backend.FaultInputLost))

	dev, err := enum.Open("0300aaaa")
	test.DemandSuccess(t, err)

	// the joystick is not opened until it is acquired
	test.ExpectFailure(t, dev.Connected())
	_, err = dev.Read()
	test.ExpectSuccess(t, backend.IsFault(err, backend.FaultNotAcquired))

	// the device detaches before it is acquired
	joys = nil
	err = dev.Acquire()
	test.ExpectSuccess(t, backend.IsFault(err, backend.FaultInputLost))
	test.ExpectSuccess(t, dev.Release())
}

func TestJoystickClosedEnumerator(t *testing.T) {
	joys := []testJoystick{
		{guid: "0300aaaa", name: "Stick"},
	}
	var updates int
	enum := newTestEnumerator(&joys, &updates)

	dev, err := enum.Open("0300aaaa")
	test.DemandSuccess(t, err)

	// the joystick subsystem is not shut down by an enumerator after the
	// driver has quit
	enum.drv.quit = true
	test.ExpectSuccess(t, enum.Close())
	test.ExpectFailure(t, enum.valid)
	test.ExpectSuccess(t, enum.Close())

	_, err = enum.Devices()
	test.ExpectFailure(t, err)
	_, err = enum.Open("0300aaaa")
	test.ExpectFailure(t, err)

	err = dev.Acquire()
	test.ExpectSuccess(t, backend.IsFault(err, backend.FaultInputLost))

	// the joystick list is never consulted by a closed enumerator
	test.ExpectEquality(t, updates, 1)
}
