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

package joydev

import (
	"errors"
	"testing"

	"github.com/0xcafed00d/joystick"
	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/test"
)

type mockJoystick struct {
	name    string
	state   joystick.State
	readErr error
	closed  *int
}

func (m *mockJoystick) AxisCount() int   { return len(m.state.AxisData) }
func (m *mockJoystick) ButtonCount() int { return 4 }
func (m *mockJoystick) Name() string     { return m.name }
func (m *mockJoystick) Close()           { *m.closed++ }

func (m *mockJoystick) Read() (joystick.State, error) {
	return m.state, m.readErr
}

type mockSystem struct {
	names  map[int]string
	state  joystick.State
	err    error
	closed int
}

func (sys *mockSystem) open(id int) (joystick.Joystick, error) {
	name, ok := sys.names[id]
	if !ok {
		return nil, errors.New("no such joystick")
	}
	return &mockJoystick{name: name, state: sys.state, readErr: sys.err, closed: &sys.closed}, nil
}

func newMockDriver(sys *mockSystem) *Driver {
	drv := NewDriver(4)
	drv.open = sys.open
	return drv
}

func TestEnumerate(t *testing.T) {
	sys := &mockSystem{names: map[int]string{0: "pad a", 2: "pad b"}}
	drv := newMockDriver(sys)

	_, err := drv.Primary()
	test.ExpectFailure(t, err)

	enum, err := drv.NewEnumerator()
	test.DemandSuccess(t, err)

	devs, err := enum.Devices()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(devs), 2)
	test.ExpectEquality(t, devs[0].ID, backend.Identity("js0:pad a"))
	test.ExpectEquality(t, devs[1].ID, backend.Identity("js2:pad b"))

	// probing closes every joystick it opens
	test.ExpectEquality(t, sys.closed, 2)

	test.ExpectSuccess(t, enum.Close())
	test.ExpectFailure(t, enum.Valid())
	_, err = enum.Devices()
	test.ExpectFailure(t, err)
}

func TestReadDevice(t *testing.T) {
	sys := &mockSystem{
		names: map[int]string{1: "pad"},
		state: joystick.State{
			AxisData: []int{32767, -32767, 0},
			Buttons:  0b10,
		},
	}
	drv := newMockDriver(sys)
	enum, _ := drv.NewEnumerator()

	dev, err := enum.Open("js1:pad")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dev.Connected())

	_, err = dev.Read()
	test.ExpectEquality(t, backend.Classify(err), backend.FaultNotAcquired)

	test.DemandSuccess(t, dev.Acquire())
	test.ExpectSuccess(t, dev.Connected())

	st, err := dev.Read()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.MoveX, 1.0)
	test.ExpectEquality(t, st.MoveY, -1.0)
	test.ExpectEquality(t, st.ScrollX, 0.0)

	// missing axis reads as zero
	test.ExpectEquality(t, st.ScrollY, 0.0)
	test.ExpectFailure(t, st.Primary)
	test.ExpectSuccess(t, st.Secondary)

	test.ExpectSuccess(t, dev.Release())
	test.ExpectFailure(t, dev.Connected())
}

func TestReadError(t *testing.T) {
	sys := &mockSystem{
		names: map[int]string{0: "pad"},
		err:   errors.New("unplugged"),
	}
	drv := newMockDriver(sys)
	enum, _ := drv.NewEnumerator()

	dev, err := enum.Open("js0:pad")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dev.Acquire())

	_, err = dev.Read()
	test.ExpectEquality(t, backend.Classify(err), backend.FaultInputLost)
	test.ExpectFailure(t, dev.Connected())
}

func TestReplacedDevice(t *testing.T) {
	sys := &mockSystem{names: map[int]string{0: "pad a"}}
	drv := newMockDriver(sys)
	enum, _ := drv.NewEnumerator()

	dev, err := enum.Open("js0:pad a")
	test.DemandSuccess(t, err)

	// a different joystick now has the same id
	sys.names[0] = "pad b"
	err = dev.Acquire()
	test.ExpectEquality(t, backend.Classify(err), backend.FaultInputLost)

	// and the original is not found
	_, err = enum.Open("js0:pad a")
	test.ExpectEquality(t, backend.Classify(err), backend.FaultInputLost)

	// joystick that can not be opened
	delete(sys.names, 0)
	err = dev.Acquire()
	test.ExpectEquality(t, backend.Classify(err), backend.FaultNotAcquired)
}
