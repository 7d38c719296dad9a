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

// Package joydev implements a secondary controller backend with the
// 0xcafed00d/joystick package. On Linux this reads the joystick devices in
// /dev/input directly and does not require SDL.
//
// The package does not provide a primary backend. Use backend.Mixed to pair
// it with a driver that does.
package joydev

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xcafed00d/joystick"
	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/logger"
)

// DefaultScan is the number of joystick ids that are scanned by the
// enumerator.
const DefaultScan = 8

// axes and buttons read from a joystick
const (
	moveX     = 0
	moveY     = 1
	scrollX   = 2
	scrollY   = 3
	primary   = 0
	secondary = 1
)

// opener is the function used to open a joystick. replaced during testing.
type opener func(id int) (joystick.Joystick, error)

// Driver implements the backend.Driver interface.
type Driver struct {
	scan int
	open opener
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The scan argument is the number of joystick ids to scan when enumerating
// devices. A scan value of zero or less uses DefaultScan.
func NewDriver(scan int) *Driver {
	if scan <= 0 {
		scan = DefaultScan
	}
	return &Driver{
		scan: scan,
		open: joystick.Open,
	}
}

// Primary implements the backend.Driver interface. The joydev driver has no
// primary backend and always returns an error.
func (drv *Driver) Primary() (backend.Device, error) {
	return nil, errors.New("joydev: no primary backend")
}

// NewEnumerator implements the backend.Driver interface.
func (drv *Driver) NewEnumerator() (backend.Enumerator, error) {
	return &enumerator{drv: drv, valid: true}, nil
}

// the identity of a joystick is the id and the name. if a different joystick
// is plugged in with the same id, the identity changes
func identity(id int, name string) backend.Identity {
	return backend.Identity(fmt.Sprintf("js%d:%s", id, name))
}

type enumerator struct {
	drv *Driver

	crit  sync.Mutex
	valid bool
}

// Valid implements the backend.Enumerator interface.
func (enum *enumerator) Valid() bool {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	return enum.valid
}

type scanned struct {
	info backend.DeviceInfo
	id   int
}

func (enum *enumerator) scan() []scanned {
	var devs []scanned
	for id := 0; id < enum.drv.scan; id++ {
		js, err := enum.drv.open(id)
		if err != nil {
			continue
		}
		name := js.Name()
		js.Close()
		devs = append(devs, scanned{
			info: backend.DeviceInfo{ID: identity(id, name), Name: name},
			id:   id,
		})
	}
	return devs
}

// Devices implements the backend.Enumerator interface.
func (enum *enumerator) Devices() ([]backend.DeviceInfo, error) {
	if !enum.Valid() {
		return nil, errors.New("joydev: enumerator is closed")
	}
	var infos []backend.DeviceInfo
	for _, p := range enum.scan() {
		infos = append(infos, p.info)
	}
	return infos, nil
}

// Open implements the backend.Enumerator interface.
func (enum *enumerator) Open(id backend.Identity) (backend.Device, error) {
	if !enum.Valid() {
		return nil, errors.New("joydev: enumerator is closed")
	}
	for _, p := range enum.scan() {
		if p.info.ID == id {
			return &device{drv: enum.drv, jsid: p.id, id: id, name: p.info.Name}, nil
		}
	}
	return nil, backend.Faultf(backend.FaultInputLost, "joydev: %s not attached", id)
}

// Close implements the backend.Enumerator interface.
func (enum *enumerator) Close() error {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	enum.valid = false
	return nil
}

type device struct {
	drv  *Driver
	jsid int
	id   backend.Identity
	name string

	crit sync.Mutex
	js   joystick.Joystick
}

// Connected implements the backend.Device interface.
func (dev *device) Connected() bool {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.js != nil
}

// Acquire implements the backend.Device interface.
func (dev *device) Acquire() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.js != nil {
		return nil
	}

	js, err := dev.drv.open(dev.jsid)
	if err != nil {
		return backend.NewFault(backend.FaultNotAcquired, fmt.Errorf("joydev: %w", err))
	}

	// the joystick id now refers to a different device
	if identity(dev.jsid, js.Name()) != dev.id {
		js.Close()
		return backend.Faultf(backend.FaultInputLost, "joydev: %s replaced by %s", dev.id, js.Name())
	}

	dev.js = js
	logger.Logf(logger.Allow, "joydev", "joystick: %s (%d axes, %d buttons)", dev.name, js.AxisCount(), js.ButtonCount())

	return nil
}

// Read implements the backend.Device interface.
func (dev *device) Read() (backend.State, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.js == nil {
		return backend.State{}, backend.Faultf(backend.FaultNotAcquired, "joydev: %s not open", dev.id)
	}

	st, err := dev.js.Read()
	if err != nil {
		dev.js.Close()
		dev.js = nil
		return backend.State{}, backend.NewFault(backend.FaultInputLost, fmt.Errorf("joydev: %w", err))
	}

	axis := func(a int) float64 {
		if a >= len(st.AxisData) {
			return 0
		}
		return normalise(st.AxisData[a])
	}
	button := func(b uint) bool {
		return st.Buttons&(1<<b) != 0
	}

	return backend.State{
		MoveX:     axis(moveX),
		MoveY:     axis(moveY),
		ScrollX:   axis(scrollX),
		ScrollY:   axis(scrollY),
		Primary:   button(primary),
		Secondary: button(secondary),
	}, nil
}

// Release implements the backend.Device interface.
func (dev *device) Release() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	if dev.js != nil {
		dev.js.Close()
		dev.js = nil
	}
	return nil
}

// normalise axis data. the joystick package reports values in the range
// -32767 to 32768.
func normalise(v int) float64 {
	f := float64(v) / 32767.0
	return max(-1, min(1, f))
}
