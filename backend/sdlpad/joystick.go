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
	"fmt"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/logger"
	"github.com/jetsetilly/padpointer/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// axes and buttons read from a joystick
const (
	joyMoveX     = 0
	joyMoveY     = 1
	joyScrollX   = 2
	joyScrollY   = 3
	joyPrimary   = 0
	joySecondary = 1
)

// the SDL functions used to list joysticks. replaced during testing
type joystickList struct {
	update       func()
	count        func() int
	isController func(idx int) bool
	guid         func(idx int) string
	name         func(idx int) string
}

func sdlJoystickList() joystickList {
	return joystickList{
		update: func() {
			sdl.JoystickUpdate()
		},
		count: func() int {
			return sdl.NumJoysticks()
		},
		isController: func(idx int) bool {
			return sdl.IsGameController(idx)
		},
		guid: func(idx int) string {
			return sdl.JoystickGetGUIDString(sdl.JoystickGetDeviceGUID(idx))
		},
		name: func(idx int) string {
			return sdl.JoystickNameForIndex(idx)
		},
	}
}

type enumerator struct {
	drv   *Driver
	valid bool
}

// Valid implements the backend.Enumerator interface.
func (enum *enumerator) Valid() bool {
	enum.drv.crit.Lock()
	defer enum.drv.crit.Unlock()
	return enum.valid && !enum.drv.quit && sdl.WasInit(sdl.INIT_JOYSTICK) != 0
}

// devices returns the list of attached joysticks along with their device
// index. devices with a game controller mapping are left to the primary
// backend. must be called with the driver lock held
func (enum *enumerator) devices() ([]backend.DeviceInfo, []int) {
	joys := enum.drv.joys
	joys.update()

	var devs []backend.DeviceInfo
	var idxs []int

	// identical devices share a GUID. the identity of the second and
	// subsequent devices is suffixed with a count
	seen := make(map[string]int)

	for i := range joys.count() {
		if joys.isController(i) {
			continue
		}
		guid := joys.guid(i)
		id := backend.Identity(guid)
		if n := seen[guid]; n > 0 {
			id = backend.Identity(fmt.Sprintf("%s#%d", guid, n))
		}
		seen[guid]++

		devs = append(devs, backend.DeviceInfo{
			ID:   id,
			Name: joys.name(i),
		})
		idxs = append(idxs, i)
	}

	return devs, idxs
}

// Devices implements the backend.Enumerator interface.
func (enum *enumerator) Devices() ([]backend.DeviceInfo, error) {
	enum.drv.crit.Lock()
	defer enum.drv.crit.Unlock()
	if !enum.valid || enum.drv.quit {
		return nil, fmt.Errorf("sdl: joystick enumerator is closed")
	}
	devs, _ := enum.devices()
	return devs, nil
}

// Open implements the backend.Enumerator interface.
func (enum *enumerator) Open(id backend.Identity) (backend.Device, error) {
	enum.drv.crit.Lock()
	defer enum.drv.crit.Unlock()
	if !enum.valid || enum.drv.quit {
		return nil, fmt.Errorf("sdl: joystick enumerator is closed")
	}

	devs, _ := enum.devices()
	for _, d := range devs {
		if d.ID == id {
			return &joystick{enum: enum, id: id, name: d.Name}, nil
		}
	}

	return nil, backend.Faultf(backend.FaultInputLost, "sdl: joystick %s not attached", id)
}

// Close implements the backend.Enumerator interface.
func (enum *enumerator) Close() error {
	enum.drv.crit.Lock()
	defer enum.drv.crit.Unlock()
	if !enum.valid {
		return nil
	}
	enum.valid = false
	if !enum.drv.quit {
		sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
	}
	return nil
}

// joystick is the secondary backend.
type joystick struct {
	enum *enumerator
	id   backend.Identity
	name string
	joy  *sdl.Joystick
}

// Connected implements the backend.Device interface.
func (js *joystick) Connected() bool {
	js.enum.drv.crit.Lock()
	defer js.enum.drv.crit.Unlock()
	return js.joy != nil && js.joy.Attached()
}

// Acquire implements the backend.Device interface. The joystick is opened by
// looking up the device index for the identity. The index of a device can
// change between calls.
func (js *joystick) Acquire() error {
	js.enum.drv.crit.Lock()
	defer js.enum.drv.crit.Unlock()

	if js.joy != nil {
		if js.joy.Attached() {
			return nil
		}
		js.joy.Close()
		js.joy = nil
	}

	if !js.enum.valid || js.enum.drv.quit {
		return backend.Faultf(backend.FaultInputLost, "sdl: joystick enumerator is closed")
	}

	devs, idxs := js.enum.devices()
	for i, d := range devs {
		if d.ID != js.id {
			continue
		}
		joy := sdl.JoystickOpen(idxs[i])
		if joy == nil {
			return backend.NewFault(backend.FaultNotAcquired, fmt.Errorf("sdl: %w", sdl.GetError()))
		}
		js.joy = joy
		logger.Logf(logger.Allow, "sdl", "joystick: %s (%d axes, %d buttons)", js.name, joy.NumAxes(), joy.NumButtons())
		return nil
	}

	return backend.Faultf(backend.FaultInputLost, "sdl: joystick %s not attached", js.id)
}

// Read implements the backend.Device interface.
func (js *joystick) Read() (backend.State, error) {
	js.enum.drv.crit.Lock()
	defer js.enum.drv.crit.Unlock()

	if js.joy == nil {
		return backend.State{}, backend.Faultf(backend.FaultNotAcquired, "sdl: joystick %s not open", js.id)
	}

	sdl.JoystickUpdate()
	if !js.joy.Attached() {
		return backend.State{}, backend.Faultf(backend.FaultInputLost, "sdl: joystick %s detached", js.id)
	}

	naxes := js.joy.NumAxes()
	axis := func(a int) float64 {
		if a >= naxes {
			return 0
		}
		return userinput.Normalise(js.joy.Axis(a))
	}

	nbuttons := js.joy.NumButtons()
	button := func(b int) bool {
		if b >= nbuttons {
			return false
		}
		return js.joy.Button(b) == 1
	}

	return backend.State{
		MoveX:     axis(joyMoveX),
		MoveY:     axis(joyMoveY),
		ScrollX:   axis(joyScrollX),
		ScrollY:   axis(joyScrollY),
		Primary:   button(joyPrimary),
		Secondary: button(joySecondary),
	}, nil
}

// Release implements the backend.Device interface.
func (js *joystick) Release() error {
	js.enum.drv.crit.Lock()
	defer js.enum.drv.crit.Unlock()
	if js.joy != nil {
		js.joy.Close()
		js.joy = nil
	}
	return nil
}
