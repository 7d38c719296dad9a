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
	"sync"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Driver implements the backend.Driver interface with SDL.
type Driver struct {
	// serialises every call into SDL
	crit sync.Mutex

	primary *gamepad
	joys    joystickList
	quit    bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
// Driver.Quit() should be called when the driver is no longer required.
func NewDriver() (*Driver, error) {
	// controllers should be read even when the program does not have focus.
	// we never have focus because we have no window
	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, "1")

	err := sdl.Init(sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	drv := &Driver{joys: sdlJoystickList()}
	drv.primary = &gamepad{drv: drv}

	return drv, nil
}

// Quit releases every resource and shuts down SDL. The Driver cannot be used
// after Quit() has been called.
func (drv *Driver) Quit() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.quit {
		return
	}
	drv.quit = true
	drv.primary.close()
	sdl.Quit()
}

// Primary implements the backend.Driver interface. The same device is
// returned on every call.
func (drv *Driver) Primary() (backend.Device, error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.quit {
		return nil, fmt.Errorf("sdl: driver has quit")
	}
	return drv.primary, nil
}

// NewEnumerator implements the backend.Driver interface. Each enumerator holds
// a reference to the SDL joystick subsystem.
func (drv *Driver) NewEnumerator() (backend.Enumerator, error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.quit {
		return nil, fmt.Errorf("sdl: driver has quit")
	}

	err := sdl.InitSubSystem(sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &enumerator{drv: drv, valid: true}, nil
}

// update the state of every open device and discard the events that SDL
// generates as a side effect. must be called with the driver lock held
func (drv *Driver) update() {
	sdl.GameControllerUpdate()
	sdl.FlushEvents(sdl.FIRSTEVENT, sdl.LASTEVENT)
}
