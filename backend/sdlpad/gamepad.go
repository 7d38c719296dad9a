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
	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/logger"
	"github.com/jetsetilly/padpointer/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// gamepad is the primary backend. It binds itself to the first device with a
// game controller mapping.
type gamepad struct {
	drv *Driver
	pad *sdl.GameController
}

// Connected implements the backend.Device interface. A detached pad is closed
// and a new pad is looked for.
func (gp *gamepad) Connected() bool {
	gp.drv.crit.Lock()
	defer gp.drv.crit.Unlock()

	if gp.drv.quit {
		return false
	}

	gp.drv.update()

	if gp.pad != nil && !gp.pad.Attached() {
		logger.Logf(logger.Allow, "sdl", "gamepad detached: %s", gp.pad.Name())
		gp.close()
	}

	if gp.pad == nil {
		for i := range sdl.NumJoysticks() {
			if !sdl.IsGameController(i) {
				continue
			}
			pad := sdl.GameControllerOpen(i)
			if pad == nil {
				continue
			}
			if !pad.Attached() {
				pad.Close()
				continue
			}
			logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())
			gp.pad = pad
			break // for loop
		}
	}

	return gp.pad != nil
}

// Read implements the backend.Device interface.
func (gp *gamepad) Read() (backend.State, error) {
	gp.drv.crit.Lock()
	defer gp.drv.crit.Unlock()

	if gp.pad == nil || !gp.pad.Attached() {
		return backend.State{}, backend.Faultf(backend.FaultDeviceComms, "sdl: gamepad not attached")
	}

	axis := func(a sdl.GameControllerAxis) float64 {
		return userinput.Normalise(gp.pad.Axis(a))
	}
	button := func(b sdl.GameControllerButton) bool {
		return gp.pad.Button(b) == 1
	}

	return backend.State{
		MoveX:     axis(sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_LEFTX)),
		MoveY:     axis(sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_LEFTY)),
		ScrollX:   axis(sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_RIGHTX)),
		ScrollY:   axis(sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_RIGHTY)),
		Primary:   button(sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_A)),
		Secondary: button(sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_B)),
	}, nil
}

// Acquire implements the backend.Device interface. The gamepad is acquired
// by Connected().
func (gp *gamepad) Acquire() error {
	return nil
}

// Release implements the backend.Device interface.
func (gp *gamepad) Release() error {
	gp.drv.crit.Lock()
	defer gp.drv.crit.Unlock()
	gp.close()
	return nil
}

// must be called with the driver lock held.
func (gp *gamepad) close() {
	if gp.pad != nil {
		gp.pad.Close()
		gp.pad = nil
	}
}
