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

package pointer

import (
	"sync"

	"github.com/go-vgo/robotgo"
	"github.com/jetsetilly/padpointer/logger"
)

// the functions in the robotgo package used by Robot. replaced during testing
type robotFuncs struct {
	moveRelative func(x, y int)
	scroll       func(x, y int)
	toggle       func(args ...interface{}) error
}

// Robot implements the Emitter interface with the robotgo package.
//
// robotgo scrolls in whole notches. Scroll amounts are accumulated until a
// full notch (WheelDelta units) is available.
type Robot struct {
	crit sync.Mutex
	fn   robotFuncs

	wheelX int
	wheelY int
}

// NewRobot is the preferred method of initialisation for the Robot type.
func NewRobot() *Robot {
	return &Robot{
		fn: robotFuncs{
			moveRelative: robotgo.MoveRelative,
			scroll: func(x, y int) {
				robotgo.Scroll(x, y)
			},
			toggle: robotgo.Toggle,
		},
	}
}

// MoveBy implements the Emitter interface.
func (rbt *Robot) MoveBy(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	rbt.crit.Lock()
	defer rbt.crit.Unlock()
	rbt.fn.moveRelative(dx, dy)
}

// notches removes whole notches from the accumulated wheel value.
func notches(wheel *int, amount int) int {
	*wheel += amount
	n := *wheel / WheelDelta
	*wheel -= n * WheelDelta
	return n
}

// HorizontalScroll implements the Emitter interface.
func (rbt *Robot) HorizontalScroll(amount int) {
	rbt.crit.Lock()
	defer rbt.crit.Unlock()
	if n := notches(&rbt.wheelX, amount); n != 0 {
		rbt.fn.scroll(n, 0)
	}
}

// VerticalScroll implements the Emitter interface. Positive amounts scroll
// up.
func (rbt *Robot) VerticalScroll(amount int) {
	rbt.crit.Lock()
	defer rbt.crit.Unlock()
	if n := notches(&rbt.wheelY, amount); n != 0 {
		rbt.fn.scroll(0, n)
	}
}

func (rbt *Robot) button(button string, down bool) {
	rbt.crit.Lock()
	defer rbt.crit.Unlock()

	var err error
	if down {
		err = rbt.fn.toggle(button)
	} else {
		err = rbt.fn.toggle(button, "up")
	}
	if err != nil {
		logger.Logf(logger.Allow, "pointer", "%s button: %v", button, err)
	}
}

// PrimaryButtonDown implements the Emitter interface.
func (rbt *Robot) PrimaryButtonDown() {
	rbt.button("left", true)
}

// PrimaryButtonUp implements the Emitter interface.
func (rbt *Robot) PrimaryButtonUp() {
	rbt.button("left", false)
}

// SecondaryButtonDown implements the Emitter interface.
func (rbt *Robot) SecondaryButtonDown() {
	rbt.button("right", true)
}

// SecondaryButtonUp implements the Emitter interface.
func (rbt *Robot) SecondaryButtonUp() {
	rbt.button("right", false)
}
