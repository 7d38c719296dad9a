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
	"github.com/jetsetilly/padpointer/logger"
)

// Logging implements the Emitter interface by writing every event to the
// log. No pointer events reach the operating system.
type Logging struct {
	Tag string
}

// NewLogging is the preferred method of initialisation for the Logging type.
func NewLogging() *Logging {
	return &Logging{Tag: "pointer"}
}

// MoveBy implements the Emitter interface.
func (lg *Logging) MoveBy(dx, dy int) {
	logger.Logf(logger.Allow, lg.Tag, "move %d, %d", dx, dy)
}

// HorizontalScroll implements the Emitter interface.
func (lg *Logging) HorizontalScroll(amount int) {
	logger.Logf(logger.Allow, lg.Tag, "horizontal scroll %d", amount)
}

// VerticalScroll implements the Emitter interface.
func (lg *Logging) VerticalScroll(amount int) {
	logger.Logf(logger.Allow, lg.Tag, "vertical scroll %d", amount)
}

// PrimaryButtonDown implements the Emitter interface.
func (lg *Logging) PrimaryButtonDown() {
	logger.Log(logger.Allow, lg.Tag, "primary button down")
}

// PrimaryButtonUp implements the Emitter interface.
func (lg *Logging) PrimaryButtonUp() {
	logger.Log(logger.Allow, lg.Tag, "primary button up")
}

// SecondaryButtonDown implements the Emitter interface.
func (lg *Logging) SecondaryButtonDown() {
	logger.Log(logger.Allow, lg.Tag, "secondary button down")
}

// SecondaryButtonUp implements the Emitter interface.
func (lg *Logging) SecondaryButtonUp() {
	logger.Log(logger.Allow, lg.Tag, "secondary button up")
}
