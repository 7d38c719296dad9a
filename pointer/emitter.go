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

// Package pointer defines the Emitter interface, through which synthetic
// pointer events are delivered to the operating system. Implementations for
// the desktop (Robot), for logging (Logging) and for testing (Recorder) are
// provided.
package pointer

// Emitter is the boundary between the controller session and the operating
// system pointer. Movement is in pixels. Scroll amounts are in wheel units.
type Emitter interface {
	MoveBy(dx, dy int)
	HorizontalScroll(amount int)
	VerticalScroll(amount int)
	PrimaryButtonDown()
	PrimaryButtonUp()
	SecondaryButtonDown()
	SecondaryButtonUp()
}

// WheelDelta is the number of wheel units in one notch of a scroll wheel.
const WheelDelta = 120
