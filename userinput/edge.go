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

package userinput

// Edge is the transition detected by Button.Update().
type Edge int

// List of valid Edge values.
const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	}
	return "none"
}

// Button remembers the level of a button from the previous poll. The zero
// value is a button that is not pressed.
type Button struct {
	held bool
}

// Update compares the current level of the button with the level from the
// previous call. The current level is always stored.
func (b *Button) Update(level bool) Edge {
	prev := b.held
	b.held = level
	switch {
	case level && !prev:
		return EdgePress
	case !level && prev:
		return EdgeRelease
	}
	return EdgeNone
}

// Reset the button to the not pressed state. Returns true if the button was
// being held, in which case the caller should emit a release.
func (b *Button) Reset() bool {
	held := b.held
	b.held = false
	return held
}
